// Package mapping builds the resolver's mapping table from its configured source:
// the in-code defaults or a YAML mappings file.
package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"errorviews/internal/model"
	"errorviews/internal/resolver"
)

// Options selects and parameterises the table source.
type Options struct {
	Source       model.Source
	File         string
	DatabaseView string
}

type fileDoc struct {
	Mappings []resolver.Mapping `yaml:"mappings"`
}

// Defaults returns the built-in entries. databaseView is the view for DatabaseException,
// "databaseError" when empty.
func Defaults(databaseView string) []resolver.Mapping {
	if databaseView == "" {
		databaseView = model.ViewDatabaseError
	}
	return []resolver.Mapping{
		{Kind: model.KindDatabase, View: databaseView},
		{Kind: model.KindInvalidCreditCard, View: model.ViewCreditCardError},
	}
}

// Parse decodes a mappings document. Entries keep their order.
func Parse(data []byte) ([]resolver.Mapping, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("mapping.Parse: %w", err)
	}
	for i, m := range doc.Mappings {
		if m.Kind == "" {
			return nil, fmt.Errorf("mapping.Parse: entry %d: %w", i, resolver.ErrEmptyKind)
		}
		if m.View == "" {
			return nil, fmt.Errorf("mapping.Parse: entry %d (%s): %w", i, m.Kind, resolver.ErrEmptyView)
		}
	}
	return doc.Mappings, nil
}

// LoadFile reads and parses a mappings file.
func LoadFile(path string) ([]resolver.Mapping, error) {
	if path == "" {
		return nil, resolver.ErrNoMappingsFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapping.LoadFile: %w", err)
	}
	return Parse(data)
}

// Load builds the table for opt.
func Load(opt Options) (resolver.MappingTable, error) {
	switch opt.Source {
	case model.SourceFile:
		mappings, err := LoadFile(opt.File)
		if err != nil {
			return resolver.MappingTable{}, err
		}
		return resolver.NewMappingTable(mappings...), nil
	case model.SourceCode, "":
		return resolver.NewMappingTable(Defaults(opt.DatabaseView)...), nil
	default:
		return resolver.MappingTable{}, fmt.Errorf("mapping.Load: unknown source %q", opt.Source)
	}
}

package mapping_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"errorviews/internal/model"
	"errorviews/internal/resolver"
	"errorviews/internal/resolver/mapping"
)

const doc = `
mappings:
  - kind: DatabaseException
    view: databaseException
  - kind: InvalidCreditCardException
    view: creditCardError
  - kind: DatabaseException
    view: databaseError
`

func TestDefaults(t *testing.T) {
	m := mapping.Defaults("")
	require.Len(t, m, 2)
	assert.Equal(t, resolver.Mapping{Kind: model.KindDatabase, View: model.ViewDatabaseError}, m[0])
	assert.Equal(t, resolver.Mapping{Kind: model.KindInvalidCreditCard, View: model.ViewCreditCardError}, m[1])

	assert.Equal(t, model.ViewDatabaseExc, mapping.Defaults(model.ViewDatabaseExc)[0].View)
}

func TestParse(t *testing.T) {
	m, err := mapping.Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, m, 3)

	table := resolver.NewMappingTable(m...)
	assert.Equal(t, 2, table.Len())
	view, _ := table.Lookup(model.KindDatabase)
	assert.Equal(t, model.ViewDatabaseError, view)
}

func TestParseInvalid(t *testing.T) {
	_, err := mapping.Parse([]byte("mappings:\n  - kind: X\n"))
	assert.True(t, errors.Is(err, resolver.ErrEmptyView))

	_, err = mapping.Parse([]byte("mappings:\n  - view: x\n"))
	assert.True(t, errors.Is(err, resolver.ErrEmptyKind))

	_, err = mapping.Parse([]byte("mappings: [unterminated"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	table, err := mapping.Load(mapping.Options{Source: model.SourceFile, File: path})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	table, err = mapping.Load(mapping.Options{Source: model.SourceCode, DatabaseView: model.ViewDatabaseExc})
	require.NoError(t, err)
	view, ok := table.Lookup(model.KindDatabase)
	require.True(t, ok)
	assert.Equal(t, model.ViewDatabaseExc, view)

	_, err = mapping.Load(mapping.Options{Source: model.SourceFile})
	assert.ErrorIs(t, err, resolver.ErrNoMappingsFile)

	_, err = mapping.Load(mapping.Options{Source: model.SourceFile, File: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = mapping.Load(mapping.Options{Source: "xml"})
	assert.Error(t, err)
}

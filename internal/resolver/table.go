package resolver

import "errorviews/internal/model"

// MappingTable maps exact kinds to view names. It is built once and read-only afterwards.
type MappingTable struct {
	order []model.Kind
	views map[model.Kind]string
}

// NewMappingTable builds a table from mappings applied in order.
// A repeated kind keeps its first position and takes the last view.
func NewMappingTable(mappings ...Mapping) MappingTable {
	t := MappingTable{views: make(map[model.Kind]string, len(mappings))}
	for _, m := range mappings {
		if _, ok := t.views[m.Kind]; !ok {
			t.order = append(t.order, m.Kind)
		}
		t.views[m.Kind] = m.View
	}
	return t
}

// Lookup returns the view mapped to kind.
func (t MappingTable) Lookup(kind model.Kind) (string, bool) {
	v, ok := t.views[kind]
	return v, ok
}

// Len returns the number of distinct kinds.
func (t MappingTable) Len() int { return len(t.order) }

// Mappings returns a copy of the entries in order.
func (t MappingTable) Mappings() []Mapping {
	out := make([]Mapping, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, Mapping{Kind: k, View: t.views[k]})
	}
	return out
}

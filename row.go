package mdf

import "github.com/wilhasse/go-mdf/value"

// NamedValue pairs a declared column name with its decoded value, in
// declared column order.
type NamedValue struct {
	Name  string
	Value value.Value
}

// Row is an ordered mapping from column name to typed value.
type Row struct {
	names  []string
	values []value.Value
}

// Value returns the value for the named column, or false if the name is
// not one of this row's declared columns.
func (r Row) Value(name string) (value.Value, bool) {
	for i, n := range r.names {
		if n == name {
			return r.values[i], true
		}
	}
	return value.Value{}, false
}

// Values returns every column's value in declared order.
func (r Row) Values() []NamedValue {
	out := make([]NamedValue, len(r.names))
	for i, n := range r.names {
		out[i] = NamedValue{Name: n, Value: r.values[i]}
	}
	return out
}

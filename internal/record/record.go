// Package record defines the row representation consumed by the
// filter evaluator: an ordered, fixed sequence of fields addressable
// by 1-based position and optionally by name.
package record

import "github.com/hawkql/hawk/internal/value"

// Field is a single record field. Name may be empty when the source
// carries no header information.
type Field struct {
	Name  string
	Value value.Value
}

// Record is one input row. The evaluator treats records as read-only
// and never retains them past a single evaluation.
type Record struct {
	fields []Field
}

// New creates a record from the given fields.
func New(fields ...Field) Record {
	return Record{fields: fields}
}

// FromStrings creates a record whose fields hold String values taken
// from texts. Names, when non-nil, supplies field names positionally;
// extra texts beyond len(names) are left unnamed.
func FromStrings(texts []string, names []string) Record {
	fields := make([]Field, len(texts))
	for i, text := range texts {
		fields[i].Value = value.String(text)
		if i < len(names) {
			fields[i].Name = names[i]
		}
	}
	return Record{fields: fields}
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Field returns the value at the 1-based position n. The second
// return is false when n is out of range.
func (r Record) Field(n int) (value.Value, bool) {
	if n < 1 || n > len(r.fields) {
		return value.Value{}, false
	}
	return r.fields[n-1].Value, true
}

// Lookup returns the value of the first field with the given name.
// Positional resolution does not use names; this exists for callers
// that want named access.
func (r Record) Lookup(name string) (value.Value, bool) {
	if name == "" {
		return value.Value{}, false
	}
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return value.Value{}, false
}

// Fields returns a copy of the record's fields in order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

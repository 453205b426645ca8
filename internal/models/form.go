package models

// DefaultFields is the field list shown when no form definition is configured.
var DefaultFields = []string{"Temperature", "Operating System"}

// Field is a named form input. Its name doubles as the label text and INI key.
type Field struct {
	Name string
}

// FieldValue captures an entry's text at the moment an action reads it.
type FieldValue struct {
	Name  string
	Value string
}

// Form holds the ordered, immutable list of fields the window is built from.
type Form struct {
	fields []Field
}

// NewForm creates a form from field names, preserving their order. Duplicate
// and empty names are accepted as given.
func NewForm(names []string) *Form {
	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = Field{Name: name}
	}
	return &Form{fields: fields}
}

// Names returns a copy of the field names in insertion order.
func (f *Form) Names() []string {
	names := make([]string, len(f.fields))
	for i, field := range f.fields {
		names[i] = field.Name
	}
	return names
}

// Len returns the number of fields.
func (f *Form) Len() int {
	return len(f.fields)
}

// Snapshot pairs each field with the value at the same index. Missing values
// are treated as empty and surplus values are ignored.
func (f *Form) Snapshot(values []string) []FieldValue {
	out := make([]FieldValue, len(f.fields))
	for i, field := range f.fields {
		out[i] = FieldValue{Name: field.Name}
		if i < len(values) {
			out[i].Value = values[i]
		}
	}
	return out
}

package submit

// Field is one named form value.
type Field struct {
	Name  string
	Value string
}

// Fields is an ordered set of form values.
type Fields []Field

// Get returns the value of name, or "" if absent.
func (f Fields) Get(name string) string {
	for _, fd := range f {
		if fd.Name == name {
			return fd.Value
		}
	}
	return ""
}

// With returns a copy of f with name set to value, appending if absent.
func (f Fields) With(name, value string) Fields {
	out := make(Fields, len(f), len(f)+1)
	copy(out, f)
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, Field{Name: name, Value: value})
}

// Cleared returns a copy of f with every value emptied.
func (f Fields) Cleared() Fields {
	out := make(Fields, len(f))
	for i, fd := range f {
		out[i] = Field{Name: fd.Name}
	}
	return out
}

// Map returns the values keyed by name.
func (f Fields) Map() map[string]string {
	m := make(map[string]string, len(f))
	for _, fd := range f {
		m[fd.Name] = fd.Value
	}
	return m
}

package importer

// Mapping tracks which semantic field, if any, each raw column index is
// assigned to. At most one column holds a given field at a time; Assign
// enforces this rather than trusting callers.
type Mapping struct {
	fields map[int]Field
}

func NewMapping() *Mapping {
	return &Mapping{fields: make(map[int]Field)}
}

// Assign maps a column to a field. Any other column currently holding
// the same field is unset first, so reassigning a field moves it.
// FieldSkip (and the empty field) unsets the column. Assigning a column
// to the field it already holds is a no-op.
func (m *Mapping) Assign(col int, f Field) {
	if f == FieldSkip || f == "" {
		delete(m.fields, col)
		return
	}

	for other, held := range m.fields {
		if held == f && other != col {
			delete(m.fields, other)
		}
	}

	m.fields[col] = f
}

// Field returns the field assigned to a column, if any.
func (m *Mapping) Field(col int) (Field, bool) {
	f, ok := m.fields[col]
	return f, ok
}

// Column returns the column currently holding a field, if any.
func (m *Mapping) Column(f Field) (int, bool) {
	for col, held := range m.fields {
		if held == f {
			return col, true
		}
	}

	return 0, false
}

// Progress is the number of columns with an assigned field. The import
// may proceed once Progress reaches len(RequiredFields); per-row
// content is still validated downstream.
func (m *Mapping) Progress() int {
	return len(m.fields)
}

package importer

import "strings"

// RawTable is a parsed statement file: one header row and the body rows
// below it. Rows may have ragged lengths; projection treats missing
// cells as absent.
type RawTable struct {
	Header []string
	Body   [][]string
}

// Project folds each body row into a Record using the current mapping.
// Cells in unmapped columns are dropped, as are blank cells in mapped
// columns. Rows that end up with no content are omitted entirely, so
// the output never has more rows than the body.
func (t RawTable) Project(m *Mapping) []Record {
	records := make([]Record, 0, len(t.Body))

	for _, row := range t.Body {
		rec := make(Record)

		for col, cell := range row {
			field, ok := m.Field(col)
			if !ok {
				continue
			}

			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}

			rec[field] = cell
		}

		if len(rec) == 0 {
			continue
		}

		records = append(records, rec)
	}

	return records
}

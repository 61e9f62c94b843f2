package importer

// Transform validates projected records and normalizes their amount and
// date. Records missing a required field, or whose amount or date fails
// to normalize, are excluded from the output rather than emitted
// half-formed. Order is preserved; the second return value is the
// number of records that were dropped.
func Transform(records []Record) ([]ImportedTransaction, int) {
	out := make([]ImportedTransaction, 0, len(records))
	skipped := 0

	for _, rec := range records {
		tx, ok := transformRecord(rec)
		if !ok {
			skipped++
			continue
		}

		out = append(out, tx)
	}

	return out, skipped
}

func transformRecord(rec Record) (ImportedTransaction, bool) {
	for _, f := range RequiredFields {
		if rec[f] == "" {
			return ImportedTransaction{}, false
		}
	}

	amount, err := ToMiliunits(rec[FieldAmount])
	if err != nil {
		return ImportedTransaction{}, false
	}

	date, err := NormalizeDate(rec[FieldDate])
	if err != nil {
		return ImportedTransaction{}, false
	}

	return ImportedTransaction{
		Payee:  rec[FieldPayee],
		Date:   date,
		Amount: amount,
		Notes:  rec[FieldNotes],
	}, true
}

// Submit runs the whole pipeline on a table: project the body rows
// through the mapping, then validate and normalize them. It is a pure
// function of its inputs and safe to re-run on every mapping change.
func Submit(table RawTable, m *Mapping) ([]ImportedTransaction, int) {
	return Transform(table.Project(m))
}

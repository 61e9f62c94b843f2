package importer

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/dmarques/centavo/internal/encoding"
)

// ReadTable parses an uploaded statement file into a RawTable. The file
// is decoded to UTF-8 first since bank exports routinely arrive in
// legacy encodings. The delimiter is sniffed from the header line
// (several European banks export semicolon-separated files).
func ReadTable(r io.Reader) (RawTable, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return RawTable{}, fmt.Errorf("detect encoding: %w", err)
	}

	br := bufio.NewReader(utf8r)

	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return RawTable{}, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return RawTable{}, fmt.Errorf("empty file")
	}

	return RawTable{Header: rows[0], Body: rows[1:]}, nil
}

// sniffDelimiter picks ';' over ',' when the first line clearly uses it.
func sniffDelimiter(br *bufio.Reader) rune {
	buf, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return ','
	}

	line := string(buf)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}

	return ','
}

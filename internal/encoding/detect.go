// Package encoding decodes bank statement files to UTF-8. Banks export
// CSVs in whatever encoding their backoffice grew up with, so uploads
// cannot be assumed to be UTF-8.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// bom associates a byte-order mark with the decoder it implies.
// A nil decoder means the content after the BOM is already UTF-8.
type bom struct {
	prefix  []byte
	decoder encoding.Encoding
}

var boms = []bom{
	{prefix: []byte{0xEF, 0xBB, 0xBF}, decoder: nil},
	{prefix: []byte{0xFF, 0xFE}, decoder: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
	{prefix: []byte{0xFE, 0xFF}, decoder: unicode.UTF16(unicode.BigEndian, unicode.UseBOM)},
}

const peekSize = 4096

// NewUTF8Reader wraps r with whatever decoding is needed to yield
// UTF-8. A BOM wins if present (the UTF-8 BOM is stripped), valid UTF-8
// passes through untouched, otherwise the charset is guessed with
// chardet and the content decoded accordingly. Windows-1252 is the
// final fallback since it decodes any byte sequence.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	for _, b := range boms {
		if !bytes.HasPrefix(head, b.prefix) {
			continue
		}

		if b.decoder == nil {
			_, _ = br.Discard(len(b.prefix))
			return br, nil
		}

		return transform.NewReader(br, b.decoder.NewDecoder()), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if enc := detectLegacy(head); enc != nil {
		return transform.NewReader(br, enc.NewDecoder()), nil
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

// detectLegacy guesses a single-byte legacy charset. Returns nil when
// detection fails or names a charset we have no decoder for.
func detectLegacy(head []byte) encoding.Encoding {
	result, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return nil
	}

	switch result.Charset {
	case "ISO-8859-1", "windows-1252":
		return charmap.Windows1252
	case "ISO-8859-9":
		return charmap.ISO8859_9
	case "ISO-8859-15":
		return charmap.ISO8859_15
	}

	return nil
}

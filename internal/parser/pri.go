package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dgallion1/prigest/internal/record"
	"golang.org/x/net/html/charset"
)

// recordSeparator terminates every StanForD variable.
const recordSeparator = "~"

// byteOrderMark survives decoding for some encodings and is dropped.
const byteOrderMark = "\uFEFF"

// PRIParser decodes StanForD production files. Each record is
// "<variable> <type> <field>...", records separated by '~'.
type PRIParser struct{}

func (p *PRIParser) Parse(r io.Reader, filename string) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pri: %w", err)
	}

	text, enc, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode pri: %w", err)
	}

	return &File{
		Name:      filename,
		SizeBytes: int64(len(raw)),
		Encoding:  enc,
		Records:   ParseRecords(text),
	}, nil
}

// decode sniffs the encoding from a BOM or the byte content and converts to
// UTF-8. Undecodable bytes become U+FFFD.
func decode(raw []byte) (string, string, error) {
	e, name, _ := charset.DetermineEncoding(raw, "")
	out, err := e.NewDecoder().Bytes(raw)
	if err != nil {
		return "", name, err
	}
	return strings.TrimPrefix(string(out), byteOrderMark), name, nil
}

// ParseRecords splits decoded text into records. Parts with fewer than two
// tokens, or whose variable and type are not integers, are skipped.
func ParseRecords(text string) record.Stream {
	var out record.Stream
	for _, part := range strings.Split(text, recordSeparator) {
		tokens := strings.Fields(part)
		if len(tokens) < 2 {
			continue
		}
		if _, err := strconv.Atoi(tokens[0]); err != nil {
			continue
		}
		if _, err := strconv.Atoi(tokens[1]); err != nil {
			continue
		}
		out = append(out, record.Record{
			Tag:    tokens[0],
			Fields: tokens[2:],
		})
	}
	return out
}

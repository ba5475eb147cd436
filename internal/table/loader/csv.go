package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/goliatone/go-certgen/pkg/table"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVDecoder reads comma separated files whose first record is the header.
type CSVDecoder struct{}

func (CSVDecoder) Name() string { return "csv" }

func (CSVDecoder) Extensions() []string { return []string{".csv"} }

func (CSVDecoder) Decode(origin string, data []byte) (*table.Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("csv: empty file")
	}
	if !utf8.Valid(data) {
		return nil, errors.New("csv: content is not valid UTF-8")
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("csv: missing header")
	}
	return table.New(origin, records[0], records[1:]), nil
}

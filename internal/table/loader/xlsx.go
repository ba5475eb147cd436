package loader

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-certgen/pkg/table"
)

// XLSXDecoder reads the first worksheet of a spreadsheet workbook, treating
// its first row as the header. Every cell is read as its formatted text.
type XLSXDecoder struct{}

func (XLSXDecoder) Name() string { return "xlsx" }

func (XLSXDecoder) Extensions() []string { return []string{".xlsx", ".xlsm"} }

func (XLSXDecoder) Decode(origin string, data []byte) (*table.Table, error) {
	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("xlsx: open workbook: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx: workbook has no sheets")
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("xlsx: read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("xlsx: missing header")
	}
	return table.New(origin, rows[0], rows[1:]), nil
}

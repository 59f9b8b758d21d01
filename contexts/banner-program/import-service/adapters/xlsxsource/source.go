// Package xlsxsource reads the first sheet of an XLSX export into header
// and data rows, for sources that hand over spreadsheets instead of CSV.
package xlsxsource

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

type FileSource struct {
	Path string
}

func (s FileSource) Rows() ([]string, [][]string, error) {
	book, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open xlsx file: %w", err)
	}
	defer book.Close()
	return sheetRows(book)
}

type ReaderSource struct {
	Reader io.Reader
}

func (s ReaderSource) Rows() ([]string, [][]string, error) {
	book, err := excelize.OpenReader(s.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("open xlsx stream: %w", err)
	}
	defer book.Close()
	return sheetRows(book)
}

func sheetRows(book *excelize.File) ([]string, [][]string, error) {
	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("xlsx workbook has no sheets")
	}
	all, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

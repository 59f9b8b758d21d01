// Package csvsource reads a CSV export into header and data rows.
package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// FileSource reads a CSV file from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Rows() ([]string, [][]string, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open csv file: %w", err)
	}
	defer file.Close()
	return readAll(file)
}

// ReaderSource reads CSV content from a stream, e.g. an uploaded file.
type ReaderSource struct {
	Reader io.Reader
}

func (s ReaderSource) Rows() ([]string, [][]string, error) {
	return readAll(s.Reader)
}

func readAll(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	// Exports occasionally carry ragged rows; the parser pads by field name.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv row: %w", err)
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

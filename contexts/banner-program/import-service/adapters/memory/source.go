// Package memory provides an in-memory RowSource for tests and fixtures.
package memory

type Source struct {
	Header  []string
	Records [][]string
}

func NewSource(header []string, records [][]string) Source {
	return Source{Header: header, Records: records}
}

func (s Source) Rows() ([]string, [][]string, error) {
	return s.Header, s.Records, nil
}

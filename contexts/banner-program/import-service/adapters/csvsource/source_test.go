package csvsource

import (
	"strings"
	"testing"
)

func TestReaderSource(t *testing.T) {
	source := ReaderSource{Reader: strings.NewReader(
		"Your Name,Status,One Banner\n" +
			"Jane Smith,CONFIRMED,\"[[\"\"One Banner\"\",\"\"$95\"\"]]\"\n" +
			"Short Row,CONFIRMED\n",
	)}

	header, rows, err := source.Rows()
	if err != nil {
		t.Fatalf("rows failed: %v", err)
	}
	if len(header) != 3 || header[0] != "Your Name" {
		t.Fatalf("unexpected header: %+v", header)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][2] != `[["One Banner","$95"]]` {
		t.Fatalf("quoted cell mangled: %q", rows[0][2])
	}
	// Ragged rows pass through; the parser pads by field name.
	if len(rows[1]) != 2 {
		t.Fatalf("expected ragged row kept, got %+v", rows[1])
	}
}

func TestReaderSourceEmpty(t *testing.T) {
	source := ReaderSource{Reader: strings.NewReader("")}

	header, rows, err := source.Rows()
	if err != nil {
		t.Fatalf("rows failed: %v", err)
	}
	if header != nil || rows != nil {
		t.Fatalf("expected empty result, got %+v %+v", header, rows)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	source := FileSource{Path: "does-not-exist.csv"}
	if _, _, err := source.Rows(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

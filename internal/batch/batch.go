// Package batch parses tabular tweet collections and runs the sentiment
// pipeline over every row.
package batch

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// Batch is a fully materialized table: a header plus ordered rows. One
// column holds the raw tweet text.
type Batch struct {
	Columns []string
	Rows    [][]string
}

// Read parses CSV input into a Batch. Short rows are padded with empty
// cells so every row matches the header width; rows wider than the
// header, or input that does not parse at all, yield a
// *MalformedInputError. A header with no data rows is also malformed.
func Read(r io.Reader) (*Batch, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &MalformedInputError{Err: err}
	}
	if len(records) < 2 {
		return nil, &MalformedInputError{Err: ErrNoRows}
	}

	header := records[0]
	rows := make([][]string, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) > len(header) {
			return nil, &MalformedInputError{
				Err: fmt.Errorf("row %d has %d fields, header has %d", i+1, len(rec), len(header)),
			}
		}
		row := make([]string, len(header))
		copy(row, rec)
		rows = append(rows, row)
	}

	return &Batch{Columns: header, Rows: rows}, nil
}

// columnIndex returns the position of name in the header, or -1. With
// duplicate header names the first occurrence wins.
func (b *Batch) columnIndex(name string) int {
	for i, col := range b.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// CSV serializes the batch as UTF-8 comma-delimited text with a header
// row, preserving column and row order.
func (b *Batch) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(b.Columns); err != nil {
		return nil, err
	}
	if err := w.WriteAll(b.Rows); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

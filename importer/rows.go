// Package importer turns a product export CSV into a normalized catalog
// and stores it as a single replace-all write.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"squad_catalog/domain"
)

// Row is one data line of the export, keyed by header column name.
// Columns absent from the header or from a short line read as "".
type Row map[string]string

// ParseRows tokenizes raw as comma-separated text whose first line is the header.
// Blank lines are skipped. Any tokenizer error is a ParseFailure.
func ParseRows(raw []byte) ([]Row, error) {
	if !utf8.Valid(raw) {
		return nil, domain.NewParseFailure(errors.New("input is not valid UTF-8"))
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewParseFailure(fmt.Errorf("reading header: %w", err))
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.NewParseFailure(err)
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Package importer turns loosely-typed spreadsheet rows into planting inserts
// and harvest updates, resolving land/production references by natural key.
// Parsing and reconciliation are pure; callers own the actual store writes.
package importer

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet row keyed by normalized column header.
type Row map[string]string

// normKey canonicalizes a header so that "Land Name", "land_name" and
// "land-name" all address the same cell.
func normKey(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Get returns the trimmed cell under any of the given header aliases.
func (r Row) Get(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[normKey(k)]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// ParseXLSX reads the first sheet of a workbook into header-keyed rows.
func ParseXLSX(src io.Reader) ([]Row, error) {
	x, err := excelize.OpenReader(src)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return tabular(rows), nil
}

// ParseCSV reads a header-led CSV stream into header-keyed rows.
func ParseCSV(src io.Reader) ([]Row, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	var all [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		all = append(all, rec)
	}
	return tabular(all), nil
}

func tabular(rows [][]string) []Row {
	if len(rows) == 0 {
		return nil
	}
	head := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		head[i] = normKey(h)
	}
	var out []Row
	for _, rec := range rows[1:] {
		row := Row{}
		empty := true
		for i, h := range head {
			if h == "" || i >= len(rec) {
				continue
			}
			row[h] = rec[i]
			if strings.TrimSpace(rec[i]) != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out
}

package ledger

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the export header row. Import skips row 0 regardless of
// its content, so older files with different headers still load.
var csvHeader = []string{"Character", "Tested", "Correct", "Wrong", "Accuracy"}

// ExportCSV writes every entry as CSV in ledger order.
func (s *Service) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range s.Entries() {
		row := []string{
			e.Glyph,
			strconv.Itoa(e.Tested),
			strconv.Itoa(e.Correct),
			strconv.Itoa(e.Wrong),
			fmt.Sprintf("%.1f%%", e.Accuracy()),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV merges rows from r into the ledger. Each well-formed row
// overwrites the entry for its glyph wholesale; rows with missing or
// non-numeric fields are skipped and never disturb other entries. The
// accuracy column, when present, is ignored. Returns the number of
// rows merged.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	merged := 0
	for row := 0; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Unparseable line: skip it, keep going.
			continue
		}
		if row == 0 {
			// Header row, skipped by position.
			continue
		}

		e, ok := parseRow(record)
		if !ok {
			continue
		}
		_, existed := s.entries[e.Glyph]
		if err := s.put(ctx, e, existed); err != nil {
			return merged, err
		}
		merged++
	}
	return merged, nil
}

func parseRow(record []string) (Entry, bool) {
	if len(record) < 4 || record[0] == "" {
		return Entry{}, false
	}
	tested, err1 := strconv.Atoi(record[1])
	correct, err2 := strconv.Atoi(record[2])
	wrong, err3 := strconv.Atoi(record[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return Entry{}, false
	}
	return Entry{Glyph: record[0], Tested: tested, Correct: correct, Wrong: wrong}, true
}

package authreq

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var ErrMissingColumn = errors.New("missing column")

const DefaultBranch = "Matriz"

// Columns names the header cells each field is read from. An empty
// Specialty or Status column is optional; the others are required.
type Columns struct {
	Patient     string
	Plan        string
	SessionType string
	Date        string
	Status      string
	Branch      string
	Specialty   string
}

// DefaultColumns matches the clinic export, where the "Plano" and "Tipo
// Atendimento" headers are swapped.
var DefaultColumns = Columns{
	Patient:     "Paciente",
	Plan:        "Tipo Atendimento",
	SessionType: "Plano",
	Date:        "Data",
	Status:      "Status",
	Branch:      "Tipo Filial",
	Specialty:   "Especialidade",
}

// Options control which rows are accepted.
type Options struct {
	Columns Columns
	// SkipStatus lists status values whose rows are ignored.
	SkipStatus []string
}

// Result is the outcome of reading a source table.
type Result struct {
	Records []Record
	// Skipped holds the sheet row numbers (1 based, header is row 1) of
	// rows that were ignored.
	Skipped []int
}

// ReadXLSX reads the active sheet of the workbook in r.
func ReadXLSX(r io.Reader, opts Options) (*Result, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer xlsx.Close()

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := xlsx.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	return ParseRows(rows[0], rows[1:], opts)
}

// ParseRows maps data rows to records using the given header row.
func ParseRows(header []string, rows [][]string, opts Options) (*Result, error) {
	cols := opts.Columns
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}

	lookup := func(name string, required bool) (int, error) {
		if name == "" && !required {
			return -1, nil
		}
		i, ok := idx[name]
		if !ok {
			if required {
				return -1, fmt.Errorf("%w %q", ErrMissingColumn, name)
			}
			return -1, nil
		}
		return i, nil
	}

	var pos [7]int
	var err error
	for i, c := range []struct {
		name     string
		required bool
	}{
		{cols.Patient, true},
		{cols.Plan, true},
		{cols.SessionType, true},
		{cols.Date, true},
		{cols.Status, false},
		{cols.Branch, false},
		{cols.Specialty, false},
	} {
		if pos[i], err = lookup(c.name, c.required); err != nil {
			return nil, err
		}
	}

	skip := make(map[string]bool, len(opts.SkipStatus))
	for _, s := range opts.SkipStatus {
		skip[strings.ToUpper(strings.TrimSpace(s))] = true
	}

	res := &Result{}
	for n, row := range rows {
		rowNo := n + 2
		get := func(i int) string {
			if i < 0 || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		rec := Record{
			Row:         rowNo,
			Patient:     get(pos[0]),
			Plan:        get(pos[1]),
			SessionType: strings.ToUpper(get(pos[2])),
			Status:      get(pos[4]),
			Branch:      get(pos[5]),
			Specialty:   get(pos[6]),
		}
		if rec.Patient == "" || rec.SessionType == "" {
			res.Skipped = append(res.Skipped, rowNo)
			continue
		}
		if skip[strings.ToUpper(rec.Status)] {
			res.Skipped = append(res.Skipped, rowNo)
			continue
		}
		date, err := ParseDate(get(pos[3]))
		if err != nil {
			res.Skipped = append(res.Skipped, rowNo)
			continue
		}
		rec.Date = date
		if rec.Branch == "" {
			rec.Branch = DefaultBranch
		}
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate accepts Excel serial dates as well as the textual layouts the
// exports and databases use.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return excelize.ExcelDateToTime(f, false)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date %q", s)
}

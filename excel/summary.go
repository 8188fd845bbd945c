// Package excel produces workbooks summarizing a batch of authorization
// requests.
package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"kastelo.dev/authreq"
)

const (
	requestsSheet = "Solicitações"
	totalsSheet   = "Resumo"
)

var fixedHeaders = []string{"Paciente", "Plano", "Filial", "Modelo", "Especialidade"}

// SummaryXLSX returns a workbook with one row per request and a sheet of
// totals.
func SummaryXLSX(batch *authreq.Batch) ([]byte, error) {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "kastelo.dev/authreq",
		DocSecurity: 2,
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	writeRequests(xlsx, sheet, batch)
	if err := xlsx.SetSheetName(sheet, requestsSheet); err != nil {
		return nil, err
	}

	if _, err := xlsx.NewSheet(totalsSheet); err != nil {
		return nil, err
	}
	writeTotals(xlsx, totalsSheet, batch)
	xlsx.SetActiveSheet(0)

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// months lists every month between the batch's first and last session.
func months(batch *authreq.Batch) []time.Time {
	starts, ends := batch.Starts(), batch.Ends()
	if starts.IsZero() {
		return nil
	}
	var res []time.Time
	for t := starts; !t.After(ends); t = t.AddDate(0, 1, 0) {
		res = append(res, t)
	}
	return res
}

func writeRequests(xlsx *excelize.File, sheet string, batch *authreq.Batch) {
	ms := months(batch)
	firstMonthCol := len(fixedHeaders) + 1
	totalCol := firstMonthCol + len(ms)

	_ = xlsx.SetColWidth(sheet, "A", "A", 40)
	_ = xlsx.SetColWidth(sheet, "B", "D", 12)
	_ = xlsx.SetColWidth(sheet, "E", "E", 30)

	row := 1
	for i, h := range fixedHeaders {
		_ = xlsx.SetCellValue(sheet, cell(i+1, row), h)
	}
	for i, m := range ms {
		_ = xlsx.SetCellValue(sheet, cell(firstMonthCol+i, row), m.Format("2006-01"))
	}
	_ = xlsx.SetCellValue(sheet, cell(totalCol, row), "Sessões")
	setStyle(xlsx, sheet, cell(1, row), cell(totalCol-1, row), defaultStyle(), fontBold(), thinBorder("bottom"))
	setStyle(xlsx, sheet, cell(firstMonthCol, row), cell(totalCol, row), defaultStyle(), fontBold(), thinBorder("bottom"), textAlignment("right"))
	row++

	_ = xlsx.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	})

	startRow := row
	for _, req := range batch.Requests {
		_ = xlsx.SetCellValue(sheet, cell(1, row), req.Patient)
		_ = xlsx.SetCellValue(sheet, cell(2, row), req.Plan)
		_ = xlsx.SetCellValue(sheet, cell(3, row), req.Branch)
		_ = xlsx.SetCellValue(sheet, cell(4, row), req.Kind.String())
		_ = xlsx.SetCellValue(sheet, cell(5, row), req.Label)
		for i, m := range ms {
			if n := req.Months[m.Format("2006-01")]; n > 0 {
				_ = xlsx.SetCellInt(sheet, cell(firstMonthCol+i, row), int64(n))
			}
		}
		_ = xlsx.SetCellInt(sheet, cell(totalCol, row), int64(req.Sessions))

		if req.Kind == authreq.ABA {
			setStyle(xlsx, sheet, cell(1, row), cell(totalCol, row), defaultStyle(), highlight())
		} else {
			setStyle(xlsx, sheet, cell(1, row), cell(totalCol, row), defaultStyle())
		}
		row++
	}

	_ = xlsx.SetCellValue(sheet, cell(1, row), "Total")
	for col := firstMonthCol; col <= totalCol; col++ {
		if row == startRow {
			_ = xlsx.SetCellInt(sheet, cell(col, row), 0)
			continue
		}
		_ = xlsx.SetCellFormula(sheet, cell(col, row), fmt.Sprintf("SUM(%s:%s)", cell(col, startRow), cell(col, row-1)))
	}
	setStyle(xlsx, sheet, cell(1, row), cell(totalCol, row), defaultStyle(), fontBold(), thickBorder("top"))
}

func writeTotals(xlsx *excelize.File, sheet string, batch *authreq.Batch) {
	aba, standard := batch.Counts()

	_ = xlsx.SetColWidth(sheet, "A", "A", 30)
	_ = xlsx.SetColWidth(sheet, "B", "B", 15)

	rows := []struct {
		label string
		value any
	}{
		{"Mês de referência", fmt.Sprintf("%s/%d", authreq.MonthName(batch.Month), batch.Year)},
		{"Pacientes ABA", aba},
		{"Pacientes Típico", standard},
		{"Linhas ignoradas", batch.Skipped},
		{"Total de relatórios", aba + standard},
	}
	for i, r := range rows {
		_ = xlsx.SetCellValue(sheet, cell(1, i+1), r.label)
		_ = xlsx.SetCellValue(sheet, cell(2, i+1), r.value)
	}
	last := len(rows)
	setStyle(xlsx, sheet, cell(1, 1), cell(2, last-1), defaultStyle())
	setStyle(xlsx, sheet, cell(2, 1), cell(2, last-1), defaultStyle(), textAlignment("right"))
	setStyle(xlsx, sheet, cell(1, last), cell(2, last), defaultStyle(), fontBold(), thickBorder("top"))
	setStyle(xlsx, sheet, cell(1, 1), cell(1, 1), defaultStyle(), fontItalic())
}

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"kastelo.dev/authreq"
	"kastelo.dev/authreq/pdf"
)

func listReport(w io.Writer, batch *authreq.Batch) {
	const formatStr = "  %-6s %-40s %-8s %-14s %-28s %4s\n"
	fmt.Fprintf(w, "Mês de referência: %s/%d\n\n", authreq.MonthName(batch.Month), batch.Year)
	fmt.Fprintf(w, formatStr, "MODELO", "PACIENTE", "PLANO", "FILIAL", "ESPECIALIDADE", "SESS")
	total := 0
	for _, req := range batch.Requests {
		fmt.Fprintf(w, formatStr, req.Kind, req.Patient, req.Plan, req.Branch, req.Label, strconv.Itoa(req.Sessions))
		total += req.Sessions
	}
	aba, standard := batch.Counts()
	fmt.Fprintf(w, "\n  ABA: %d  Típico: %d  Sessões: %d  Linhas ignoradas: %d\n", aba, standard, total, batch.Skipped)
}

func writeCSV(w io.Writer, batch *authreq.Batch, out string) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Paciente", "Plano", "Filial", "Modelo", "Especialidade", "Sessoes", "Mes", "Ano", "Arquivo"})
	for _, req := range batch.Requests {
		_ = cw.Write([]string{
			req.Patient,
			req.Plan,
			req.Branch,
			req.Kind.String(),
			req.Label,
			strconv.Itoa(req.Sessions),
			strconv.Itoa(int(req.Month)),
			strconv.Itoa(req.Year),
			authreq.OutputPath(out, req),
		})
	}
	cw.Flush()
	return cw.Error()
}

func preview(w io.Writer, r *pdf.Renderer, batch *authreq.Batch, patient string) error {
	found := false
	for _, req := range batch.Requests {
		if !strings.EqualFold(strings.TrimSpace(patient), req.Patient) {
			continue
		}
		if found {
			fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("-", 70))
		}
		fmt.Fprintf(w, "# %s\n\n", authreq.FileName(req))
		fmt.Fprint(w, r.Text(req))
		found = true
	}
	if !found {
		return fmt.Errorf("no documents for patient %q", patient)
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"kastelo.dev/authreq"
	"kastelo.dev/authreq/pdf"
)

type generator struct {
	renderer *pdf.Renderer
	out      string
	w        io.Writer
	log      *slog.Logger

	// plan each output path was written for during the current run
	seen map[string]string
}

// run renders every request of the batch, printing a line per document. A
// failing document is logged and skipped.
func (g *generator) run(batch *authreq.Batch) (written, failed int) {
	g.seen = make(map[string]string)
	aba, standard := batch.Counts()
	rule := strings.Repeat("=", 70)

	fmt.Fprintf(g.w, "Mês de referência detectado: %s/%d\n", authreq.MonthName(batch.Month), batch.Year)
	fmt.Fprintf(g.w, "Pacientes ABA: %d\n", aba)
	fmt.Fprintf(g.w, "Pacientes Típico: %d\n", standard)
	if batch.Skipped > 0 {
		fmt.Fprintf(g.w, "Linhas ignoradas: %d\n", batch.Skipped)
	}
	fmt.Fprintf(g.w, "%s\n\n", rule)

	fmt.Fprintln(g.w, "--- RELATÓRIOS ABA ---")
	section := authreq.ABA
	for _, req := range batch.Requests {
		if req.Kind != section {
			fmt.Fprintln(g.w)
			fmt.Fprintln(g.w, "--- RELATÓRIOS TÍPICO ---")
			section = req.Kind
		}

		path, err := g.write(req)
		if err != nil {
			g.log.Error("Error generating document", "patient", req.Patient, "path", path, "error", err)
			fmt.Fprintf(g.w, "✗ %-40s | %-20s | %2d sessões | %s\n", req.Patient, req.Label, req.Sessions, req.Branch)
			failed++
			continue
		}
		fmt.Fprintf(g.w, "✓ %-40s | %-20s | %2d sessões | %s\n", req.Patient, req.Label, req.Sessions, req.Branch)
		written++
	}
	if section == authreq.ABA {
		fmt.Fprintln(g.w)
		fmt.Fprintln(g.w, "--- RELATÓRIOS TÍPICO ---")
	}

	abs, err := filepath.Abs(g.out)
	if err != nil {
		abs = g.out
	}
	fmt.Fprintf(g.w, "\n%s\n", rule)
	fmt.Fprintf(g.w, "Total de relatórios gerados: %d\n", written)
	if failed > 0 {
		fmt.Fprintf(g.w, "Falhas: %d\n", failed)
	}
	fmt.Fprintf(g.w, "Pasta de saída: %s\n", abs)
	return written, failed
}

// path returns where req is written. A patient with documents under
// several plans at one branch gets the plan added to the later file names.
func (g *generator) path(req authreq.Request) (string, error) {
	path := authreq.OutputPath(g.out, req)
	prev, ok := g.seen[path]
	if !ok {
		g.seen[path] = req.Plan
		return path, nil
	}

	alt := authreq.PlanOutputPath(g.out, req)
	if other, ok := g.seen[alt]; ok {
		return alt, fmt.Errorf("%s: already written for plan %s", alt, other)
	}
	g.seen[alt] = req.Plan
	g.log.Warn("Output file already written this run, adding plan to name", "patient", req.Patient, "plan", req.Plan, "other_plan", prev, "path", alt)
	return alt, nil
}

func (g *generator) write(req authreq.Request) (string, error) {
	path, err := g.path(req)
	if err != nil {
		return path, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, err
	}
	fd, err := os.Create(path)
	if err != nil {
		return path, err
	}
	if err := g.renderer.Render(fd, req); err != nil {
		fd.Close()
		os.Remove(path)
		return path, err
	}
	return path, fd.Close()
}

// Package pdf renders authorization requests as PDF documents.
package pdf

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"kastelo.dev/authreq"
)

// Page geometry in millimetres.
const (
	pageWidth    = 210
	marginLeft   = 30
	marginTop    = 30
	marginRight  = 20
	marginBottom = 20
	logoWidth    = 45
	logoTop      = 10
	logoGap      = 35
	noLogoGap    = 10
	fontFamily   = "Helvetica"
	fontSize     = 12
)

type Renderer struct {
	// Logo is the path of an image printed at the top right of the
	// document. Ignored if the file does not exist.
	Logo string
	City string
	Date time.Time
}

func New(logo, city string, date time.Time) *Renderer {
	return &Renderer{Logo: logo, City: city, Date: date}
}

func (r *Renderer) hasLogo() bool {
	if r.Logo == "" {
		return false
	}
	st, err := os.Stat(r.Logo)
	return err == nil && !st.IsDir()
}

// Render writes the document for req to w.
func (r *Renderer) Render(w io.Writer, req authreq.Request) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginLeft, marginTop, marginRight)
	doc.SetAutoPageBreak(true, marginBottom)
	doc.SetCreator("kastelo.dev/authreq", false)
	doc.SetTitle(fmt.Sprintf("%s %s", req.Patient, req.Label), true)
	doc.SetCreationDate(r.Date)
	doc.AliasNbPages("")

	logo := r.hasLogo()
	logoFirstOnly := req.Kind == authreq.ABA
	doc.SetHeaderFunc(func() {
		if !logo || (logoFirstOnly && doc.PageNo() > 1) {
			doc.Ln(noLogoGap)
			return
		}
		doc.ImageOptions(r.Logo, pageWidth-marginRight-logoWidth, logoTop, logoWidth, 0,
			false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
		doc.Ln(logoGap)
	})
	doc.SetFooterFunc(func() {
		doc.SetY(-20)
		doc.SetFont(fontFamily, "I", 8)
		doc.SetTextColor(128, 128, 128)
	})

	doc.AddPage()
	doc.SetTextColor(0, 0, 0)
	draw(doc, r.layout(req), encode)

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("rendering %s: %w", authreq.FileName(req), err)
	}
	return nil
}

// encode converts s to Windows-1252 for the core fonts. Characters the
// code page lacks become '?'.
func encode(s string) string {
	t := transform.Chain(runes.Map(func(r rune) rune {
		if _, ok := charmap.Windows1252.EncodeRune(r); ok {
			return r
		}
		return '?'
	}), charmap.Windows1252.NewEncoder())
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.Map(func(r rune) rune {
			if r < 0x80 {
				return r
			}
			return '?'
		}, s)
	}
	return out
}

func draw(doc *fpdf.Fpdf, blocks []block, tr func(string) string) {
	for _, b := range blocks {
		switch b.kind {
		case gap:
			doc.Ln(b.height)

		case line:
			doc.SetFont(fontFamily, b.style, fontSize)
			doc.CellFormat(0, b.height, tr(b.text), "", 1, b.align, false, 0, "")

		case paragraph:
			for _, s := range b.spans {
				style := ""
				if s.bold {
					style = "B"
				}
				doc.SetFont(fontFamily, style, fontSize)
				doc.Write(b.height, tr(s.text))
			}
			doc.Ln(b.height)
		}
	}
}

// Text returns a plain text rendition of the document for req. Bold text
// is wrapped in ** and underlined text in __.
func (r *Renderer) Text(req authreq.Request) string {
	var sb strings.Builder
	for _, b := range r.layout(req) {
		switch b.kind {
		case gap:
			sb.WriteString("\n")

		case line:
			sb.WriteString(decorate(b.text, b.style))
			sb.WriteString("\n")

		case paragraph:
			for _, s := range b.spans {
				if s.bold {
					sb.WriteString(decorate(s.text, "B"))
				} else {
					sb.WriteString(s.text)
				}
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func decorate(text, style string) string {
	switch style {
	case "B":
		return "**" + text + "**"
	case "U":
		return "__" + text + "__"
	default:
		return text
	}
}

package pdf

import (
	"fmt"
	"strconv"

	"kastelo.dev/authreq"
)

type blockKind int

const (
	line blockKind = iota
	gap
	paragraph
)

type span struct {
	text string
	bold bool
}

// A block is one vertical element of a page: a single line cell, a gap, or
// a wrapped paragraph of mixed bold and normal spans.
type block struct {
	kind   blockKind
	text   string
	style  string
	align  string
	height float64
	spans  []span
}

func textLine(text, style, align string, height float64) block {
	return block{kind: line, text: text, style: style, align: align, height: height}
}

func space(height float64) block {
	return block{kind: gap, height: height}
}

func para(spans ...span) block {
	return block{kind: paragraph, height: 7, spans: spans}
}

func normal(text string) span { return span{text: text} }
func bold(text string) span { return span{text: text, bold: true} }

const (
	locality   = "BRASÍLIA - DF"
	salutation = "Prezados(as) Senhores(as)"
	closing    = "Atenciosamente,"
)

const interventionText1 = "A educação no mundo contemporâneo favorece o desenvolvimento de habilidades e " +
	"competências das crianças e jovens, com vistas não apenas à formação acadêmica, " +
	"mas ao desenvolvimento dos aspectos socioemocionais e, sobretudo, na construção " +
	"de um projeto de vida, exigindo assim um olhar coletivo sobre o indivíduo. Por isso, " +
	"tanto a legislação educacional - como, por exemplo, a Base Nacional Curricular " +
	"Comum (nova BNCC) - quanto às abordagens psicopedagógicas atuais - como as " +
	"inteligências múltiplas de Gardner ou alguns achados neurocientíficos - abriram " +
	"novas perspectivas para o processo de ensino e aprendizagem."

const interventionText2 = "A multiplicidade interventiva aproxima o paciente da realidade socioemocional de " +
	"uma maneira leve e espontânea, possibilitando desenvolver suas habilidades e " +
	"competências para o mundo social que compartilhamos atualmente."

const interventionText3 = "A ciência ABA tem como foco o trabalho de estimulação, aquisição de novas " +
	"habilidades, ampliação, remodelação e reforço comportamental no âmbito social, " +
	"comunicativo, cognitivo, emocional e acadêmico. As intervenções devem ser feitas de " +
	"forma contínua e repetitivas, para aumento dos comportamentos e habilidades. Essa " +
	"abordagem consiste em conjunto a terapia psicológica, cujo objetivo é observar as " +
	"habilidades atencionais, sociais, cognitivas, possíveis déficits e dificuldades, assim " +
	"como aspectos psicológicos."

func (r *Renderer) heading(req authreq.Request) []block {
	payer := authreq.PayerFor(req.Plan)
	return []block{
		textLine(fmt.Sprintf("%s, %s", r.City, authreq.LongDate(r.Date)), "B", "R", 8),
		space(10),
		textLine("Ao", "", "L", 6),
		textLine(payer.Department, "B", "L", 6),
		textLine(payer.Name, "", "L", 6),
		textLine(locality, "U", "L", 6),
		space(12),
		textLine(salutation, "", "L", 8),
		space(9),
	}
}

func sessionCount(n int) string {
	return fmt.Sprintf("%d (%s)", n, authreq.SessionWords(n))
}

func (r *Renderer) standardLayout(req authreq.Request) []block {
	blocks := r.heading(req)
	blocks = append(blocks,
		para(
			normal("Solicitamos autorização para realização de "),
			bold(sessionCount(req.Sessions)),
			normal(" sessões de "),
			bold(req.Label),
			normal(" para o(a) paciente "),
			bold(authreq.Upper(req.Patient)),
			normal(", para o mês de "),
			bold(authreq.MonthName(req.Month)),
			normal(" de "),
			bold(strconv.Itoa(req.Year)),
			normal(". O(a) paciente necessita de acompanhamento constante na especialidade "+
				"mencionada para obtenção de bom resultado terapêutico."),
		),
		space(10),
		textLine(closing, "", "L", 8),
	)
	return blocks
}

func (r *Renderer) abaLayout(req authreq.Request) []block {
	blocks := r.heading(req)
	blocks = append(blocks,
		para(
			normal("Informamos que o paciente "),
			bold(authreq.Upper(req.Patient)),
			normal(" foi encaminhado a esta clínica, por essa diretoria, para atendimento em "+
				"terapias multi e interdisciplinares, com uso da ciência "),
			bold("ABA"),
			normal(" (Applied Behavior Analysis), por tempo indeterminado."),
		),
		space(8),
		textLine("PROPOSTA DE INTERVENÇÃO", "B", "C", 8),
		space(6),
		para(normal(interventionText1)),
		space(6),
		para(normal(interventionText2)),
		space(6),
		para(normal(interventionText3)),
		space(8),
		textLine("PROPOSTA DE ATENDIMENTO", "B", "C", 8),
		space(6),
		para(
			normal("Com vistas à implantação da intervenção proposta, solicitamos autorização para "+
				"realização de "),
			bold(sessionCount(req.Sessions)),
			normal(" sessões de "),
			bold(req.Label),
			normal(" no mês de "),
			bold(authreq.MonthName(req.Month)),
			normal(" de "),
			bold(strconv.Itoa(req.Year)),
			normal("."),
		),
		space(12),
		textLine(closing, "", "L", 8),
	)
	return blocks
}

func (r *Renderer) layout(req authreq.Request) []block {
	if req.Kind == authreq.ABA {
		return r.abaLayout(req)
	}
	return r.standardLayout(req)
}

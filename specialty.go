package authreq

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// FallbackLabel is used for session types without a mapping.
const FallbackLabel = "PSICOLOGIA"

// ABALabel is the label ABA documents are issued under.
const ABALabel = "TERAPIA ABA"

// Specialties maps an upper-cased session type to the specialty label
// printed on the document.
type Specialties map[string]string

// DefaultSpecialties returns the labels of the clinic's session types.
func DefaultSpecialties() Specialties {
	s := make(Specialties)
	s["TERAPIA ABA - SESSAO"] = "PSICOLOGIA (TERAPIA ABA)"
	s["TERAPIA ABA - ATENDIMENTO SEMANAL CONFORME ESPECIFICACAO MEDICA"] = "PSICOLOGIA (TERAPIA ABA)"
	s["PSICOTERAPIA INDIVIDUAL"] = "PSICOLOGIA"
	s["AVALIACAO PSICOLOGICA"] = "PSICOLOGIA"
	s["PSICOPEDAGOGIA INDIVIDUAL"] = "PSICOPEDAGOGIA"
	s["PSICOMOTRICIDADE INDIVIDUAL"] = "PSICOMOTRICIDADE"
	s["SESSOES DE FONOTERAPIA/FONOAUDIOLOGIA"] = "FONOAUDIOLOGIA"
	s["TERAPIA OCUPACIONAL - AVALIACAO DOS COMPONENTES DE DESEMPENHO OCUPACIONAL - SESSOES"] = "TERAPIA OCUPACIONAL"
	return s
}

// Label returns the document label for a session type.
func (s Specialties) Label(sessionType string) string {
	if l, ok := s[strings.ToUpper(strings.TrimSpace(sessionType))]; ok {
		return l
	}
	return FallbackLabel
}

// LoadSpecialties reads "<session type> <label>" pairs, one per line, and
// merges them over the defaults. Blank lines and # comments are ignored.
func LoadSpecialties(r io.Reader) (Specialties, error) {
	res := DefaultSpecialties()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		words := splitWords(sc.Text())
		switch len(words) {
		case 0:
			continue
		case 2:
			res[strings.ToUpper(strings.TrimSpace(words[0]))] = strings.TrimSpace(words[1])
		default:
			return nil, fmt.Errorf("line %d: expected session type and label, got %d words", line, len(words))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// IsABA reports whether a specialty names ABA therapy.
func IsABA(specialty string) bool {
	for _, w := range strings.FieldsFunc(strings.ToUpper(specialty), func(r rune) bool {
		return r == ' ' || r == '(' || r == ')' || r == '-' || r == '/' || r == ','
	}) {
		if w == "ABA" {
			return true
		}
	}
	return false
}

// dominantLabel returns the most frequent label, ties broken alphabetically.
func dominantLabel(sessions []Session) string {
	counts := make(map[string]int)
	for _, s := range sessions {
		counts[s.Specialty]++
	}
	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})
	if len(labels) == 0 {
		return FallbackLabel
	}
	return labels[0]
}

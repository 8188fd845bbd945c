package authreq

import (
	"strings"
)

// Payer is the addressee block of a document.
type Payer struct {
	Department string
	Name       string
}

var payers = map[string]Payer{
	"CBMDF": {
		Department: "DIRETORIA DE SAÚDE",
		Name:       "CORPO DE BOMBEIROS MILITAR DO DISTRITO FEDERAL (CBMDF)",
	},
	"PMDF": {
		Department: "SAÚDE PMDF",
		Name:       "POLÍCIA MILITAR DO DISTRITO FEDERAL (PMDF)",
	},
	"FUSEX": {
		Department: "FUNDO DE SAÚDE DO EXÉRCITO (FUSEX)",
		Name:       "HOSPITAL MILITAR DA ÁREA DE BRASÍLIA (HMAB)",
	},
}

// PayerFor returns the addressee for a plan. Unknown plans are addressed
// to a health department named after the plan.
func PayerFor(plan string) Payer {
	p := Upper(strings.TrimSpace(plan))
	if payer, ok := payers[p]; ok {
		return payer
	}
	return Payer{
		Department: "SAÚDE " + p,
		Name:       p,
	}
}

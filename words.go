package authreq

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthName returns the Portuguese name of m in lower case.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return strconv.Itoa(int(m))
	}
	return monthNames[m-1]
}

// LongDate formats t as "5 de março de 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), MonthName(t.Month()), t.Year())
}

var units = [...]string{
	"zero", "uma", "duas", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
	"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove",
}

var tens = [...]string{
	"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa",
}

var hundreds = [...]string{
	"", "cento", "duzentas", "trezentas", "quatrocentas", "quinhentas", "seiscentas", "setecentas", "oitocentas", "novecentas",
}

// SessionWords spells n in Portuguese, feminine, as in "vinte e duas
// sessões". Numbers outside 0-999 are returned as digits.
func SessionWords(n int) string {
	switch {
	case n < 0 || n > 999:
		return strconv.Itoa(n)
	case n < 20:
		return units[n]
	case n < 100:
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + " e " + units[n%10]
	case n == 100:
		return "cem"
	default:
		if n%100 == 0 {
			return hundreds[n/100]
		}
		return hundreds[n/100] + " e " + SessionWords(n%100)
	}
}

var upperCaser = cases.Upper(language.BrazilianPortuguese)

// Upper upper-cases s using Portuguese casing rules.
func Upper(s string) string {
	return upperCaser.String(s)
}

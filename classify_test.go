package authreq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func group(sessions ...Session) *Group {
	return &Group{Key: Key{Patient: "Ana"}, Sessions: sessions, months: newTally()}
}

func sessions(n int, typ, spec string) []Session {
	res := make([]Session, n)
	for i := range res {
		res[i] = Session{Type: typ, Specialty: spec}
	}
	return res
}

func TestExclusionRule(t *testing.T) {
	psi := Session{Type: "PSICOTERAPIA INDIVIDUAL", Specialty: "PSICOLOGIA"}
	aba := Session{Type: "TERAPIA ABA - SESSAO", Specialty: "PSICOLOGIA (TERAPIA ABA)"}
	fono := Session{Type: "SESSOES DE FONOTERAPIA/FONOAUDIOLOGIA", Specialty: "FONOAUDIOLOGIA"}

	cases := []struct {
		name string
		rule ExclusionRule
		in   *Group
		out  Kind
	}{
		{"only psychotherapy", ExclusionRule{}, group(psi, psi), Standard},
		{"mixed with ABA", ExclusionRule{}, group(psi, aba), ABA},
		{"any other type", ExclusionRule{}, group(fono), ABA},
		{"custom standard types", ExclusionRule{StandardTypes: []string{"PSICOTERAPIA INDIVIDUAL", "SESSOES DE FONOTERAPIA/FONOAUDIOLOGIA"}}, group(psi, fono), Standard},
		{"case insensitive", ExclusionRule{}, group(Session{Type: "Psicoterapia Individual"}), Standard},
	}

	for _, c := range cases {
		assert.Equal(t, c.out, c.rule.Classify(c.in), c.name)
	}
}

func TestSpecialtyRule(t *testing.T) {
	assert.Equal(t, ABA, SpecialtyRule{}.Classify(group(
		Session{Type: "PSICOTERAPIA INDIVIDUAL", Specialty: "PSICOLOGIA"},
		Session{Type: "PSICOTERAPIA INDIVIDUAL", Specialty: "Psicologia (ABA)"},
	)))
	assert.Equal(t, Standard, SpecialtyRule{}.Classify(group(
		Session{Type: "SESSOES DE FONOTERAPIA/FONOAUDIOLOGIA", Specialty: "FONOAUDIOLOGIA"},
		Session{Type: "PSICOPEDAGOGIA INDIVIDUAL", Specialty: "PSICOPEDAGOGIA"},
	)))
	assert.Equal(t, Standard, SpecialtyRule{}.Classify(group()))
}

func TestThresholdRule(t *testing.T) {
	rule := ThresholdRule{MinSessions: 4}

	assert.Equal(t, Standard, rule.Classify(group(sessions(3, "TERAPIA ABA - SESSAO", "PSICOLOGIA (TERAPIA ABA)")...)))
	assert.Equal(t, ABA, rule.Classify(group(sessions(4, "TERAPIA ABA - SESSAO", "PSICOLOGIA (TERAPIA ABA)")...)))
	assert.Equal(t, Standard, rule.Classify(group(sessions(10, "PSICOTERAPIA INDIVIDUAL", "PSICOLOGIA")...)))
}

func TestRuleByName(t *testing.T) {
	r, err := RuleByName("", 0)
	require.NoError(t, err)
	assert.IsType(t, ExclusionRule{}, r)

	r, err = RuleByName(" Specialty ", 0)
	require.NoError(t, err)
	assert.IsType(t, SpecialtyRule{}, r)

	r, err = RuleByName("threshold", 0)
	require.NoError(t, err)
	assert.Equal(t, ThresholdRule{MinSessions: DefaultThreshold}, r)

	r, err = RuleByName("threshold", 12)
	require.NoError(t, err)
	assert.Equal(t, ThresholdRule{MinSessions: 12}, r)

	_, err = RuleByName("coin-flip", 0)
	assert.ErrorIs(t, err, ErrUnknownRule)
}

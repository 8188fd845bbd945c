package authreq

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var planRecords = []Record{
	{Patient: "Bruno Lima", Plan: "PMDF", SessionType: "PSICOTERAPIA INDIVIDUAL", Branch: "Matriz", Date: day(2026, 2, 20)},
	{Patient: "Bruno Lima", Plan: "PMDF", SessionType: "TERAPIA ABA - SESSAO", Branch: "Matriz", Date: day(2026, 3, 2)},
	{Patient: "Bruno Lima", Plan: "PMDF", SessionType: "TERAPIA ABA - SESSAO", Branch: "Matriz", Date: day(2026, 3, 9)},
	{Patient: "Ana Souza", Plan: "CBMDF", SessionType: "PSICOTERAPIA INDIVIDUAL", Branch: "Matriz", Date: day(2026, 3, 3)},
	{Patient: "Ana Souza", Plan: "CBMDF", SessionType: "PSICOTERAPIA INDIVIDUAL", Branch: "Matriz", Date: day(2026, 3, 10)},
	{Patient: "Ana Souza", Plan: "CBMDF", SessionType: "PSICOTERAPIA INDIVIDUAL", Branch: "Asa Sul", Date: day(2026, 3, 17)},
	{Patient: "Carla Dias", Plan: "FUSEX", SessionType: "SESSOES DE FONOTERAPIA/FONOAUDIOLOGIA", Branch: "Matriz", Date: day(2026, 1, 15)},
}

func TestGroupRecords(t *testing.T) {
	groups := GroupRecords(planRecords, DefaultSpecialties())
	require.Len(t, groups, 4)

	assert.Equal(t, Key{"Ana Souza", "CBMDF", "Asa Sul"}, groups[0].Key)
	assert.Equal(t, Key{"Ana Souza", "CBMDF", "Matriz"}, groups[1].Key)
	assert.Equal(t, Key{"Bruno Lima", "PMDF", "Matriz"}, groups[2].Key)
	assert.Equal(t, Key{"Carla Dias", "FUSEX", "Matriz"}, groups[3].Key)

	assert.Equal(t, []string{"PSICOTERAPIA INDIVIDUAL", "TERAPIA ABA - SESSAO"}, groups[2].Types())
	assert.Equal(t, "PSICOLOGIA (TERAPIA ABA)", groups[2].Sessions[1].Specialty)
	assert.Equal(t, map[string]int{"2026-02": 1, "2026-03": 2}, groups[2].months.months)
}

func TestGroupRecordsKeepsRecordSpecialty(t *testing.T) {
	groups := GroupRecords([]Record{
		{Patient: "Ana", Plan: "CBMDF", SessionType: "PSICOTERAPIA INDIVIDUAL", Specialty: "Psicologia ABA", Branch: "Matriz"},
	}, DefaultSpecialties())
	require.Len(t, groups, 1)
	assert.Equal(t, "Psicologia ABA", groups[0].Sessions[0].Specialty)
}

func TestPlanExclusion(t *testing.T) {
	batch := Plan(GroupRecords(planRecords, DefaultSpecialties()), ExclusionRule{})

	assert.Equal(t, time.March, batch.Month)
	assert.Equal(t, 2026, batch.Year)

	require.Len(t, batch.Requests, 4)
	aba, standard := batch.Counts()
	assert.Equal(t, 2, aba)
	assert.Equal(t, 2, standard)

	// ABA first, then standard, each sorted by key
	bruno := batch.Requests[0]
	assert.Equal(t, "Bruno Lima", bruno.Patient)
	assert.Equal(t, ABA, bruno.Kind)
	assert.Equal(t, ABALabel, bruno.Label)
	assert.Equal(t, 3, bruno.Sessions)

	carla := batch.Requests[1]
	assert.Equal(t, "Carla Dias", carla.Patient)
	assert.Equal(t, ABA, carla.Kind)

	ana := batch.Requests[2]
	assert.Equal(t, Key{"Ana Souza", "CBMDF", "Asa Sul"}, ana.Key)
	assert.Equal(t, Standard, ana.Kind)
	assert.Equal(t, "PSICOLOGIA", ana.Label)
	assert.Equal(t, 1, ana.Sessions)
	assert.Equal(t, 2, batch.Requests[3].Sessions)

	total := 0
	seen := make(map[Key]bool)
	for _, req := range batch.Requests {
		assert.False(t, seen[req.Key], "key %v planned twice", req.Key)
		seen[req.Key] = true
		total += req.Sessions
		assert.Equal(t, time.March, req.Month)
	}
	assert.Equal(t, len(planRecords), total)
}

func TestPlanSpecialty(t *testing.T) {
	batch := Plan(GroupRecords(planRecords, DefaultSpecialties()), SpecialtyRule{})
	aba, standard := batch.Counts()
	assert.Equal(t, 1, aba)
	assert.Equal(t, 3, standard)

	carla := batch.Requests[len(batch.Requests)-1]
	assert.Equal(t, "Carla Dias", carla.Patient)
	assert.Equal(t, "FONOAUDIOLOGIA", carla.Label)
}

func TestPlanNoSessions(t *testing.T) {
	batch := Plan(nil, ExclusionRule{})
	assert.Empty(t, batch.Requests)
	assert.Equal(t, time.January, batch.Month)
	assert.Equal(t, time.Now().Year(), batch.Year)
}

func TestPlanGroupLiteral(t *testing.T) {
	groups := []*Group{
		{Key: Key{Patient: "Ana"}, Sessions: []Session{{Type: "PSICOTERAPIA INDIVIDUAL", Specialty: "PSICOLOGIA", Date: day(2026, 4, 7)}}},
		{Key: Key{Patient: "Bruno"}, Sessions: []Session{{Type: "TERAPIA ABA - SESSAO"}, {Type: "TERAPIA ABA - SESSAO"}}},
	}
	batch := Plan(groups, ExclusionRule{})
	require.Len(t, batch.Requests, 2)
	assert.Equal(t, time.April, batch.Month)
	assert.Equal(t, 2026, batch.Year)
	assert.Equal(t, "Bruno", batch.Requests[0].Patient)
	assert.Equal(t, 2, batch.Requests[0].Sessions)
	assert.Equal(t, map[string]int{"2026-04": 1}, batch.Requests[1].Months)
}

func TestPlanAcrossYearBoundary(t *testing.T) {
	records := []Record{
		{Patient: "Ana", Plan: "CBMDF", SessionType: "PSICOTERAPIA INDIVIDUAL", Branch: "Matriz", Date: day(2025, 12, 15)},
		{Patient: "Ana", Plan: "CBMDF", SessionType: "PSICOTERAPIA INDIVIDUAL", Branch: "Matriz", Date: day(2025, 12, 22)},
		{Patient: "Bruno", Plan: "PMDF", SessionType: "PSICOTERAPIA INDIVIDUAL", Branch: "Matriz", Date: day(2026, 1, 5)},
	}
	batch := Plan(GroupRecords(records, DefaultSpecialties()), ExclusionRule{})
	assert.Equal(t, time.January, batch.Month)
	assert.Equal(t, 2026, batch.Year)
	for _, req := range batch.Requests {
		assert.Equal(t, time.January, req.Month, req.Patient)
		assert.Equal(t, 2026, req.Year, req.Patient)
	}
}

func TestBuild(t *testing.T) {
	batch := Build(&Result{Records: planRecords, Skipped: []int{4, 9}}, ThresholdRule{MinSessions: 3}, DefaultSpecialties())
	assert.Equal(t, 2, batch.Skipped)
	aba, _ := batch.Counts()
	assert.Equal(t, 1, aba)
	assert.Equal(t, day(2026, 1, 1), batch.Starts())
	assert.Equal(t, day(2026, 3, 1), batch.Ends())
}

func TestDominantLabel(t *testing.T) {
	assert.Equal(t, "FONOAUDIOLOGIA", dominantLabel([]Session{
		{Specialty: "PSICOLOGIA"}, {Specialty: "FONOAUDIOLOGIA"}, {Specialty: "FONOAUDIOLOGIA"},
	}))
	assert.Equal(t, "FONOAUDIOLOGIA", dominantLabel([]Session{
		{Specialty: "PSICOLOGIA"}, {Specialty: "FONOAUDIOLOGIA"},
	}))
	assert.Equal(t, FallbackLabel, dominantLabel(nil))
}

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(Config{})
	require.NoError(t, err)

	assert.Equal(t, "relatorios", cfg.Out)
	assert.Equal(t, "Brasília", cfg.City)
	assert.Equal(t, "exclusion", cfg.Rule)
	assert.Equal(t, 8, cfg.Threshold)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Tipo Atendimento", cfg.Columns.Plan)
	assert.Equal(t, "Plano", cfg.Columns.SessionType)
	assert.Empty(t, cfg.SkipStatus)
}

func TestLoadEnvAndFlags(t *testing.T) {
	t.Setenv("AUTHREQ_OUT", "/tmp/env-out")
	t.Setenv("AUTHREQ_CITY", "Taguatinga")
	t.Setenv("AUTHREQ_THRESHOLD", "12")
	t.Setenv("AUTHREQ_SKIP_STATUS", "CANCELADO,FALTA")
	t.Setenv("AUTHREQ_COLUMN_PLAN", "Plano")

	cfg, err := Load(Config{
		Out:  "/tmp/flag-out",
		Rule: "threshold",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/flag-out", cfg.Out)
	assert.Equal(t, "Taguatinga", cfg.City)
	assert.Equal(t, "threshold", cfg.Rule)
	assert.Equal(t, 12, cfg.Threshold)
	assert.Equal(t, []string{"CANCELADO", "FALTA"}, cfg.SkipStatus)
	assert.Equal(t, "Plano", cfg.Columns.Plan)
	assert.Equal(t, "Paciente", cfg.Columns.Patient)
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("AUTHREQ_THRESHOLD", "many")
	_, err := Load(Config{})
	assert.Error(t, err)
}

func TestDocumentDate(t *testing.T) {
	d, err := Config{Date: "15/10/2026"}.DocumentDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = Config{Date: "someday"}.DocumentDate()
	assert.Error(t, err)

	d, err = Config{}.DocumentDate()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), d, time.Minute)
}

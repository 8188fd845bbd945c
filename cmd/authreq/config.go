package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/kelseyhightower/envconfig"
	"kastelo.dev/authreq"
)

const envPrefix = "AUTHREQ"

// Config is read from AUTHREQ_* environment variables, with command line
// flags taking precedence.
type Config struct {
	Input       string        `envconfig:"INPUT"`
	DSN         string        `envconfig:"DSN"`
	Query       string        `envconfig:"QUERY" default:"SELECT * FROM atendimentos"`
	Out         string        `envconfig:"OUT" default:"relatorios"`
	Logo        string        `envconfig:"LOGO"`
	City        string        `envconfig:"CITY" default:"Brasília"`
	Rule        string        `envconfig:"RULE" default:"exclusion"`
	Threshold   int           `envconfig:"THRESHOLD" default:"8"`
	Specialties string        `envconfig:"SPECIALTIES"`
	SkipStatus  []string      `envconfig:"SKIP_STATUS"`
	Date        string        `envconfig:"DATE"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	Columns     ColumnsConfig `envconfig:"COLUMN"`
}

type ColumnsConfig struct {
	Patient     string `envconfig:"PATIENT" default:"Paciente"`
	Plan        string `envconfig:"PLAN" default:"Tipo Atendimento"`
	SessionType string `envconfig:"SESSION_TYPE" default:"Plano"`
	Date        string `envconfig:"DATE" default:"Data"`
	Status      string `envconfig:"STATUS" default:"Status"`
	Branch      string `envconfig:"BRANCH" default:"Tipo Filial"`
	Specialty   string `envconfig:"SPECIALTY" default:"Especialidade"`
}

func (c ColumnsConfig) columns() authreq.Columns {
	return authreq.Columns{
		Patient:     c.Patient,
		Plan:        c.Plan,
		SessionType: c.SessionType,
		Date:        c.Date,
		Status:      c.Status,
		Branch:      c.Branch,
		Specialty:   c.Specialty,
	}
}

// Load merges flags over the environment and defaults. Zero valued flags
// are treated as not given.
func Load(flags Config) (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config from env: %w", err)
	}
	if err := mergo.Merge(&cfg, flags, mergo.WithOverride); err != nil {
		return Config{}, fmt.Errorf("merging flags: %w", err)
	}
	return cfg, nil
}

// DocumentDate is the date printed on the documents, today unless
// overridden.
func (c Config) DocumentDate() (time.Time, error) {
	if c.Date == "" {
		return time.Now(), nil
	}
	t, err := authreq.ParseDate(c.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("document date: %w", err)
	}
	return t, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

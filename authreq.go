package authreq // import "kastelo.dev/authreq"

import (
	"time"
)

// Record is one attendance row from the source sheet.
type Record struct {
	Row         int
	Patient     string
	Plan        string
	SessionType string
	Specialty   string
	Status      string
	Branch      string
	Date        time.Time
}

type Key struct {
	Patient string
	Plan    string
	Branch  string
}

type Session struct {
	Type      string
	Specialty string
	Date      time.Time
}

// Group holds every accepted session of one patient under one plan at one
// branch.
type Group struct {
	Key      Key
	Sessions []Session
	months   *tally
}

type Kind int

const (
	Standard Kind = iota
	ABA
)

func (k Kind) String() string {
	switch k {
	case ABA:
		return "ABA"
	default:
		return "TIPICO"
	}
}

// Request is a single authorization document to be produced.
type Request struct {
	Key
	Kind     Kind
	Label    string
	Sessions int
	Month    time.Month
	Year     int
	Months   map[string]int
}

type Batch struct {
	Requests []Request
	Month    time.Month
	Year     int
	Skipped  int
}

// Counts returns the number of ABA and standard requests in the batch.
func (b *Batch) Counts() (aba, standard int) {
	for _, req := range b.Requests {
		if req.Kind == ABA {
			aba++
		} else {
			standard++
		}
	}
	return aba, standard
}

// Starts and Ends give the first and last months with sessions in the batch.
func (b *Batch) Starts() time.Time {
	var starts time.Time
	for _, req := range b.Requests {
		for key := range req.Months {
			t, err := time.Parse(monthKey, key)
			if err != nil {
				continue
			}
			if starts.IsZero() || t.Before(starts) {
				starts = t
			}
		}
	}
	return starts
}

func (b *Batch) Ends() time.Time {
	var ends time.Time
	for _, req := range b.Requests {
		for key := range req.Months {
			t, err := time.Parse(monthKey, key)
			if err != nil {
				continue
			}
			if t.After(ends) {
				ends = t
			}
		}
	}
	return ends
}

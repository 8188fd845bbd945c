package authreq

import (
	"time"
)

const monthKey = "2006-01"

type tally struct {
	total  int
	months map[string]int
}

func newTally() *tally {
	return &tally{
		months: make(map[string]int),
	}
}

func (t *tally) add(date time.Time) {
	t.total++
	t.months[date.Format(monthKey)]++
}

func (t *tally) addAll(other *tally) {
	t.total += other.total
	for key, v := range other.months {
		t.months[key] += v
	}
}

// latest returns the most recent month with at least one session.
func (t *tally) latest() (time.Month, int, bool) {
	var best string
	for key := range t.months {
		if key > best {
			best = key
		}
	}
	if best == "" {
		return 0, 0, false
	}
	d, err := time.Parse(monthKey, best)
	if err != nil {
		return 0, 0, false
	}
	return d.Month(), d.Year(), true
}

func (t *tally) copyMonths() map[string]int {
	res := make(map[string]int, len(t.months))
	for k, v := range t.months {
		res[k] = v
	}
	return res
}

package authreq

import (
	"sort"
	"time"
)

// Plan classifies every group and produces one request per group, ABA
// requests first. The reference month is the latest month seen in any
// group; without sessions it is January of the current year.
func Plan(groups []*Group, rule Rule) *Batch {
	all := newTally()
	for _, g := range groups {
		all.addAll(g.monthTally())
	}
	month, year, ok := all.latest()
	if !ok {
		month, year = time.January, time.Now().Year()
	}

	batch := &Batch{Month: month, Year: year}
	for _, g := range groups {
		req := Request{
			Key:      g.Key,
			Kind:     rule.Classify(g),
			Sessions: len(g.Sessions),
			Month:    month,
			Year:     year,
			Months:   g.monthTally().copyMonths(),
		}
		if req.Kind == ABA {
			req.Label = ABALabel
		} else {
			req.Label = dominantLabel(g.Sessions)
		}
		batch.Requests = append(batch.Requests, req)
	}

	sort.SliceStable(batch.Requests, func(i, j int) bool {
		a, b := batch.Requests[i], batch.Requests[j]
		if a.Kind != b.Kind {
			return a.Kind == ABA
		}
		return a.Key.less(b.Key)
	})
	return batch
}

// Build groups the records of res and plans the batch.
func Build(res *Result, rule Rule, specialties Specialties) *Batch {
	batch := Plan(GroupRecords(res.Records, specialties), rule)
	batch.Skipped = len(res.Skipped)
	return batch
}

package authreq

import (
	"sort"
)

// GroupRecords buckets records by patient, plan and branch. A session's
// specialty is taken from the record when present, otherwise mapped from
// its session type.
func GroupRecords(records []Record, specialties Specialties) []*Group {
	byKey := make(map[Key]*Group)
	var groups []*Group
	for _, rec := range records {
		key := Key{Patient: rec.Patient, Plan: rec.Plan, Branch: rec.Branch}
		g, ok := byKey[key]
		if !ok {
			g = &Group{Key: key, months: newTally()}
			byKey[key] = g
			groups = append(groups, g)
		}
		spec := rec.Specialty
		if spec == "" {
			spec = specialties.Label(rec.SessionType)
		}
		g.Sessions = append(g.Sessions, Session{
			Type:      rec.SessionType,
			Specialty: spec,
			Date:      rec.Date,
		})
		g.months.add(rec.Date)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key.less(groups[j].Key)
	})
	return groups
}

// monthTally returns the per-month session counts, computing them from
// Sessions for groups not built by GroupRecords.
func (g *Group) monthTally() *tally {
	if g.months == nil {
		g.months = newTally()
		for _, s := range g.Sessions {
			g.months.add(s.Date)
		}
	}
	return g.months
}

func (k Key) less(o Key) bool {
	if k.Patient != o.Patient {
		return k.Patient < o.Patient
	}
	if k.Plan != o.Plan {
		return k.Plan < o.Plan
	}
	return k.Branch < o.Branch
}

// Types returns the distinct session types of the group.
func (g *Group) Types() []string {
	seen := make(map[string]bool)
	var res []string
	for _, s := range g.Sessions {
		if !seen[s.Type] {
			seen[s.Type] = true
			res = append(res, s.Type)
		}
	}
	sort.Strings(res)
	return res
}

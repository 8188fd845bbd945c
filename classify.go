package authreq

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRule = errors.New("unknown rule")

// A Rule decides which document template a group gets.
type Rule interface {
	Classify(g *Group) Kind
}

// ExclusionRule classifies a group as ABA as soon as it has any session
// type that is not one of the standard types.
type ExclusionRule struct {
	StandardTypes []string
}

func (r ExclusionRule) Classify(g *Group) Kind {
	std := r.StandardTypes
	if len(std) == 0 {
		std = []string{"PSICOTERAPIA INDIVIDUAL"}
	}
	for _, s := range g.Sessions {
		standard := false
		for _, t := range std {
			if strings.EqualFold(s.Type, t) {
				standard = true
				break
			}
		}
		if !standard {
			return ABA
		}
	}
	return Standard
}

// SpecialtyRule classifies a group as ABA when any session was given under
// an ABA specialty.
type SpecialtyRule struct{}

func (SpecialtyRule) Classify(g *Group) Kind {
	for _, s := range g.Sessions {
		if IsABA(s.Specialty) {
			return ABA
		}
	}
	return Standard
}

// ThresholdRule is SpecialtyRule with a minimum number of sessions.
type ThresholdRule struct {
	MinSessions int
}

func (r ThresholdRule) Classify(g *Group) Kind {
	if len(g.Sessions) < r.MinSessions {
		return Standard
	}
	return SpecialtyRule{}.Classify(g)
}

const DefaultThreshold = 8

// Rule names accepted by RuleByName.
const (
	RuleExclusion = "exclusion"
	RuleSpecialty = "specialty"
	RuleThreshold = "threshold"
)

var RuleNames = []string{RuleExclusion, RuleSpecialty, RuleThreshold}

func RuleByName(name string, threshold int) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case RuleExclusion, "":
		return ExclusionRule{}, nil
	case RuleSpecialty:
		return SpecialtyRule{}, nil
	case RuleThreshold:
		if threshold <= 0 {
			threshold = DefaultThreshold
		}
		return ThresholdRule{MinSessions: threshold}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownRule, name)
	}
}

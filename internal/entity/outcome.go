package entity

import (
	"fmt"
	"strings"
)

// Outcome is the learner's answer to a single presentation of an item.
type Outcome int

const (
	OutcomeUnspecified Outcome = iota
	OutcomeCorrect
	OutcomeWrong
	OutcomeSkipped
)

var outcomeNames = map[Outcome]string{
	OutcomeCorrect: "correct",
	OutcomeWrong:   "wrong",
	OutcomeSkipped: "skipped",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unspecified"
}

// Valid reports whether o is one of the three answer outcomes.
func (o Outcome) Valid() bool {
	_, ok := outcomeNames[o]
	return ok
}

// ParseOutcome accepts the canonical names plus a few shorthands used on the command line.
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "correct", "right", "c", "y", "yes":
		return OutcomeCorrect, nil
	case "wrong", "incorrect", "w", "n", "no":
		return OutcomeWrong, nil
	case "skipped", "skip", "s":
		return OutcomeSkipped, nil
	default:
		return OutcomeUnspecified, fmt.Errorf("%w: %q", ErrInvalidOutcome, s)
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, ErrInvalidOutcome
	}
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	parsed, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

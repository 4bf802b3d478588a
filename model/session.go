package model

import "fmt"

type Outcome int

const (
	NEUTRAL_ENDING Outcome = iota
	GOOD_ENDING
	BAD_ENDING
)

func (o Outcome) Name() string {
	switch o {
	case GOOD_ENDING:
		return "GOOD_ENDING"
	case BAD_ENDING:
		return "BAD_ENDING"
	case NEUTRAL_ENDING:
		return "NEUTRAL_ENDING"
	default:
		return fmt.Sprintf("N/A(%d)", o)
	}
}

// Evaluate picks the ending from the picked counters. A tie is neutral.
func Evaluate(good, bad int) Outcome {
	switch {
	case good > bad:
		return GOOD_ENDING
	case good < bad:
		return BAD_ENDING
	default:
		return NEUTRAL_ENDING
	}
}

// Session is the score and clock of one play through.
type Session struct {
	GoodPicked    int
	BadPicked     int
	TimeRemaining int
	Running       bool
}

func NewSession(timeLimit int) *Session {
	if timeLimit < 1 {
		panic(fmt.Sprintf("session: time limit must be positive, got %d", timeLimit))
	}
	return &Session{TimeRemaining: timeLimit, Running: true}
}

func (s *Session) Pick(item Item) {
	if item.Good {
		s.GoodPicked++
	} else {
		s.BadPicked++
	}
}

func (s *Session) Outcome() Outcome {
	return Evaluate(s.GoodPicked, s.BadPicked)
}

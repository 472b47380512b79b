package app

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"quiz-cli/internal/domain"
)

// PlayState is the position of a play session in its state machine.
type PlayState int

const (
	StateSelecting PlayState = iota
	StateAwaitingAnswer
	StateCorrect
	StateIncorrect
	StateExhausted
)

func (s PlayState) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StateAwaitingAnswer:
		return "awaiting-answer"
	case StateCorrect:
		return "correct"
	case StateIncorrect:
		return "incorrect"
	case StateExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Terminal reports whether the session has ended.
func (s PlayState) Terminal() bool {
	return s == StateIncorrect || s == StateExhausted
}

// RecordReader is the read-only view of the store a play session needs.
type RecordReader interface {
	Count() int
	Get(i int) (domain.Record, error)
}

// Play draws every record of the store once, in random order, until an answer
// is wrong or nothing is left. It never writes to the store.
type Play struct {
	store   RecordReader
	intn    func(n int) int
	pending []int
	state   PlayState
	score   int
	drawn   int // position in pending of the posed question
	current domain.Record
}

// NewPlay starts a session over every index the store currently has.
func NewPlay(store RecordReader) *Play {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewPlayWithRand(store, rnd.Intn)
}

// NewPlayWithRand lets tests choose the draws. intn must return a value in [0, n).
func NewPlayWithRand(store RecordReader, intn func(n int) int) *Play {
	pending := make([]int, store.Count())
	for i := range pending {
		pending[i] = i
	}
	return &Play{store: store, intn: intn, pending: pending, state: StateSelecting}
}

func (p *Play) State() PlayState { return p.state }

func (p *Play) Score() int { return p.score }

// Remaining is the size of the working set.
func (p *Play) Remaining() int { return len(p.pending) }

// Next leaves Selecting: it either draws a question (ok is true) or moves to
// Exhausted when every question has been answered.
func (p *Play) Next() (domain.Record, bool, error) {
	switch p.state {
	case StateSelecting, StateCorrect:
	case StateAwaitingAnswer:
		return p.current, true, nil
	default:
		return domain.Record{}, false, domain.ErrPlayFinished
	}

	if len(p.pending) == 0 {
		p.state = StateExhausted
		return domain.Record{}, false, nil
	}

	p.drawn = p.intn(len(p.pending))
	record, err := p.store.Get(p.pending[p.drawn])
	if err != nil {
		return domain.Record{}, false, err
	}
	p.current = record
	p.state = StateAwaitingAnswer
	return record, true, nil
}

// Answer judges input against the posed question. A wrong answer ends the session.
func (p *Play) Answer(input string) (bool, error) {
	switch p.state {
	case StateAwaitingAnswer:
	case StateIncorrect, StateExhausted:
		return false, domain.ErrPlayFinished
	default:
		return false, domain.ErrNoQuestionPosed
	}

	if !IsCorrect(p.current, input) {
		p.state = StateIncorrect
		return false, nil
	}
	p.score++
	p.pending = append(p.pending[:p.drawn], p.pending[p.drawn+1:]...)
	p.state = StateCorrect
	return true, nil
}

// IsCorrect compares the trimmed input with the stored answer, case-sensitively.
func IsCorrect(record domain.Record, input string) bool {
	return strings.TrimSpace(input) == record.Answer
}

// Prompter blocks until the user typed a line in reply to prompt.
type Prompter interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// PlayObserver is told about every judged answer, in order.
type PlayObserver interface {
	Judged(record domain.Record, correct bool, score int)
}

// PlayResult is the outcome of a finished session.
type PlayResult struct {
	State PlayState
	Score int
	// Empty is set when the store had no questions at all.
	Empty bool
}

// Run drives p to a terminal state, asking each question through prompter.
// observer may be nil.
func (p *Play) Run(ctx context.Context, prompter Prompter, observer PlayObserver) (PlayResult, error) {
	empty := p.state == StateSelecting && len(p.pending) == 0 && p.score == 0
	for {
		record, ok, err := p.Next()
		if err != nil {
			return PlayResult{}, err
		}
		if !ok {
			return PlayResult{State: p.state, Score: p.score, Empty: empty}, nil
		}

		input, err := prompter.Ask(ctx, record.Question+"?")
		if err != nil {
			return PlayResult{}, err
		}
		correct, err := p.Answer(input)
		if err != nil {
			return PlayResult{}, err
		}
		if observer != nil {
			observer.Judged(record, correct, p.score)
		}
		if !correct {
			return PlayResult{State: p.state, Score: p.score}, nil
		}
	}
}

package domain

import (
	"errors"
	"strconv"
)

const (
	// MsgMissingID is shown when a command that needs an id got none.
	MsgMissingID = "Falta el parámetro id."
	// MsgInvalidID is shown when the id is non-numeric or out of range.
	MsgInvalidID = "El valor del parámetro id no es válido."
)

var (
	// ErrNotFound matches every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("quiz not found")
	// ErrPersist wraps failures of the backing record store.
	ErrPersist = errors.New("persist quizzes")
	// ErrPlayFinished is returned when a finished play session is driven further.
	ErrPlayFinished = errors.New("play session finished")
	// ErrNoQuestionPosed is returned when an answer arrives before a question was drawn.
	ErrNoQuestionPosed = errors.New("no question posed")
)

// NotFoundError reports an id that does not address a record.
type NotFoundError struct {
	// ID is the raw argument as typed; empty when it was absent.
	ID      string
	Missing bool
}

// MissingID builds the error for an absent id argument.
func MissingID() *NotFoundError {
	return &NotFoundError{Missing: true}
}

// InvalidID builds the error for an id that is not a valid index.
func InvalidID(raw string) *NotFoundError {
	return &NotFoundError{ID: raw}
}

// InvalidIndex is InvalidID for an already parsed index.
func InvalidIndex(i int) *NotFoundError {
	return &NotFoundError{ID: strconv.Itoa(i)}
}

func (e *NotFoundError) Error() string {
	if e.Missing {
		return MsgMissingID
	}
	return MsgInvalidID
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ParseIndex turns a raw command argument into an index. It only checks the
// syntax; range checks belong to the store.
func ParseIndex(raw string) (int, error) {
	if raw == "" {
		return 0, MissingID()
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 {
		return 0, InvalidID(raw)
	}
	return i, nil
}

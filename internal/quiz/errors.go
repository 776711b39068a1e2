package quiz

import "errors"

var (
	// ErrNoSelection is returned when an answer is submitted without a valid
	// option selected. State is left untouched.
	ErrNoSelection = errors.New("no answer selected")

	// ErrAlreadyFinished is returned when an answer is submitted after the
	// last question has been answered.
	ErrAlreadyFinished = errors.New("quiz already finished")

	// ErrNotFinished is returned when the final score is requested before
	// every question has been answered.
	ErrNotFinished = errors.New("quiz not finished")

	// ErrInvalidBank indicates a question bank failed validation.
	ErrInvalidBank = errors.New("invalid question bank")
)

package domain

import "errors"

var (
	// ErrMissingColumns indicates the word list header lacks a required column.
	ErrMissingColumns = errors.New("word list must have 'correct', 'wrong', and 'explanation' columns")
	// ErrNoQuestions indicates the question pool is empty.
	ErrNoQuestions = errors.New("no questions available")
	// ErrNameRequired is returned when a game is started without a player name.
	ErrNameRequired = errors.New("player name required")
	// ErrNotFinished is returned when replaying before the round is over.
	ErrNotFinished = errors.New("round not finished")
)

package game

import "errors"

var (
	ErrNoPlayers     = errors.New("no players at the table")
	ErrDeckExhausted = errors.New("deck exhausted")
	ErrInvalidWager  = errors.New("wager must be a positive number")
	ErrInvalidName   = errors.New("player name must not be empty")
	ErrRoundFinished = errors.New("round already played")
)

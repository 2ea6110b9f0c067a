package model

import "errors"

// Common errors used across the application
var (
	// Rules errors
	ErrInvalidMove     = errors.New("invalid move")
	ErrInvalidMoveText = errors.New("invalid move text")

	// Game errors
	ErrGameComplete    = errors.New("game is already complete")
	ErrInvalidSettings = errors.New("invalid game settings")

	// Agent errors
	ErrUnknownStrategy = errors.New("unknown agent strategy")
)

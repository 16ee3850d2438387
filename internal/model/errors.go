package model

import "errors"

// Common errors used across the application
var (
	// Configuration errors
	ErrInvalidConfig   = errors.New("invalid game configuration")
	ErrInvalidQuestion = errors.New("invalid question")
	ErrInvalidPack     = errors.New("invalid question pack")

	// Lookup errors
	ErrTeamNotFound     = errors.New("team not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrGameNotFound     = errors.New("game not found")
	ErrSessionNotFound  = errors.New("guild session not found")
	ErrHostNotFound     = errors.New("host not found")
	ErrPackNotFound     = errors.New("question pack not found")

	// State errors
	ErrNoTeams          = errors.New("game has no teams")
	ErrRoleAlreadyBound = errors.New("team role is already bound")
	ErrAlreadyAnnounced = errors.New("game is already announced")
	ErrAlreadyStarted   = errors.New("game is already started")
	ErrGameNotStarted   = errors.New("game has not started")
	ErrGameEnded        = errors.New("game has ended")
	ErrEnrollmentClosed = errors.New("enrollment is closed")
	ErrAlreadyBuzzed    = errors.New("team has already buzzed on this question")
	ErrQuestionAnswered = errors.New("question is already answered")
	ErrQuestionNotShown = errors.New("question has not been shown")
	ErrGameInProgress   = errors.New("a game is already in progress for this guild")
	ErrNoActiveGame     = errors.New("no active game for this guild")
)

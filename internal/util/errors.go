package util

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrSkillNotFound     = errors.New("skill not found")
	ErrSessionNotFound   = errors.New("quiz session not found")
	ErrSessionCompleted  = errors.New("quiz session already completed")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrQuestionMismatch  = errors.New("question does not belong to the session's skill")
	ErrInvalidOption     = errors.New("selected option must be one of A, B, C, D")
	ErrSkillExists       = errors.New("skill name already exists")
	ErrInvalidDifficulty = errors.New("difficulty must be one of easy, medium, hard")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

package services

import "errors"

// Domain errors. Handlers map these to HTTP status codes and the stable
// error-code strings of the API with errors.Is.
var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrContestNotFound    = errors.New("contest not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrProblemNotFound    = errors.New("problem not found")
	ErrContestNotActive   = errors.New("contest not active")
	ErrAlreadySubmitted   = errors.New("already submitted")
	ErrUserNotFound       = errors.New("user not found")
)

package handlers

import (
	"errors"
	"net/http"

	"contesthub/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Error   interface{} `json:"error"`
}

func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data, Error: nil})
}

func respondError(c *gin.Context, status int, code string) {
	c.JSON(status, Response{Success: false, Data: nil, Error: code})
}

// respondServiceError maps domain errors to status codes and the stable
// error-code strings of the API. Anything unrecognized is logged and
// answered with a generic 500 so no internal detail leaks to the caller.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidRequest):
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST")
	case errors.Is(err, services.ErrEmailExists):
		respondError(c, http.StatusBadRequest, "EMAIL_ALREADY_EXISTS")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	case errors.Is(err, services.ErrContestNotActive):
		respondError(c, http.StatusBadRequest, "CONTEST_NOT_ACTIVE")
	case errors.Is(err, services.ErrAlreadySubmitted):
		respondError(c, http.StatusBadRequest, "ALREADY_SUBMITTED")
	case errors.Is(err, services.ErrContestNotFound):
		respondError(c, http.StatusNotFound, "CONTEST_NOT_FOUND")
	case errors.Is(err, services.ErrQuestionNotFound):
		respondError(c, http.StatusNotFound, "QUESTION_NOT_FOUND")
	case errors.Is(err, services.ErrProblemNotFound):
		respondError(c, http.StatusNotFound, "PROBLEM_NOT_FOUND")
	case errors.Is(err, services.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "USER_NOT_FOUND")
	default:
		log.Errorf("unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// currentUserID reads the identity AuthMiddleware attached to the context.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

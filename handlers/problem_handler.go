package handlers

import (
	"net/http"
	"strconv"

	"contesthub/services"

	"github.com/gin-gonic/gin"
)

type ProblemHandler struct {
	problemService *services.ProblemService
}

func NewProblemHandler(problemService *services.ProblemService) *ProblemHandler {
	return &ProblemHandler{
		problemService: problemService,
	}
}

func (h *ProblemHandler) GetProblem(c *gin.Context) {
	problemID, err := strconv.ParseUint(c.Param("problemId"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	detail, err := h.problemService.GetProblem(uint(problemID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, detail)
}

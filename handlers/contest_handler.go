package handlers

import (
	"net/http"
	"strconv"

	"contesthub/services"

	"github.com/gin-gonic/gin"
)

// leaderboardSize caps how many entries a leaderboard read returns.
const leaderboardSize = 10

type ContestHandler struct {
	contestService    *services.ContestService
	submissionService *services.SubmissionService
	leaderboard       *services.LeaderboardService
}

func NewContestHandler(
	contestService *services.ContestService,
	submissionService *services.SubmissionService,
	leaderboard *services.LeaderboardService,
) *ContestHandler {
	return &ContestHandler{
		contestService:    contestService,
		submissionService: submissionService,
		leaderboard:       leaderboard,
	}
}

func (h *ContestHandler) CreateContest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED")
		return
	}

	var req services.CreateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	contest, err := h.contestService.CreateContest(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{
		"id":          contest.ID,
		"title":       contest.Title,
		"description": contest.Description,
		"creator_id":  contest.CreatorID,
		"start_time":  contest.StartTime,
		"end_time":    contest.EndTime,
	})
}

func (h *ContestHandler) GetContest(c *gin.Context) {
	contestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	detail, err := h.contestService.GetContest(uint(contestID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, detail)
}

func (h *ContestHandler) CreateMcq(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED")
		return
	}

	contestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	var req services.CreateMcqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	question, err := h.contestService.AddMcq(uint(contestID), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{
		"id":        question.ID,
		"contestId": question.ContestID,
	})
}

func (h *ContestHandler) SubmitMcq(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED")
		return
	}

	contestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	mcqID, err := strconv.ParseUint(c.Param("mcqId"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	var req services.SubmitMcqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	submission, err := h.submissionService.SubmitMcq(uint(contestID), uint(mcqID), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{
		"id":           submission.ID,
		"isCorrect":    submission.IsCorrect,
		"pointsEarned": submission.PointsEarned,
	})
}

func (h *ContestHandler) CreateDsaProblem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED")
		return
	}

	contestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	var req services.CreateDsaProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	problem, err := h.contestService.AddDsaProblem(uint(contestID), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{
		"id":        problem.ID,
		"contestId": problem.ContestID,
	})
}

func (h *ContestHandler) GetLeaderboard(c *gin.Context) {
	contestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	exists, err := h.contestService.ContestExists(uint(contestID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !exists {
		respondError(c, http.StatusNotFound, "CONTEST_NOT_FOUND")
		return
	}

	entries, err := h.leaderboard.Top(uint(contestID), leaderboardSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, entries)
}

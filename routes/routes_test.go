package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"contesthub/handlers"
	"contesthub/models"
	"contesthub/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "testsecret"

var testDBCounter int64

// setupTestApp wires the full application against an in-memory database
// and an in-process Redis, mirroring main.go.
func setupTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:contesthub_routes_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Contest{},
		&models.McqQuestion{},
		&models.McqOption{},
		&models.McqSubmission{},
		&models.DsaProblem{},
		&models.TestCase{},
	))

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	authService := services.NewAuthService(db, testJWTSecret)
	contestService := services.NewContestService(db)
	leaderboardService := services.NewLeaderboardService(redisClient)
	submissionService := services.NewSubmissionService(db, leaderboardService)
	problemService := services.NewProblemService(db)

	authHandler := handlers.NewAuthHandler(authService)
	contestHandler := handlers.NewContestHandler(contestService, submissionService, leaderboardService)
	problemHandler := handlers.NewProblemHandler(problemService)

	router := gin.New()
	SetupRoutes(router, authHandler, contestHandler, problemHandler, testJWTSecret)
	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w, envelope
}

func signupUser(t *testing.T, router *gin.Engine, email, role string) {
	t.Helper()

	w, _ := performJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"name":     "Test User",
		"email":    email,
		"password": "secret",
		"role":     role,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
}

func loginUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w, envelope := performJSON(t, router, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    email,
		"password": "secret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := envelope["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createContest(t *testing.T, router *gin.Engine, token string, end time.Time) uint {
	t.Helper()

	w, envelope := performJSON(t, router, http.MethodPost, "/api/contests", map[string]interface{}{
		"title":       "Weekly Round",
		"description": "A test round",
		"start_time":  end.Add(-2 * time.Hour).Format(time.RFC3339),
		"end_time":    end.Format(time.RFC3339),
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	data := envelope["data"].(map[string]interface{})
	return uint(data["id"].(float64))
}

func addMcq(t *testing.T, router *gin.Engine, token string, contestID uint) uint {
	t.Helper()

	w, envelope := performJSON(t, router, http.MethodPost, fmt.Sprintf("/api/contests/%d/mcq", contestID), map[string]interface{}{
		"question_text":        "What is 2+2?",
		"options":              []string{"3", "4", "5"},
		"correct_option_index": 1,
		"points":               10,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	data := envelope["data"].(map[string]interface{})
	return uint(data["id"].(float64))
}

func TestSignupLoginFlow(t *testing.T) {
	router := setupTestApp(t)

	w, envelope := performJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"name":     "A",
		"email":    "a@x.com",
		"password": "secret",
		"role":     "creator",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, envelope["success"])
	assert.Nil(t, envelope["error"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "creator", data["role"])
	assert.NotContains(t, data, "password")

	// Same email, different fields: the email decides.
	w, envelope = performJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"name":     "B",
		"email":    "a@x.com",
		"password": "different",
		"role":     "contestee",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, envelope["success"])
	assert.Nil(t, envelope["data"])
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", envelope["error"])

	token := loginUser(t, router, "a@x.com")
	assert.NotEmpty(t, token)

	w, envelope = performJSON(t, router, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "a@x.com",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", envelope["error"])

	w, envelope = performJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"name":     "C",
		"email":    "not-an-email",
		"password": "secret",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", envelope["error"])
}

func TestProfileEndpoint(t *testing.T) {
	router := setupTestApp(t)

	signupUser(t, router, "me@example.com", "contestee")
	token := loginUser(t, router, "me@example.com")

	w, envelope := performJSON(t, router, http.MethodGet, "/api/auth/profile", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "me@example.com", data["email"])
	assert.Equal(t, "contestee", data["role"])
}

func TestContestRoleGate(t *testing.T) {
	router := setupTestApp(t)

	signupUser(t, router, "creator@example.com", "creator")
	signupUser(t, router, "player@example.com", "contestee")
	creatorToken := loginUser(t, router, "creator@example.com")
	playerToken := loginUser(t, router, "player@example.com")

	// No token at all.
	w, envelope := performJSON(t, router, http.MethodPost, "/api/contests", map[string]interface{}{}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", envelope["error"])

	// A contestee token is rejected by every creator-only route.
	body := map[string]interface{}{
		"title":       "Nope",
		"description": "",
		"start_time":  time.Now().Format(time.RFC3339),
		"end_time":    time.Now().Add(time.Hour).Format(time.RFC3339),
	}
	w, envelope = performJSON(t, router, http.MethodPost, "/api/contests", body, playerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", envelope["error"])

	contestID := createContest(t, router, creatorToken, time.Now().Add(time.Hour))

	// Creators cannot submit.
	addMcqID := addMcq(t, router, creatorToken, contestID)
	w, envelope = performJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/contests/%d/mcq/%d/submit", contestID, addMcqID),
		map[string]interface{}{"selectedOptionIndex": 1}, creatorToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", envelope["error"])

	// Any authenticated identity can read.
	w, envelope = performJSON(t, router, http.MethodGet, fmt.Sprintf("/api/contests/%d", contestID), nil, playerToken)
	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Weekly Round", data["title"])
	mcqs := data["mcqs"].([]interface{})
	require.Len(t, mcqs, 1)
	assert.NotContains(t, w.Body.String(), "correct_option_index")
	assert.NotContains(t, w.Body.String(), "correctOptionIndex")
}

func TestMcqSubmissionFlow(t *testing.T) {
	router := setupTestApp(t)

	signupUser(t, router, "creator@example.com", "creator")
	signupUser(t, router, "player@example.com", "contestee")
	creatorToken := loginUser(t, router, "creator@example.com")
	playerToken := loginUser(t, router, "player@example.com")

	contestID := createContest(t, router, creatorToken, time.Now().Add(time.Hour))
	mcqID := addMcq(t, router, creatorToken, contestID)

	w, envelope := performJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/contests/%d/mcq/%d/submit", contestID, mcqID),
		map[string]interface{}{"selectedOptionIndex": 1}, playerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, true, data["isCorrect"])
	assert.EqualValues(t, 10, data["pointsEarned"])

	// The response never echoes the correct answer index.
	assert.NotContains(t, w.Body.String(), "correct_option_index")

	// Write-once.
	w, envelope = performJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/contests/%d/mcq/%d/submit", contestID, mcqID),
		map[string]interface{}{"selectedOptionIndex": 0}, playerToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ALREADY_SUBMITTED", envelope["error"])

	// The scored submission shows on the leaderboard.
	w, envelope = performJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/contests/%d/leaderboard", contestID), nil, playerToken)
	require.Equal(t, http.StatusOK, w.Code)
	entries := envelope["data"].([]interface{})
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.EqualValues(t, 10, entry["score"])

	// Unknown question in a known contest.
	w, envelope = performJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/contests/%d/mcq/%d/submit", contestID, 9999),
		map[string]interface{}{"selectedOptionIndex": 0}, playerToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "QUESTION_NOT_FOUND", envelope["error"])
}

func TestSubmitToEndedContest(t *testing.T) {
	router := setupTestApp(t)

	signupUser(t, router, "creator@example.com", "creator")
	signupUser(t, router, "player@example.com", "contestee")
	creatorToken := loginUser(t, router, "creator@example.com")
	playerToken := loginUser(t, router, "player@example.com")

	contestID := createContest(t, router, creatorToken, time.Now().Add(-time.Minute))
	mcqID := addMcq(t, router, creatorToken, contestID)

	w, envelope := performJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/contests/%d/mcq/%d/submit", contestID, mcqID),
		map[string]interface{}{"selectedOptionIndex": 1}, playerToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CONTEST_NOT_ACTIVE", envelope["error"])
}

func TestNonOwnerCreatorSeesContestNotFound(t *testing.T) {
	router := setupTestApp(t)

	signupUser(t, router, "owner@example.com", "creator")
	signupUser(t, router, "other@example.com", "creator")
	ownerToken := loginUser(t, router, "owner@example.com")
	otherToken := loginUser(t, router, "other@example.com")

	contestID := createContest(t, router, ownerToken, time.Now().Add(time.Hour))

	w, envelope := performJSON(t, router, http.MethodPost, fmt.Sprintf("/api/contests/%d/mcq", contestID), map[string]interface{}{
		"question_text":        "Whose contest?",
		"options":              []string{"mine", "yours"},
		"correct_option_index": 0,
		"points":               5,
	}, otherToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CONTEST_NOT_FOUND", envelope["error"])
}

func TestMcqCreationValidation(t *testing.T) {
	router := setupTestApp(t)

	signupUser(t, router, "creator@example.com", "creator")
	creatorToken := loginUser(t, router, "creator@example.com")
	contestID := createContest(t, router, creatorToken, time.Now().Add(time.Hour))

	// Index past the option count is rejected before persistence.
	w, envelope := performJSON(t, router, http.MethodPost, fmt.Sprintf("/api/contests/%d/mcq", contestID), map[string]interface{}{
		"question_text":        "Pick one",
		"options":              []string{"a", "b"},
		"correct_option_index": 3,
		"points":               5,
	}, creatorToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", envelope["error"])

	// Missing options entirely.
	w, envelope = performJSON(t, router, http.MethodPost, fmt.Sprintf("/api/contests/%d/mcq", contestID), map[string]interface{}{
		"question_text":        "Pick one",
		"correct_option_index": 0,
		"points":               5,
	}, creatorToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", envelope["error"])
}

func TestProblemVisibility(t *testing.T) {
	router := setupTestApp(t)

	signupUser(t, router, "creator@example.com", "creator")
	signupUser(t, router, "player@example.com", "contestee")
	creatorToken := loginUser(t, router, "creator@example.com")
	playerToken := loginUser(t, router, "player@example.com")

	contestID := createContest(t, router, creatorToken, time.Now().Add(time.Hour))

	w, envelope := performJSON(t, router, http.MethodPost, fmt.Sprintf("/api/contests/%d/dsa", contestID), map[string]interface{}{
		"title":        "Two Sum",
		"description":  "Find two numbers adding to a target.",
		"tags":         []string{"arrays"},
		"points":       100,
		"time_limit":   2000,
		"memory_limit": 256,
		"test_cases": []map[string]interface{}{
			{"input": "sample input", "expected_output": "sample output", "is_hidden": false},
			{"input": "hidden input", "expected_output": "hidden output", "is_hidden": true},
		},
	}, creatorToken)
	require.Equal(t, http.StatusCreated, w.Code)
	data := envelope["data"].(map[string]interface{})
	problemID := uint(data["id"].(float64))

	// Either role reads the same filtered shape.
	for _, token := range []string{playerToken, creatorToken} {
		w, envelope = performJSON(t, router, http.MethodGet, fmt.Sprintf("/api/problems/%d", problemID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		data = envelope["data"].(map[string]interface{})
		visible := data["visibleTestCases"].([]interface{})
		require.Len(t, visible, 1)
		assert.NotContains(t, w.Body.String(), "hidden input")
		assert.NotContains(t, w.Body.String(), "hidden output")
	}

	// The contest detail exposes the problem summary without test cases.
	w, envelope = performJSON(t, router, http.MethodGet, fmt.Sprintf("/api/contests/%d", contestID), nil, playerToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "sample input")
	assert.NotContains(t, w.Body.String(), "hidden input")

	w, envelope = performJSON(t, router, http.MethodGet, "/api/problems/99999", nil, playerToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PROBLEM_NOT_FOUND", envelope["error"])
}

func TestGetContestNotFound(t *testing.T) {
	router := setupTestApp(t)

	signupUser(t, router, "player@example.com", "contestee")
	token := loginUser(t, router, "player@example.com")

	w, envelope := performJSON(t, router, http.MethodGet, "/api/contests/99999", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CONTEST_NOT_FOUND", envelope["error"])

	w, envelope = performJSON(t, router, http.MethodGet, "/api/contests/99999/leaderboard", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CONTEST_NOT_FOUND", envelope["error"])
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestApp(t)

	w, _ := performJSON(t, router, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

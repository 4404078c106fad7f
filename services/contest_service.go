package services

import (
	"errors"
	"fmt"
	"time"

	"contesthub/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ContestService struct {
	db *gorm.DB
}

func NewContestService(db *gorm.DB) *ContestService {
	return &ContestService{db: db}
}

type CreateContestRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
}

type CreateMcqRequest struct {
	QuestionText       string   `json:"question_text" binding:"required"`
	Options            []string `json:"options" binding:"required,min=1,dive,required"`
	CorrectOptionIndex *int     `json:"correct_option_index" binding:"required,min=0"`
	Points             int      `json:"points" binding:"required"`
}

type CreateDsaProblemRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description" binding:"required"`
	Tags        []string          `json:"tags" binding:"required"`
	Points      int               `json:"points" binding:"required"`
	TimeLimit   int               `json:"time_limit" binding:"required"`
	MemoryLimit int               `json:"memory_limit" binding:"required"`
	TestCases   []TestCaseRequest `json:"test_cases" binding:"required,min=1,dive"`
}

type TestCaseRequest struct {
	Input          string `json:"input" binding:"required"`
	ExpectedOutput string `json:"expected_output" binding:"required"`
	IsHidden       bool   `json:"is_hidden"`
}

// ContestDetail is the read shape of a contest. It carries neither correct
// option indexes nor test cases.
type ContestDetail struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	StartTime   time.Time           `json:"startTime"`
	EndTime     time.Time           `json:"endTime"`
	CreatorID   uint                `json:"creatorId"`
	Mcqs        []McqSummary        `json:"mcqs"`
	DsaProblems []DsaProblemSummary `json:"dsaProblems"`
}

type McqSummary struct {
	ID           uint     `json:"id"`
	QuestionText string   `json:"questionText"`
	Options      []string `json:"options"`
	Points       int      `json:"points"`
}

type DsaProblemSummary struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Points      int      `json:"points"`
	TimeLimit   int      `json:"timeLimit"`
	MemoryLimit int      `json:"memoryLimit"`
}

func (s *ContestService) CreateContest(creatorID uint, req *CreateContestRequest) (*models.Contest, error) {
	contest := models.Contest{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		CreatorID:   creatorID,
	}

	if err := s.db.Create(&contest).Error; err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"contest_id": contest.ID, "creator_id": creatorID}).Info("contest created")
	return &contest, nil
}

func (s *ContestService) GetContest(contestID uint) (*ContestDetail, error) {
	var contest models.Contest
	err := s.db.
		Preload("Mcqs", func(db *gorm.DB) *gorm.DB {
			return db.Order("mcq_questions.id")
		}).
		Preload("Mcqs.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("mcq_options.position")
		}).
		Preload("DsaProblems", func(db *gorm.DB) *gorm.DB {
			return db.Order("dsa_problems.id")
		}).
		First(&contest, contestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContestNotFound
		}
		return nil, err
	}

	detail := ContestDetail{
		ID:          contest.ID,
		Title:       contest.Title,
		Description: contest.Description,
		StartTime:   contest.StartTime,
		EndTime:     contest.EndTime,
		CreatorID:   contest.CreatorID,
		Mcqs:        make([]McqSummary, 0, len(contest.Mcqs)),
		DsaProblems: make([]DsaProblemSummary, 0, len(contest.DsaProblems)),
	}

	for _, mcq := range contest.Mcqs {
		detail.Mcqs = append(detail.Mcqs, McqSummary{
			ID:           mcq.ID,
			QuestionText: mcq.QuestionText,
			Options:      mcq.OptionTexts(),
			Points:       mcq.Points,
		})
	}
	for _, dsa := range contest.DsaProblems {
		detail.DsaProblems = append(detail.DsaProblems, DsaProblemSummary{
			ID:          dsa.ID,
			Title:       dsa.Title,
			Description: dsa.Description,
			Tags:        dsa.Tags,
			Points:      dsa.Points,
			TimeLimit:   dsa.TimeLimit,
			MemoryLimit: dsa.MemoryLimit,
		})
	}

	return &detail, nil
}

// ContestExists reports whether a contest with the given ID exists.
func (s *ContestService) ContestExists(contestID uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Contest{}).Where("id = ?", contestID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// findOwnedContest looks a contest up by (id, creator_id). A contest that
// exists but belongs to someone else is reported as not found, so callers
// never learn about contests they do not own.
func (s *ContestService) findOwnedContest(contestID, creatorID uint) (*models.Contest, error) {
	var contest models.Contest
	err := s.db.Where("id = ? AND creator_id = ?", contestID, creatorID).First(&contest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContestNotFound
		}
		return nil, err
	}
	return &contest, nil
}

func (s *ContestService) AddMcq(contestID, creatorID uint, req *CreateMcqRequest) (*models.McqQuestion, error) {
	if _, err := s.findOwnedContest(contestID, creatorID); err != nil {
		return nil, err
	}

	if *req.CorrectOptionIndex >= len(req.Options) {
		return nil, fmt.Errorf("%w: correct_option_index must be less than options length", ErrInvalidRequest)
	}

	// Start transaction
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	question := models.McqQuestion{
		ContestID:          contestID,
		QuestionText:       req.QuestionText,
		CorrectOptionIndex: *req.CorrectOptionIndex,
		Points:             req.Points,
	}

	if err := tx.Create(&question).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for i, text := range req.Options {
		option := models.McqOption{
			QuestionID: question.ID,
			Text:       text,
			Position:   i,
		}
		if err := tx.Create(&option).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"contest_id": contestID, "question_id": question.ID}).Info("mcq question added")
	return &question, nil
}

func (s *ContestService) AddDsaProblem(contestID, creatorID uint, req *CreateDsaProblemRequest) (*models.DsaProblem, error) {
	if _, err := s.findOwnedContest(contestID, creatorID); err != nil {
		return nil, err
	}

	// Start transaction
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	problem := models.DsaProblem{
		ContestID:   contestID,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Points:      req.Points,
		TimeLimit:   req.TimeLimit,
		MemoryLimit: req.MemoryLimit,
	}

	if err := tx.Create(&problem).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, tcReq := range req.TestCases {
		testCase := models.TestCase{
			ProblemID:      problem.ID,
			Input:          tcReq.Input,
			ExpectedOutput: tcReq.ExpectedOutput,
			IsHidden:       tcReq.IsHidden,
		}
		if err := tx.Create(&testCase).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"contest_id": contestID, "problem_id": problem.ID}).Info("dsa problem added")
	return &problem, nil
}

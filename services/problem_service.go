package services

import (
	"errors"

	"contesthub/models"

	"gorm.io/gorm"
)

type ProblemService struct {
	db *gorm.DB
}

func NewProblemService(db *gorm.DB) *ProblemService {
	return &ProblemService{db: db}
}

// ProblemDetail is the only read shape for a DSA problem. Hidden test
// cases are dropped while it is built, so no caller can opt back in.
type ProblemDetail struct {
	ID               uint              `json:"id"`
	ContestID        uint              `json:"contestId"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Tags             []string          `json:"tags"`
	Points           int               `json:"points"`
	TimeLimit        int               `json:"timeLimit"`
	MemoryLimit      int               `json:"memoryLimit"`
	VisibleTestCases []VisibleTestCase `json:"visibleTestCases"`
}

type VisibleTestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
}

func (s *ProblemService) GetProblem(problemID uint) (*ProblemDetail, error) {
	var problem models.DsaProblem
	err := s.db.
		Preload("TestCases", func(db *gorm.DB) *gorm.DB {
			return db.Order("test_cases.id")
		}).
		First(&problem, problemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProblemNotFound
		}
		return nil, err
	}

	detail := ProblemDetail{
		ID:               problem.ID,
		ContestID:        problem.ContestID,
		Title:            problem.Title,
		Description:      problem.Description,
		Tags:             problem.Tags,
		Points:           problem.Points,
		TimeLimit:        problem.TimeLimit,
		MemoryLimit:      problem.MemoryLimit,
		VisibleTestCases: make([]VisibleTestCase, 0, len(problem.TestCases)),
	}

	for _, tc := range problem.TestCases {
		if tc.IsHidden {
			continue
		}
		detail.VisibleTestCases = append(detail.VisibleTestCases, VisibleTestCase{
			Input:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
		})
	}

	return &detail, nil
}

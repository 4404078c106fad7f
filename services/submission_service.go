package services

import (
	"errors"
	"time"

	"contesthub/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SubmissionService struct {
	db          *gorm.DB
	leaderboard *LeaderboardService
}

func NewSubmissionService(db *gorm.DB, leaderboard *LeaderboardService) *SubmissionService {
	return &SubmissionService{db: db, leaderboard: leaderboard}
}

type SubmitMcqRequest struct {
	SelectedOptionIndex *int `json:"selectedOptionIndex" binding:"required,min=0"`
}

// SubmitMcq records a contestee's answer to an MCQ. Checks run in order:
// contest existence, contest time window, question membership, then the
// write-once invariant. The selected index is not bounds-checked against
// the option count; an out-of-range index simply scores as incorrect.
func (s *SubmissionService) SubmitMcq(contestID, questionID, userID uint, req *SubmitMcqRequest) (*models.McqSubmission, error) {
	var contest models.Contest
	if err := s.db.First(&contest, contestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContestNotFound
		}
		return nil, err
	}

	now := time.Now()
	if !contest.Active(now) {
		return nil, ErrContestNotActive
	}

	var question models.McqQuestion
	err := s.db.Where("id = ? AND contest_id = ?", questionID, contestID).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	var existing int64
	err = s.db.Model(&models.McqSubmission{}).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Count(&existing).Error
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrAlreadySubmitted
	}

	selected := *req.SelectedOptionIndex
	isCorrect := selected == question.CorrectOptionIndex
	pointsEarned := 0
	if isCorrect {
		pointsEarned = question.Points
	}

	submission := models.McqSubmission{
		UserID:              userID,
		QuestionID:          questionID,
		SelectedOptionIndex: selected,
		IsCorrect:           isCorrect,
		PointsEarned:        pointsEarned,
		SubmittedAt:         now,
	}

	// Two concurrent first submissions race on the unique index here;
	// exactly one insert wins.
	if err := s.db.Create(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubmitted
		}
		return nil, err
	}

	if pointsEarned > 0 {
		if err := s.leaderboard.AddPoints(contestID, userID, pointsEarned); err != nil {
			// The submission is already durable; a leaderboard update
			// failure must not fail the request.
			log.WithFields(log.Fields{
				"contest_id": contestID,
				"user_id":    userID,
			}).Warnf("failed to update leaderboard: %v", err)
		}
	}

	log.WithFields(log.Fields{
		"user_id":     userID,
		"question_id": questionID,
		"is_correct":  isCorrect,
	}).Info("mcq submission recorded")

	return &submission, nil
}

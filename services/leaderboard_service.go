package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// LeaderboardService keeps per-contest scores in a Redis sorted set keyed
// by user ID. Scores only ever grow; submissions are write-once, so a
// point total is never incremented twice for the same question.
type LeaderboardService struct {
	redis *redis.Client
}

func NewLeaderboardService(redis *redis.Client) *LeaderboardService {
	return &LeaderboardService{redis: redis}
}

type LeaderboardEntry struct {
	UserID uint `json:"userId"`
	Score  int  `json:"score"`
}

func leaderboardKey(contestID uint) string {
	return fmt.Sprintf("contest:%d:leaderboard", contestID)
}

func (s *LeaderboardService) AddPoints(contestID, userID uint, points int) error {
	member := strconv.FormatUint(uint64(userID), 10)
	return s.redis.ZIncrBy(context.Background(), leaderboardKey(contestID), float64(points), member).Err()
}

// Top returns up to limit entries ordered by score, highest first.
func (s *LeaderboardService) Top(contestID uint, limit int64) ([]LeaderboardEntry, error) {
	results, err := s.redis.ZRevRangeWithScores(context.Background(), leaderboardKey(contestID), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for _, z := range results {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		userID, err := strconv.ParseUint(member, 10, 32)
		if err != nil {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			UserID: uint(userID),
			Score:  int(z.Score),
		})
	}

	return entries, nil
}

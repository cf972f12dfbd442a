package network

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// ScoreSubmission is the JSON body sent for a finished match
type ScoreSubmission struct {
	Score      int    `json:"score"`
	Theme      string `json:"theme"`
	EnemyType  string `json:"enemyType"`
	Difficulty string `json:"difficulty"`
	Timestamp  string `json:"timestamp"`
	MatchID    string `json:"matchId"`
}

// NewScoreSubmission stamps a submission with a fresh match ID and an ISO-8601 UTC timestamp
func NewScoreSubmission(score int, theme, enemyType, difficulty string, at time.Time) ScoreSubmission {
	return ScoreSubmission{
		Score:      score,
		Theme:      theme,
		EnemyType:  enemyType,
		Difficulty: difficulty,
		Timestamp:  at.UTC().Format(time.RFC3339Nano),
		MatchID:    ulid.MustNew(ulid.Timestamp(at), ulid.DefaultEntropy()).String(),
	}
}

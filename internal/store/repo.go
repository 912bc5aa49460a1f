package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// BanditArm is the persisted form of one lesson's recommender parameters.
type BanditArm struct {
	PullCount     int       `json:"pull_count"`
	RewardSum     float64   `json:"reward_sum"`
	AverageReward float64   `json:"average_reward"`
	Theta         []float64 `json:"theta"`
}

// BanditState is the persisted recommender state across all lessons.
type BanditState struct {
	Arms       map[string]BanditArm `json:"arms"`
	TotalPulls int64                `json:"total_pulls"`
}

// SnapshotData captures the full learner state at a point in time.
// Missing fields unmarshal to their zero values, so snapshots written by
// older versions load cleanly.
type SnapshotData struct {
	Version int `json:"version"`

	Skills map[string]float64 `json:"skills,omitempty"`
	Bandit BanditState        `json:"bandit"`

	CompletedLessons []string `json:"completed_lessons,omitempty"`
	RewardedLessons  []string `json:"rewarded_lessons,omitempty"`

	XP         int `json:"xp"`
	Hearts     int `json:"hearts"`
	StreakDays int `json:"streak_days"`

	// LastActiveDate is a YYYY-MM-DD local date used for streak and
	// session-count rollover.
	LastActiveDate string `json:"last_active_date,omitempty"`
	SessionsToday  int    `json:"sessions_today"`

	LastDifficulty      int     `json:"last_difficulty"`
	LastAccuracy        float64 `json:"last_accuracy"`
	PreferredDifficulty int     `json:"preferred_difficulty"`
}

// SnapshotVersion is the current SnapshotData schema version.
const SnapshotVersion = 1

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures one answered question.
type AttemptEventData struct {
	SessionID  string
	LessonID   string
	ConceptID  string
	QuestionID string
	Domain     string
	Difficulty string
	Penalty    bool
	Correct    bool
	TimeMs     int
}

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID        string
	Action           string // "start" or "end"
	LessonID         string
	Domain           string
	QuestionsServed  int
	CorrectAnswers   int
	MasteredConcepts int
	TotalConcepts    int
	DurationSecs     int
}

// RewardEventData captures the reward fed back into the recommender.
type RewardEventData struct {
	SessionID    string
	LessonID     string
	Reward       float64
	Accuracy     float64
	CreditRatio  float64
	XPAwarded    int
	FirstAttempt bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a recorded LLM call read back for inspection.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM calls for one purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// DomainStats aggregates attempt accuracy per skill domain.
type DomainStats struct {
	Domain   string
	Attempts int
	Correct  int
}

// Accuracy returns correct over attempts, 0 with no attempts.
func (d DomainStats) Accuracy() float64 {
	if d.Attempts == 0 {
		return 0
	}
	return float64(d.Correct) / float64(d.Attempts)
}

// SessionSummary is a finished session as read back for stats display.
type SessionSummary struct {
	SessionID        string
	LessonID         string
	Domain           string
	Timestamp        time.Time
	QuestionsServed  int
	CorrectAnswers   int
	MasteredConcepts int
	TotalConcepts    int
	DurationSecs     int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendRewardEvent(ctx context.Context, data RewardEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recorded LLM calls, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM call by row id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// DomainAccuracy aggregates attempts per domain across all sessions.
	DomainAccuracy(ctx context.Context) ([]DomainStats, error)

	// LessonAccuracy returns accuracy over all recorded attempts for a lesson.
	LessonAccuracy(ctx context.Context, lessonID string) (float64, error)

	// RecentSessions returns the most recent finished sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)

	// TotalReward sums recorded rewards for a lesson.
	TotalReward(ctx context.Context, lessonID string) (float64, error)
}

// Code generated by ent, DO NOT EDIT.

package rewardevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rewardevent type in the database.
	Label = "reward_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldReward holds the string denoting the reward field in the database.
	FieldReward = "reward"
	// FieldAccuracy holds the string denoting the accuracy field in the database.
	FieldAccuracy = "accuracy"
	// FieldCreditRatio holds the string denoting the credit_ratio field in the database.
	FieldCreditRatio = "credit_ratio"
	// FieldXpAwarded holds the string denoting the xp_awarded field in the database.
	FieldXpAwarded = "xp_awarded"
	// FieldFirstAttempt holds the string denoting the first_attempt field in the database.
	FieldFirstAttempt = "first_attempt"
	// Table holds the table name of the rewardevent in the database.
	Table = "reward_events"
)

// Columns holds all SQL columns for rewardevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldLessonID,
	FieldReward,
	FieldAccuracy,
	FieldCreditRatio,
	FieldXpAwarded,
	FieldFirstAttempt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// DefaultCreditRatio holds the default value on creation for the "credit_ratio" field.
	DefaultCreditRatio float64
	// DefaultXpAwarded holds the default value on creation for the "xp_awarded" field.
	DefaultXpAwarded int
)

// OrderOption defines the ordering options for the RewardEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByReward orders the results by the reward field.
func ByReward(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReward, opts...).ToFunc()
}

// ByAccuracy orders the results by the accuracy field.
func ByAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracy, opts...).ToFunc()
}

// ByCreditRatio orders the results by the credit_ratio field.
func ByCreditRatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditRatio, opts...).ToFunc()
}

// ByXpAwarded orders the results by the xp_awarded field.
func ByXpAwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpAwarded, opts...).ToFunc()
}

// ByFirstAttempt orders the results by the first_attempt field.
func ByFirstAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstAttempt, opts...).ToFunc()
}

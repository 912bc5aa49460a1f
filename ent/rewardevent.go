// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingua/ent/rewardevent"
)

// RewardEvent is the model entity for the RewardEvent schema.
type RewardEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global sequence number shared across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// Final reward in [0,1]
	Reward float64 `json:"reward,omitempty"`
	// Accuracy holds the value of the "accuracy" field.
	Accuracy float64 `json:"accuracy,omitempty"`
	// Reward-eligible credit fraction from the quiz
	CreditRatio float64 `json:"credit_ratio,omitempty"`
	// XpAwarded holds the value of the "xp_awarded" field.
	XpAwarded int `json:"xp_awarded,omitempty"`
	// False when the lesson had been rewarded before
	FirstAttempt bool `json:"first_attempt,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RewardEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rewardevent.FieldFirstAttempt:
			values[i] = new(sql.NullBool)
		case rewardevent.FieldReward, rewardevent.FieldAccuracy, rewardevent.FieldCreditRatio:
			values[i] = new(sql.NullFloat64)
		case rewardevent.FieldID, rewardevent.FieldSequence, rewardevent.FieldXpAwarded:
			values[i] = new(sql.NullInt64)
		case rewardevent.FieldSessionID, rewardevent.FieldLessonID:
			values[i] = new(sql.NullString)
		case rewardevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RewardEvent fields.
func (_m *RewardEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rewardevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case rewardevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case rewardevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case rewardevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case rewardevent.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case rewardevent.FieldReward:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reward", values[i])
			} else if value.Valid {
				_m.Reward = value.Float64
			}
		case rewardevent.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case rewardevent.FieldCreditRatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field credit_ratio", values[i])
			} else if value.Valid {
				_m.CreditRatio = value.Float64
			}
		case rewardevent.FieldXpAwarded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_awarded", values[i])
			} else if value.Valid {
				_m.XpAwarded = int(value.Int64)
			}
		case rewardevent.FieldFirstAttempt:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field first_attempt", values[i])
			} else if value.Valid {
				_m.FirstAttempt = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RewardEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RewardEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RewardEvent.
// Note that you need to call RewardEvent.Unwrap() before calling this method if this RewardEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RewardEvent) Update() *RewardEventUpdateOne {
	return NewRewardEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RewardEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RewardEvent) Unwrap() *RewardEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RewardEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RewardEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RewardEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("reward=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reward))
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("credit_ratio=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreditRatio))
	builder.WriteString(", ")
	builder.WriteString("xp_awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpAwarded))
	builder.WriteString(", ")
	builder.WriteString("first_attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirstAttempt))
	builder.WriteByte(')')
	return builder.String()
}

// RewardEvents is a parsable slice of RewardEvent.
type RewardEvents []*RewardEvent

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/lingua/ent/attemptevent"
	"github.com/abhisek/lingua/ent/llmrequestevent"
	"github.com/abhisek/lingua/ent/rewardevent"
	"github.com/abhisek/lingua/ent/schema"
	"github.com/abhisek/lingua/ent/sessionevent"
	"github.com/abhisek/lingua/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescLessonID is the schema descriptor for lesson_id field.
	attempteventDescLessonID := attempteventFields[1].Descriptor()
	// attemptevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	attemptevent.LessonIDValidator = attempteventDescLessonID.Validators[0].(func(string) error)
	// attempteventDescConceptID is the schema descriptor for concept_id field.
	attempteventDescConceptID := attempteventFields[2].Descriptor()
	// attemptevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	attemptevent.ConceptIDValidator = attempteventDescConceptID.Validators[0].(func(string) error)
	// attempteventDescQuestionID is the schema descriptor for question_id field.
	attempteventDescQuestionID := attempteventFields[3].Descriptor()
	// attemptevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attemptevent.QuestionIDValidator = attempteventDescQuestionID.Validators[0].(func(string) error)
	// attempteventDescDomain is the schema descriptor for domain field.
	attempteventDescDomain := attempteventFields[4].Descriptor()
	// attemptevent.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	attemptevent.DomainValidator = attempteventDescDomain.Validators[0].(func(string) error)
	// attempteventDescDifficulty is the schema descriptor for difficulty field.
	attempteventDescDifficulty := attempteventFields[5].Descriptor()
	// attemptevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	attemptevent.DifficultyValidator = attempteventDescDifficulty.Validators[0].(func(string) error)
	// attempteventDescPenalty is the schema descriptor for penalty field.
	attempteventDescPenalty := attempteventFields[6].Descriptor()
	// attemptevent.DefaultPenalty holds the default value on creation for the penalty field.
	attemptevent.DefaultPenalty = attempteventDescPenalty.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	rewardeventMixin := schema.RewardEvent{}.Mixin()
	rewardeventMixinFields0 := rewardeventMixin[0].Fields()
	_ = rewardeventMixinFields0
	rewardeventFields := schema.RewardEvent{}.Fields()
	_ = rewardeventFields
	// rewardeventDescTimestamp is the schema descriptor for timestamp field.
	rewardeventDescTimestamp := rewardeventMixinFields0[1].Descriptor()
	// rewardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rewardevent.DefaultTimestamp = rewardeventDescTimestamp.Default.(func() time.Time)
	// rewardeventDescSessionID is the schema descriptor for session_id field.
	rewardeventDescSessionID := rewardeventFields[0].Descriptor()
	// rewardevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	rewardevent.SessionIDValidator = rewardeventDescSessionID.Validators[0].(func(string) error)
	// rewardeventDescLessonID is the schema descriptor for lesson_id field.
	rewardeventDescLessonID := rewardeventFields[1].Descriptor()
	// rewardevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	rewardevent.LessonIDValidator = rewardeventDescLessonID.Validators[0].(func(string) error)
	// rewardeventDescCreditRatio is the schema descriptor for credit_ratio field.
	rewardeventDescCreditRatio := rewardeventFields[4].Descriptor()
	// rewardevent.DefaultCreditRatio holds the default value on creation for the credit_ratio field.
	rewardevent.DefaultCreditRatio = rewardeventDescCreditRatio.Default.(float64)
	// rewardeventDescXpAwarded is the schema descriptor for xp_awarded field.
	rewardeventDescXpAwarded := rewardeventFields[5].Descriptor()
	// rewardevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	rewardevent.DefaultXpAwarded = rewardeventDescXpAwarded.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescLessonID is the schema descriptor for lesson_id field.
	sessioneventDescLessonID := sessioneventFields[2].Descriptor()
	// sessionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	sessionevent.LessonIDValidator = sessioneventDescLessonID.Validators[0].(func(string) error)
	// sessioneventDescDomain is the schema descriptor for domain field.
	sessioneventDescDomain := sessioneventFields[3].Descriptor()
	// sessionevent.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	sessionevent.DomainValidator = sessioneventDescDomain.Validators[0].(func(string) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescMasteredConcepts is the schema descriptor for mastered_concepts field.
	sessioneventDescMasteredConcepts := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultMasteredConcepts holds the default value on creation for the mastered_concepts field.
	sessionevent.DefaultMasteredConcepts = sessioneventDescMasteredConcepts.Default.(int)
	// sessioneventDescTotalConcepts is the schema descriptor for total_concepts field.
	sessioneventDescTotalConcepts := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultTotalConcepts holds the default value on creation for the total_concepts field.
	sessionevent.DefaultTotalConcepts = sessioneventDescTotalConcepts.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}

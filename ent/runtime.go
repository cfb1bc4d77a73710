// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/prepcoach/ent/answerevent"
	"github.com/abhisek/prepcoach/ent/contentchunk"
	"github.com/abhisek/prepcoach/ent/knownquestion"
	"github.com/abhisek/prepcoach/ent/llmrequestevent"
	"github.com/abhisek/prepcoach/ent/profile"
	"github.com/abhisek/prepcoach/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[0].Descriptor()
	// answerevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerevent.UserIDValidator = answereventDescUserID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescSubject is the schema descriptor for subject field.
	answereventDescSubject := answereventFields[2].Descriptor()
	// answerevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	answerevent.SubjectValidator = answereventDescSubject.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[3].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[4].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	contentchunkFields := schema.ContentChunk{}.Fields()
	_ = contentchunkFields
	// contentchunkDescSubject is the schema descriptor for subject field.
	contentchunkDescSubject := contentchunkFields[0].Descriptor()
	// contentchunk.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	contentchunk.SubjectValidator = contentchunkDescSubject.Validators[0].(func(string) error)
	// contentchunkDescText is the schema descriptor for text field.
	contentchunkDescText := contentchunkFields[2].Descriptor()
	// contentchunk.TextValidator is a validator for the "text" field. It is called by the builders before save.
	contentchunk.TextValidator = contentchunkDescText.Validators[0].(func(string) error)
	knownquestionFields := schema.KnownQuestion{}.Fields()
	_ = knownquestionFields
	// knownquestionDescSubject is the schema descriptor for subject field.
	knownquestionDescSubject := knownquestionFields[0].Descriptor()
	// knownquestion.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	knownquestion.SubjectValidator = knownquestionDescSubject.Validators[0].(func(string) error)
	// knownquestionDescTopic is the schema descriptor for topic field.
	knownquestionDescTopic := knownquestionFields[1].Descriptor()
	// knownquestion.DefaultTopic holds the default value on creation for the topic field.
	knownquestion.DefaultTopic = knownquestionDescTopic.Default.(string)
	// knownquestionDescText is the schema descriptor for text field.
	knownquestionDescText := knownquestionFields[2].Descriptor()
	// knownquestion.TextValidator is a validator for the "text" field. It is called by the builders before save.
	knownquestion.TextValidator = knownquestionDescText.Validators[0].(func(string) error)
	// knownquestionDescNormalizedText is the schema descriptor for normalized_text field.
	knownquestionDescNormalizedText := knownquestionFields[3].Descriptor()
	// knownquestion.NormalizedTextValidator is a validator for the "normalized_text" field. It is called by the builders before save.
	knownquestion.NormalizedTextValidator = knownquestionDescNormalizedText.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUserID is the schema descriptor for user_id field.
	profileDescUserID := profileFields[0].Descriptor()
	// profile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	profile.UserIDValidator = profileDescUserID.Validators[0].(func(string) error)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[2].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
}

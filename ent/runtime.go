// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/examdeck/ent/attempt"
	"github.com/abhisek/examdeck/ent/question"
	"github.com/abhisek/examdeck/ent/schema"
	"github.com/abhisek/examdeck/ent/testsession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescSessionID is the schema descriptor for session_id field.
	attemptDescSessionID := attemptFields[0].Descriptor()
	// attempt.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attempt.SessionIDValidator = attemptDescSessionID.Validators[0].(func(string) error)
	// attemptDescQuestionID is the schema descriptor for question_id field.
	attemptDescQuestionID := attemptFields[1].Descriptor()
	// attempt.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attempt.QuestionIDValidator = attemptDescQuestionID.Validators[0].(func(string) error)
	// attemptDescMarkedForReview is the schema descriptor for marked_for_review field.
	attemptDescMarkedForReview := attemptFields[4].Descriptor()
	// attempt.DefaultMarkedForReview holds the default value on creation for the marked_for_review field.
	attempt.DefaultMarkedForReview = attemptDescMarkedForReview.Default.(bool)
	// attemptDescStatus is the schema descriptor for status field.
	attemptDescStatus := attemptFields[5].Descriptor()
	// attempt.DefaultStatus holds the default value on creation for the status field.
	attempt.DefaultStatus = attemptDescStatus.Default.(string)
	// attemptDescScore is the schema descriptor for score field.
	attemptDescScore := attemptFields[7].Descriptor()
	// attempt.DefaultScore holds the default value on creation for the score field.
	attempt.DefaultScore = attemptDescScore.Default.(float64)
	// attemptDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	attemptDescTimeSpentSecs := attemptFields[8].Descriptor()
	// attempt.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	attempt.DefaultTimeSpentSecs = attemptDescTimeSpentSecs.Default.(int)
	// attemptDescSynced is the schema descriptor for synced field.
	attemptDescSynced := attemptFields[9].Descriptor()
	// attempt.DefaultSynced holds the default value on creation for the synced field.
	attempt.DefaultSynced = attemptDescSynced.Default.(bool)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionID is the schema descriptor for question_id field.
	questionDescQuestionID := questionFields[0].Descriptor()
	// question.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	question.QuestionIDValidator = questionDescQuestionID.Validators[0].(func(string) error)
	// questionDescQtype is the schema descriptor for qtype field.
	questionDescQtype := questionFields[1].Descriptor()
	// question.QtypeValidator is a validator for the "qtype" field. It is called by the builders before save.
	question.QtypeValidator = questionDescQtype.Validators[0].(func(string) error)
	// questionDescPrompt is the schema descriptor for prompt field.
	questionDescPrompt := questionFields[2].Descriptor()
	// question.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	question.PromptValidator = questionDescPrompt.Validators[0].(func(string) error)
	// questionDescCorrectValue is the schema descriptor for correct_value field.
	questionDescCorrectValue := questionFields[4].Descriptor()
	// question.DefaultCorrectValue holds the default value on creation for the correct_value field.
	question.DefaultCorrectValue = questionDescCorrectValue.Default.(string)
	// questionDescMarks is the schema descriptor for marks field.
	questionDescMarks := questionFields[6].Descriptor()
	// question.DefaultMarks holds the default value on creation for the marks field.
	question.DefaultMarks = questionDescMarks.Default.(float64)
	// questionDescSubject is the schema descriptor for subject field.
	questionDescSubject := questionFields[7].Descriptor()
	// question.DefaultSubject holds the default value on creation for the subject field.
	question.DefaultSubject = questionDescSubject.Default.(string)
	// questionDescTopic is the schema descriptor for topic field.
	questionDescTopic := questionFields[8].Descriptor()
	// question.DefaultTopic holds the default value on creation for the topic field.
	question.DefaultTopic = questionDescTopic.Default.(string)
	testsessionFields := schema.TestSession{}.Fields()
	_ = testsessionFields
	// testsessionDescSessionID is the schema descriptor for session_id field.
	testsessionDescSessionID := testsessionFields[0].Descriptor()
	// testsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	testsession.SessionIDValidator = testsessionDescSessionID.Validators[0].(func(string) error)
	// testsessionDescTitle is the schema descriptor for title field.
	testsessionDescTitle := testsessionFields[1].Descriptor()
	// testsession.DefaultTitle holds the default value on creation for the title field.
	testsession.DefaultTitle = testsessionDescTitle.Default.(string)
	// testsessionDescStatus is the schema descriptor for status field.
	testsessionDescStatus := testsessionFields[5].Descriptor()
	// testsession.DefaultStatus holds the default value on creation for the status field.
	testsession.DefaultStatus = testsessionDescStatus.Default.(string)
	// testsessionDescTotalScore is the schema descriptor for total_score field.
	testsessionDescTotalScore := testsessionFields[6].Descriptor()
	// testsession.DefaultTotalScore holds the default value on creation for the total_score field.
	testsession.DefaultTotalScore = testsessionDescTotalScore.Default.(float64)
	// testsessionDescCorrectCount is the schema descriptor for correct_count field.
	testsessionDescCorrectCount := testsessionFields[7].Descriptor()
	// testsession.DefaultCorrectCount holds the default value on creation for the correct_count field.
	testsession.DefaultCorrectCount = testsessionDescCorrectCount.Default.(int)
	// testsessionDescAttemptedCount is the schema descriptor for attempted_count field.
	testsessionDescAttemptedCount := testsessionFields[8].Descriptor()
	// testsession.DefaultAttemptedCount holds the default value on creation for the attempted_count field.
	testsession.DefaultAttemptedCount = testsessionDescAttemptedCount.Default.(int)
	// testsessionDescAccuracy is the schema descriptor for accuracy field.
	testsessionDescAccuracy := testsessionFields[9].Descriptor()
	// testsession.DefaultAccuracy holds the default value on creation for the accuracy field.
	testsession.DefaultAccuracy = testsessionDescAccuracy.Default.(float64)
	// testsessionDescCreatedAt is the schema descriptor for created_at field.
	testsessionDescCreatedAt := testsessionFields[11].Descriptor()
	// testsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	testsession.DefaultCreatedAt = testsessionDescCreatedAt.Default.(func() time.Time)
}

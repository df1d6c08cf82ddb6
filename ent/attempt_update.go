// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examdeck/ent/attempt"
	"github.com/abhisek/examdeck/ent/predicate"
	"github.com/abhisek/examdeck/ent/schema"
)

// AttemptUpdate is the builder for updating Attempt entities.
type AttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptMutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdate) Where(ps ...predicate.Attempt) *AttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptUpdate) SetSessionID(v string) *AttemptUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableSessionID(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AttemptUpdate) SetQuestionID(v string) *AttemptUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableQuestionID(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAttemptOrder sets the "attempt_order" field.
func (_u *AttemptUpdate) SetAttemptOrder(v int) *AttemptUpdate {
	_u.mutation.ResetAttemptOrder()
	_u.mutation.SetAttemptOrder(v)
	return _u
}

// SetNillableAttemptOrder sets the "attempt_order" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableAttemptOrder(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetAttemptOrder(*v)
	}
	return _u
}

// AddAttemptOrder adds value to the "attempt_order" field.
func (_u *AttemptUpdate) AddAttemptOrder(v int) *AttemptUpdate {
	_u.mutation.AddAttemptOrder(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AttemptUpdate) SetAnswer(v *schema.AnswerData) *AttemptUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *AttemptUpdate) ClearAnswer() *AttemptUpdate {
	_u.mutation.ClearAnswer()
	return _u
}

// SetMarkedForReview sets the "marked_for_review" field.
func (_u *AttemptUpdate) SetMarkedForReview(v bool) *AttemptUpdate {
	_u.mutation.SetMarkedForReview(v)
	return _u
}

// SetNillableMarkedForReview sets the "marked_for_review" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableMarkedForReview(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetMarkedForReview(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AttemptUpdate) SetStatus(v string) *AttemptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableStatus(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AttemptUpdate) SetIsCorrect(v bool) *AttemptUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableIsCorrect(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (_u *AttemptUpdate) ClearIsCorrect() *AttemptUpdate {
	_u.mutation.ClearIsCorrect()
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptUpdate) SetScore(v float64) *AttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableScore(v *float64) *AttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptUpdate) AddScore(v float64) *AttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *AttemptUpdate) SetTimeSpentSecs(v int) *AttemptUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTimeSpentSecs(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *AttemptUpdate) AddTimeSpentSecs(v int) *AttemptUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetSynced sets the "synced" field.
func (_u *AttemptUpdate) SetSynced(v bool) *AttemptUpdate {
	_u.mutation.SetSynced(v)
	return _u
}

// SetNillableSynced sets the "synced" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableSynced(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetSynced(*v)
	}
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdate) Mutation() *AttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := attempt.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(attempt.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptOrder(); ok {
		_spec.SetField(attempt.FieldAttemptOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptOrder(); ok {
		_spec.AddField(attempt.FieldAttemptOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(attempt.FieldAnswer, field.TypeJSON, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(attempt.FieldAnswer, field.TypeJSON)
	}
	if value, ok := _u.mutation.MarkedForReview(); ok {
		_spec.SetField(attempt.FieldMarkedForReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(attempt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(attempt.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.IsCorrectCleared() {
		_spec.ClearField(attempt.FieldIsCorrect, field.TypeBool)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(attempt.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(attempt.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Synced(); ok {
		_spec.SetField(attempt.FieldSynced, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptUpdateOne is the builder for updating a single Attempt entity.
type AttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptUpdateOne) SetSessionID(v string) *AttemptUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableSessionID(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AttemptUpdateOne) SetQuestionID(v string) *AttemptUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableQuestionID(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAttemptOrder sets the "attempt_order" field.
func (_u *AttemptUpdateOne) SetAttemptOrder(v int) *AttemptUpdateOne {
	_u.mutation.ResetAttemptOrder()
	_u.mutation.SetAttemptOrder(v)
	return _u
}

// SetNillableAttemptOrder sets the "attempt_order" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableAttemptOrder(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetAttemptOrder(*v)
	}
	return _u
}

// AddAttemptOrder adds value to the "attempt_order" field.
func (_u *AttemptUpdateOne) AddAttemptOrder(v int) *AttemptUpdateOne {
	_u.mutation.AddAttemptOrder(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AttemptUpdateOne) SetAnswer(v *schema.AnswerData) *AttemptUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *AttemptUpdateOne) ClearAnswer() *AttemptUpdateOne {
	_u.mutation.ClearAnswer()
	return _u
}

// SetMarkedForReview sets the "marked_for_review" field.
func (_u *AttemptUpdateOne) SetMarkedForReview(v bool) *AttemptUpdateOne {
	_u.mutation.SetMarkedForReview(v)
	return _u
}

// SetNillableMarkedForReview sets the "marked_for_review" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableMarkedForReview(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetMarkedForReview(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AttemptUpdateOne) SetStatus(v string) *AttemptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableStatus(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AttemptUpdateOne) SetIsCorrect(v bool) *AttemptUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableIsCorrect(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (_u *AttemptUpdateOne) ClearIsCorrect() *AttemptUpdateOne {
	_u.mutation.ClearIsCorrect()
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptUpdateOne) SetScore(v float64) *AttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableScore(v *float64) *AttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptUpdateOne) AddScore(v float64) *AttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *AttemptUpdateOne) SetTimeSpentSecs(v int) *AttemptUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTimeSpentSecs(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *AttemptUpdateOne) AddTimeSpentSecs(v int) *AttemptUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetSynced sets the "synced" field.
func (_u *AttemptUpdateOne) SetSynced(v bool) *AttemptUpdateOne {
	_u.mutation.SetSynced(v)
	return _u
}

// SetNillableSynced sets the "synced" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableSynced(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetSynced(*v)
	}
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdateOne) Mutation() *AttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdateOne) Where(ps ...predicate.Attempt) *AttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptUpdateOne) Select(field string, fields ...string) *AttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attempt entity.
func (_u *AttemptUpdateOne) Save(ctx context.Context) (*Attempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdateOne) SaveX(ctx context.Context) *Attempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := attempt.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdateOne) sqlSave(ctx context.Context) (_node *Attempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attempt.FieldID)
		for _, f := range fields {
			if !attempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(attempt.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptOrder(); ok {
		_spec.SetField(attempt.FieldAttemptOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptOrder(); ok {
		_spec.AddField(attempt.FieldAttemptOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(attempt.FieldAnswer, field.TypeJSON, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(attempt.FieldAnswer, field.TypeJSON)
	}
	if value, ok := _u.mutation.MarkedForReview(); ok {
		_spec.SetField(attempt.FieldMarkedForReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(attempt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(attempt.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.IsCorrectCleared() {
		_spec.ClearField(attempt.FieldIsCorrect, field.TypeBool)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(attempt.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(attempt.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Synced(); ok {
		_spec.SetField(attempt.FieldSynced, field.TypeBool, value)
	}
	_node = &Attempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examdeck/ent/predicate"
	"github.com/abhisek/examdeck/ent/testsession"
)

// TestSessionUpdate is the builder for updating TestSession entities.
type TestSessionUpdate struct {
	config
	hooks    []Hook
	mutation *TestSessionMutation
}

// Where appends a list predicates to the TestSessionUpdate builder.
func (_u *TestSessionUpdate) Where(ps ...predicate.TestSession) *TestSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TestSessionUpdate) SetTitle(v string) *TestSessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableTitle(v *string) *TestSessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *TestSessionUpdate) SetQuestions(v []string) *TestSessionUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *TestSessionUpdate) AppendQuestions(v []string) *TestSessionUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *TestSessionUpdate) SetDurationSecs(v int) *TestSessionUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableDurationSecs(v *int) *TestSessionUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *TestSessionUpdate) AddDurationSecs(v int) *TestSessionUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetRemainingSecs sets the "remaining_secs" field.
func (_u *TestSessionUpdate) SetRemainingSecs(v int) *TestSessionUpdate {
	_u.mutation.ResetRemainingSecs()
	_u.mutation.SetRemainingSecs(v)
	return _u
}

// SetNillableRemainingSecs sets the "remaining_secs" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableRemainingSecs(v *int) *TestSessionUpdate {
	if v != nil {
		_u.SetRemainingSecs(*v)
	}
	return _u
}

// AddRemainingSecs adds value to the "remaining_secs" field.
func (_u *TestSessionUpdate) AddRemainingSecs(v int) *TestSessionUpdate {
	_u.mutation.AddRemainingSecs(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TestSessionUpdate) SetStatus(v string) *TestSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableStatus(v *string) *TestSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *TestSessionUpdate) SetTotalScore(v float64) *TestSessionUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableTotalScore(v *float64) *TestSessionUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *TestSessionUpdate) AddTotalScore(v float64) *TestSessionUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *TestSessionUpdate) SetCorrectCount(v int) *TestSessionUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableCorrectCount(v *int) *TestSessionUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *TestSessionUpdate) AddCorrectCount(v int) *TestSessionUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetAttemptedCount sets the "attempted_count" field.
func (_u *TestSessionUpdate) SetAttemptedCount(v int) *TestSessionUpdate {
	_u.mutation.ResetAttemptedCount()
	_u.mutation.SetAttemptedCount(v)
	return _u
}

// SetNillableAttemptedCount sets the "attempted_count" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableAttemptedCount(v *int) *TestSessionUpdate {
	if v != nil {
		_u.SetAttemptedCount(*v)
	}
	return _u
}

// AddAttemptedCount adds value to the "attempted_count" field.
func (_u *TestSessionUpdate) AddAttemptedCount(v int) *TestSessionUpdate {
	_u.mutation.AddAttemptedCount(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *TestSessionUpdate) SetAccuracy(v float64) *TestSessionUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableAccuracy(v *float64) *TestSessionUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *TestSessionUpdate) AddAccuracy(v float64) *TestSessionUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TestSessionUpdate) SetCompletedAt(v time.Time) *TestSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableCompletedAt(v *time.Time) *TestSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TestSessionUpdate) ClearCompletedAt() *TestSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TestSessionMutation object of the builder.
func (_u *TestSessionUpdate) Mutation() *TestSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TestSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(testsession.Table, testsession.Columns, sqlgraph.NewFieldSpec(testsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(testsession.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(testsession.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testsession.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(testsession.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(testsession.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RemainingSecs(); ok {
		_spec.SetField(testsession.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingSecs(); ok {
		_spec.AddField(testsession.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(testsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(testsession.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(testsession.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(testsession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(testsession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptedCount(); ok {
		_spec.SetField(testsession.FieldAttemptedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptedCount(); ok {
		_spec.AddField(testsession.FieldAttemptedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(testsession.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(testsession.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(testsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(testsession.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestSessionUpdateOne is the builder for updating a single TestSession entity.
type TestSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestSessionMutation
}

// SetTitle sets the "title" field.
func (_u *TestSessionUpdateOne) SetTitle(v string) *TestSessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableTitle(v *string) *TestSessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *TestSessionUpdateOne) SetQuestions(v []string) *TestSessionUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *TestSessionUpdateOne) AppendQuestions(v []string) *TestSessionUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *TestSessionUpdateOne) SetDurationSecs(v int) *TestSessionUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableDurationSecs(v *int) *TestSessionUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *TestSessionUpdateOne) AddDurationSecs(v int) *TestSessionUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetRemainingSecs sets the "remaining_secs" field.
func (_u *TestSessionUpdateOne) SetRemainingSecs(v int) *TestSessionUpdateOne {
	_u.mutation.ResetRemainingSecs()
	_u.mutation.SetRemainingSecs(v)
	return _u
}

// SetNillableRemainingSecs sets the "remaining_secs" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableRemainingSecs(v *int) *TestSessionUpdateOne {
	if v != nil {
		_u.SetRemainingSecs(*v)
	}
	return _u
}

// AddRemainingSecs adds value to the "remaining_secs" field.
func (_u *TestSessionUpdateOne) AddRemainingSecs(v int) *TestSessionUpdateOne {
	_u.mutation.AddRemainingSecs(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TestSessionUpdateOne) SetStatus(v string) *TestSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableStatus(v *string) *TestSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *TestSessionUpdateOne) SetTotalScore(v float64) *TestSessionUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableTotalScore(v *float64) *TestSessionUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *TestSessionUpdateOne) AddTotalScore(v float64) *TestSessionUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *TestSessionUpdateOne) SetCorrectCount(v int) *TestSessionUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableCorrectCount(v *int) *TestSessionUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *TestSessionUpdateOne) AddCorrectCount(v int) *TestSessionUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetAttemptedCount sets the "attempted_count" field.
func (_u *TestSessionUpdateOne) SetAttemptedCount(v int) *TestSessionUpdateOne {
	_u.mutation.ResetAttemptedCount()
	_u.mutation.SetAttemptedCount(v)
	return _u
}

// SetNillableAttemptedCount sets the "attempted_count" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableAttemptedCount(v *int) *TestSessionUpdateOne {
	if v != nil {
		_u.SetAttemptedCount(*v)
	}
	return _u
}

// AddAttemptedCount adds value to the "attempted_count" field.
func (_u *TestSessionUpdateOne) AddAttemptedCount(v int) *TestSessionUpdateOne {
	_u.mutation.AddAttemptedCount(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *TestSessionUpdateOne) SetAccuracy(v float64) *TestSessionUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableAccuracy(v *float64) *TestSessionUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *TestSessionUpdateOne) AddAccuracy(v float64) *TestSessionUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TestSessionUpdateOne) SetCompletedAt(v time.Time) *TestSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *TestSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TestSessionUpdateOne) ClearCompletedAt() *TestSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TestSessionMutation object of the builder.
func (_u *TestSessionUpdateOne) Mutation() *TestSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestSessionUpdate builder.
func (_u *TestSessionUpdateOne) Where(ps ...predicate.TestSession) *TestSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestSessionUpdateOne) Select(field string, fields ...string) *TestSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestSession entity.
func (_u *TestSessionUpdateOne) Save(ctx context.Context) (*TestSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestSessionUpdateOne) SaveX(ctx context.Context) *TestSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TestSessionUpdateOne) sqlSave(ctx context.Context) (_node *TestSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(testsession.Table, testsession.Columns, sqlgraph.NewFieldSpec(testsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testsession.FieldID)
		for _, f := range fields {
			if !testsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testsession.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(testsession.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(testsession.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testsession.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(testsession.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(testsession.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RemainingSecs(); ok {
		_spec.SetField(testsession.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingSecs(); ok {
		_spec.AddField(testsession.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(testsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(testsession.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(testsession.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(testsession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(testsession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptedCount(); ok {
		_spec.SetField(testsession.FieldAttemptedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptedCount(); ok {
		_spec.AddField(testsession.FieldAttemptedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(testsession.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(testsession.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(testsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(testsession.FieldCompletedAt, field.TypeTime)
	}
	_node = &TestSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examdeck/ent/testsession"
)

// TestSessionCreate is the builder for creating a TestSession entity.
type TestSessionCreate struct {
	config
	mutation *TestSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *TestSessionCreate) SetSessionID(v string) *TestSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TestSessionCreate) SetTitle(v string) *TestSessionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableTitle(v *string) *TestSessionCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *TestSessionCreate) SetQuestions(v []string) *TestSessionCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *TestSessionCreate) SetDurationSecs(v int) *TestSessionCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetRemainingSecs sets the "remaining_secs" field.
func (_c *TestSessionCreate) SetRemainingSecs(v int) *TestSessionCreate {
	_c.mutation.SetRemainingSecs(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TestSessionCreate) SetStatus(v string) *TestSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableStatus(v *string) *TestSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *TestSessionCreate) SetTotalScore(v float64) *TestSessionCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableTotalScore(v *float64) *TestSessionCreate {
	if v != nil {
		_c.SetTotalScore(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *TestSessionCreate) SetCorrectCount(v int) *TestSessionCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableCorrectCount(v *int) *TestSessionCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetAttemptedCount sets the "attempted_count" field.
func (_c *TestSessionCreate) SetAttemptedCount(v int) *TestSessionCreate {
	_c.mutation.SetAttemptedCount(v)
	return _c
}

// SetNillableAttemptedCount sets the "attempted_count" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableAttemptedCount(v *int) *TestSessionCreate {
	if v != nil {
		_c.SetAttemptedCount(*v)
	}
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *TestSessionCreate) SetAccuracy(v float64) *TestSessionCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableAccuracy(v *float64) *TestSessionCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TestSessionCreate) SetCompletedAt(v time.Time) *TestSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableCompletedAt(v *time.Time) *TestSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestSessionCreate) SetCreatedAt(v time.Time) *TestSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableCreatedAt(v *time.Time) *TestSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the TestSessionMutation object of the builder.
func (_c *TestSessionCreate) Mutation() *TestSessionMutation {
	return _c.mutation
}

// Save creates the TestSession in the database.
func (_c *TestSessionCreate) Save(ctx context.Context) (*TestSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestSessionCreate) SaveX(ctx context.Context) *TestSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestSessionCreate) defaults() {
	if _, ok := _c.mutation.Title(); !ok {
		v := testsession.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := testsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		v := testsession.DefaultTotalScore
		_c.mutation.SetTotalScore(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := testsession.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.AttemptedCount(); !ok {
		v := testsession.DefaultAttemptedCount
		_c.mutation.SetAttemptedCount(v)
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		v := testsession.DefaultAccuracy
		_c.mutation.SetAccuracy(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TestSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := testsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TestSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "TestSession.title"`)}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "TestSession.questions"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "TestSession.duration_secs"`)}
	}
	if _, ok := _c.mutation.RemainingSecs(); !ok {
		return &ValidationError{Name: "remaining_secs", err: errors.New(`ent: missing required field "TestSession.remaining_secs"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TestSession.status"`)}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`ent: missing required field "TestSession.total_score"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "TestSession.correct_count"`)}
	}
	if _, ok := _c.mutation.AttemptedCount(); !ok {
		return &ValidationError{Name: "attempted_count", err: errors.New(`ent: missing required field "TestSession.attempted_count"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "TestSession.accuracy"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TestSession.created_at"`)}
	}
	return nil
}

func (_c *TestSessionCreate) sqlSave(ctx context.Context) (*TestSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestSessionCreate) createSpec() (*TestSession, *sqlgraph.CreateSpec) {
	var (
		_node = &TestSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testsession.Table, sqlgraph.NewFieldSpec(testsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(testsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(testsession.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(testsession.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(testsession.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.RemainingSecs(); ok {
		_spec.SetField(testsession.FieldRemainingSecs, field.TypeInt, value)
		_node.RemainingSecs = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(testsession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(testsession.FieldTotalScore, field.TypeFloat64, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(testsession.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.AttemptedCount(); ok {
		_spec.SetField(testsession.FieldAttemptedCount, field.TypeInt, value)
		_node.AttemptedCount = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(testsession.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(testsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TestSessionCreateBulk is the builder for creating many TestSession entities in bulk.
type TestSessionCreateBulk struct {
	config
	err      error
	builders []*TestSessionCreate
}

// Save creates the TestSession entities in the database.
func (_c *TestSessionCreateBulk) Save(ctx context.Context) ([]*TestSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TestSessionCreateBulk) SaveX(ctx context.Context) []*TestSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

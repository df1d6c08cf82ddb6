// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examdeck/ent/predicate"
	"github.com/abhisek/examdeck/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQtype sets the "qtype" field.
func (_u *QuestionUpdate) SetQtype(v string) *QuestionUpdate {
	_u.mutation.SetQtype(v)
	return _u
}

// SetNillableQtype sets the "qtype" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQtype(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetQtype(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionUpdate) SetPrompt(v string) *QuestionUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillablePrompt(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdate) SetOptions(v []string) *QuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionUpdate) AppendOptions(v []string) *QuestionUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuestionUpdate) ClearOptions() *QuestionUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectValue sets the "correct_value" field.
func (_u *QuestionUpdate) SetCorrectValue(v string) *QuestionUpdate {
	_u.mutation.SetCorrectValue(v)
	return _u
}

// SetNillableCorrectValue sets the "correct_value" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCorrectValue(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetCorrectValue(*v)
	}
	return _u
}

// SetCorrectOptions sets the "correct_options" field.
func (_u *QuestionUpdate) SetCorrectOptions(v []int) *QuestionUpdate {
	_u.mutation.SetCorrectOptions(v)
	return _u
}

// AppendCorrectOptions appends value to the "correct_options" field.
func (_u *QuestionUpdate) AppendCorrectOptions(v []int) *QuestionUpdate {
	_u.mutation.AppendCorrectOptions(v)
	return _u
}

// ClearCorrectOptions clears the value of the "correct_options" field.
func (_u *QuestionUpdate) ClearCorrectOptions() *QuestionUpdate {
	_u.mutation.ClearCorrectOptions()
	return _u
}

// SetMarks sets the "marks" field.
func (_u *QuestionUpdate) SetMarks(v float64) *QuestionUpdate {
	_u.mutation.ResetMarks()
	_u.mutation.SetMarks(v)
	return _u
}

// SetNillableMarks sets the "marks" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableMarks(v *float64) *QuestionUpdate {
	if v != nil {
		_u.SetMarks(*v)
	}
	return _u
}

// AddMarks adds value to the "marks" field.
func (_u *QuestionUpdate) AddMarks(v float64) *QuestionUpdate {
	_u.mutation.AddMarks(v)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuestionUpdate) SetSubject(v string) *QuestionUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSubject(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionUpdate) SetTopic(v string) *QuestionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTopic(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.Qtype(); ok {
		if err := question.QtypeValidator(v); err != nil {
			return &ValidationError{Name: "qtype", err: fmt.Errorf(`ent: validator failed for field "Question.qtype": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Qtype(); ok {
		_spec.SetField(question.FieldQtype, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(question.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectValue(); ok {
		_spec.SetField(question.FieldCorrectValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectOptions(); ok {
		_spec.SetField(question.FieldCorrectOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldCorrectOptions, value)
		})
	}
	if _u.mutation.CorrectOptionsCleared() {
		_spec.ClearField(question.FieldCorrectOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Marks(); ok {
		_spec.SetField(question.FieldMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMarks(); ok {
		_spec.AddField(question.FieldMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetQtype sets the "qtype" field.
func (_u *QuestionUpdateOne) SetQtype(v string) *QuestionUpdateOne {
	_u.mutation.SetQtype(v)
	return _u
}

// SetNillableQtype sets the "qtype" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQtype(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetQtype(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionUpdateOne) SetPrompt(v string) *QuestionUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillablePrompt(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdateOne) SetOptions(v []string) *QuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionUpdateOne) AppendOptions(v []string) *QuestionUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuestionUpdateOne) ClearOptions() *QuestionUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectValue sets the "correct_value" field.
func (_u *QuestionUpdateOne) SetCorrectValue(v string) *QuestionUpdateOne {
	_u.mutation.SetCorrectValue(v)
	return _u
}

// SetNillableCorrectValue sets the "correct_value" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCorrectValue(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetCorrectValue(*v)
	}
	return _u
}

// SetCorrectOptions sets the "correct_options" field.
func (_u *QuestionUpdateOne) SetCorrectOptions(v []int) *QuestionUpdateOne {
	_u.mutation.SetCorrectOptions(v)
	return _u
}

// AppendCorrectOptions appends value to the "correct_options" field.
func (_u *QuestionUpdateOne) AppendCorrectOptions(v []int) *QuestionUpdateOne {
	_u.mutation.AppendCorrectOptions(v)
	return _u
}

// ClearCorrectOptions clears the value of the "correct_options" field.
func (_u *QuestionUpdateOne) ClearCorrectOptions() *QuestionUpdateOne {
	_u.mutation.ClearCorrectOptions()
	return _u
}

// SetMarks sets the "marks" field.
func (_u *QuestionUpdateOne) SetMarks(v float64) *QuestionUpdateOne {
	_u.mutation.ResetMarks()
	_u.mutation.SetMarks(v)
	return _u
}

// SetNillableMarks sets the "marks" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableMarks(v *float64) *QuestionUpdateOne {
	if v != nil {
		_u.SetMarks(*v)
	}
	return _u
}

// AddMarks adds value to the "marks" field.
func (_u *QuestionUpdateOne) AddMarks(v float64) *QuestionUpdateOne {
	_u.mutation.AddMarks(v)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuestionUpdateOne) SetSubject(v string) *QuestionUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSubject(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionUpdateOne) SetTopic(v string) *QuestionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTopic(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Qtype(); ok {
		if err := question.QtypeValidator(v); err != nil {
			return &ValidationError{Name: "qtype", err: fmt.Errorf(`ent: validator failed for field "Question.qtype": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.Qtype(); ok {
		_spec.SetField(question.FieldQtype, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(question.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectValue(); ok {
		_spec.SetField(question.FieldCorrectValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectOptions(); ok {
		_spec.SetField(question.FieldCorrectOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldCorrectOptions, value)
		})
	}
	if _u.mutation.CorrectOptionsCleared() {
		_spec.ClearField(question.FieldCorrectOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Marks(); ok {
		_spec.SetField(question.FieldMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMarks(); ok {
		_spec.AddField(question.FieldMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

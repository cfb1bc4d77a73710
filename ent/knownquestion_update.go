// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepcoach/ent/knownquestion"
	"github.com/abhisek/prepcoach/ent/predicate"
)

// KnownQuestionUpdate is the builder for updating KnownQuestion entities.
type KnownQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *KnownQuestionMutation
}

// Where appends a list predicates to the KnownQuestionUpdate builder.
func (_u *KnownQuestionUpdate) Where(ps ...predicate.KnownQuestion) *KnownQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *KnownQuestionUpdate) SetSubject(v string) *KnownQuestionUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *KnownQuestionUpdate) SetNillableSubject(v *string) *KnownQuestionUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *KnownQuestionUpdate) SetTopic(v string) *KnownQuestionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *KnownQuestionUpdate) SetNillableTopic(v *string) *KnownQuestionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *KnownQuestionUpdate) SetText(v string) *KnownQuestionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *KnownQuestionUpdate) SetNillableText(v *string) *KnownQuestionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetNormalizedText sets the "normalized_text" field.
func (_u *KnownQuestionUpdate) SetNormalizedText(v string) *KnownQuestionUpdate {
	_u.mutation.SetNormalizedText(v)
	return _u
}

// SetNillableNormalizedText sets the "normalized_text" field if the given value is not nil.
func (_u *KnownQuestionUpdate) SetNillableNormalizedText(v *string) *KnownQuestionUpdate {
	if v != nil {
		_u.SetNormalizedText(*v)
	}
	return _u
}

// Mutation returns the KnownQuestionMutation object of the builder.
func (_u *KnownQuestionUpdate) Mutation() *KnownQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnownQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnownQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnownQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnownQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnownQuestionUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := knownquestion.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "KnownQuestion.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := knownquestion.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "KnownQuestion.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedText(); ok {
		if err := knownquestion.NormalizedTextValidator(v); err != nil {
			return &ValidationError{Name: "normalized_text", err: fmt.Errorf(`ent: validator failed for field "KnownQuestion.normalized_text": %w`, err)}
		}
	}
	return nil
}

func (_u *KnownQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knownquestion.Table, knownquestion.Columns, sqlgraph.NewFieldSpec(knownquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(knownquestion.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(knownquestion.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(knownquestion.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedText(); ok {
		_spec.SetField(knownquestion.FieldNormalizedText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knownquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnownQuestionUpdateOne is the builder for updating a single KnownQuestion entity.
type KnownQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnownQuestionMutation
}

// SetSubject sets the "subject" field.
func (_u *KnownQuestionUpdateOne) SetSubject(v string) *KnownQuestionUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *KnownQuestionUpdateOne) SetNillableSubject(v *string) *KnownQuestionUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *KnownQuestionUpdateOne) SetTopic(v string) *KnownQuestionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *KnownQuestionUpdateOne) SetNillableTopic(v *string) *KnownQuestionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *KnownQuestionUpdateOne) SetText(v string) *KnownQuestionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *KnownQuestionUpdateOne) SetNillableText(v *string) *KnownQuestionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetNormalizedText sets the "normalized_text" field.
func (_u *KnownQuestionUpdateOne) SetNormalizedText(v string) *KnownQuestionUpdateOne {
	_u.mutation.SetNormalizedText(v)
	return _u
}

// SetNillableNormalizedText sets the "normalized_text" field if the given value is not nil.
func (_u *KnownQuestionUpdateOne) SetNillableNormalizedText(v *string) *KnownQuestionUpdateOne {
	if v != nil {
		_u.SetNormalizedText(*v)
	}
	return _u
}

// Mutation returns the KnownQuestionMutation object of the builder.
func (_u *KnownQuestionUpdateOne) Mutation() *KnownQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnownQuestionUpdate builder.
func (_u *KnownQuestionUpdateOne) Where(ps ...predicate.KnownQuestion) *KnownQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnownQuestionUpdateOne) Select(field string, fields ...string) *KnownQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnownQuestion entity.
func (_u *KnownQuestionUpdateOne) Save(ctx context.Context) (*KnownQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnownQuestionUpdateOne) SaveX(ctx context.Context) *KnownQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnownQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnownQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnownQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := knownquestion.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "KnownQuestion.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := knownquestion.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "KnownQuestion.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedText(); ok {
		if err := knownquestion.NormalizedTextValidator(v); err != nil {
			return &ValidationError{Name: "normalized_text", err: fmt.Errorf(`ent: validator failed for field "KnownQuestion.normalized_text": %w`, err)}
		}
	}
	return nil
}

func (_u *KnownQuestionUpdateOne) sqlSave(ctx context.Context) (_node *KnownQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knownquestion.Table, knownquestion.Columns, sqlgraph.NewFieldSpec(knownquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnownQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knownquestion.FieldID)
		for _, f := range fields {
			if !knownquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knownquestion.FieldID {
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
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(knownquestion.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(knownquestion.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(knownquestion.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedText(); ok {
		_spec.SetField(knownquestion.FieldNormalizedText, field.TypeString, value)
	}
	_node = &KnownQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knownquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

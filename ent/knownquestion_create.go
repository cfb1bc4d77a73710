// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepcoach/ent/knownquestion"
)

// KnownQuestionCreate is the builder for creating a KnownQuestion entity.
type KnownQuestionCreate struct {
	config
	mutation *KnownQuestionMutation
	hooks    []Hook
}

// SetSubject sets the "subject" field.
func (_c *KnownQuestionCreate) SetSubject(v string) *KnownQuestionCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *KnownQuestionCreate) SetTopic(v string) *KnownQuestionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *KnownQuestionCreate) SetNillableTopic(v *string) *KnownQuestionCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *KnownQuestionCreate) SetText(v string) *KnownQuestionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetNormalizedText sets the "normalized_text" field.
func (_c *KnownQuestionCreate) SetNormalizedText(v string) *KnownQuestionCreate {
	_c.mutation.SetNormalizedText(v)
	return _c
}

// Mutation returns the KnownQuestionMutation object of the builder.
func (_c *KnownQuestionCreate) Mutation() *KnownQuestionMutation {
	return _c.mutation
}

// Save creates the KnownQuestion in the database.
func (_c *KnownQuestionCreate) Save(ctx context.Context) (*KnownQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnownQuestionCreate) SaveX(ctx context.Context) *KnownQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnownQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnownQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnownQuestionCreate) defaults() {
	if _, ok := _c.mutation.Topic(); !ok {
		v := knownquestion.DefaultTopic
		_c.mutation.SetTopic(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnownQuestionCreate) check() error {
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "KnownQuestion.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := knownquestion.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "KnownQuestion.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "KnownQuestion.topic"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "KnownQuestion.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := knownquestion.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "KnownQuestion.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NormalizedText(); !ok {
		return &ValidationError{Name: "normalized_text", err: errors.New(`ent: missing required field "KnownQuestion.normalized_text"`)}
	}
	if v, ok := _c.mutation.NormalizedText(); ok {
		if err := knownquestion.NormalizedTextValidator(v); err != nil {
			return &ValidationError{Name: "normalized_text", err: fmt.Errorf(`ent: validator failed for field "KnownQuestion.normalized_text": %w`, err)}
		}
	}
	return nil
}

func (_c *KnownQuestionCreate) sqlSave(ctx context.Context) (*KnownQuestion, error) {
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

func (_c *KnownQuestionCreate) createSpec() (*KnownQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &KnownQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knownquestion.Table, sqlgraph.NewFieldSpec(knownquestion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(knownquestion.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(knownquestion.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(knownquestion.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.NormalizedText(); ok {
		_spec.SetField(knownquestion.FieldNormalizedText, field.TypeString, value)
		_node.NormalizedText = value
	}
	return _node, _spec
}

// KnownQuestionCreateBulk is the builder for creating many KnownQuestion entities in bulk.
type KnownQuestionCreateBulk struct {
	config
	err      error
	builders []*KnownQuestionCreate
}

// Save creates the KnownQuestion entities in the database.
func (_c *KnownQuestionCreateBulk) Save(ctx context.Context) ([]*KnownQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnownQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnownQuestionMutation)
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
func (_c *KnownQuestionCreateBulk) SaveX(ctx context.Context) []*KnownQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnownQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnownQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepcoach/ent/contentchunk"
)

// ContentChunkCreate is the builder for creating a ContentChunk entity.
type ContentChunkCreate struct {
	config
	mutation *ContentChunkMutation
	hooks    []Hook
}

// SetSubject sets the "subject" field.
func (_c *ContentChunkCreate) SetSubject(v string) *ContentChunkCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *ContentChunkCreate) SetPosition(v int) *ContentChunkCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetText sets the "text" field.
func (_c *ContentChunkCreate) SetText(v string) *ContentChunkCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *ContentChunkCreate) SetEmbedding(v []float32) *ContentChunkCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// Mutation returns the ContentChunkMutation object of the builder.
func (_c *ContentChunkCreate) Mutation() *ContentChunkMutation {
	return _c.mutation
}

// Save creates the ContentChunk in the database.
func (_c *ContentChunkCreate) Save(ctx context.Context) (*ContentChunk, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentChunkCreate) SaveX(ctx context.Context) *ContentChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentChunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentChunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentChunkCreate) check() error {
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "ContentChunk.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := contentchunk.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ContentChunk.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "ContentChunk.position"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "ContentChunk.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := contentchunk.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "ContentChunk.text": %w`, err)}
		}
	}
	return nil
}

func (_c *ContentChunkCreate) sqlSave(ctx context.Context) (*ContentChunk, error) {
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

func (_c *ContentChunkCreate) createSpec() (*ContentChunk, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentChunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contentchunk.Table, sqlgraph.NewFieldSpec(contentchunk.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(contentchunk.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(contentchunk.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(contentchunk.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(contentchunk.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	return _node, _spec
}

// ContentChunkCreateBulk is the builder for creating many ContentChunk entities in bulk.
type ContentChunkCreateBulk struct {
	config
	err      error
	builders []*ContentChunkCreate
}

// Save creates the ContentChunk entities in the database.
func (_c *ContentChunkCreateBulk) Save(ctx context.Context) ([]*ContentChunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentChunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentChunkMutation)
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
func (_c *ContentChunkCreateBulk) SaveX(ctx context.Context) []*ContentChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentChunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentChunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

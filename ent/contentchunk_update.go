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
	"github.com/abhisek/prepcoach/ent/contentchunk"
	"github.com/abhisek/prepcoach/ent/predicate"
)

// ContentChunkUpdate is the builder for updating ContentChunk entities.
type ContentChunkUpdate struct {
	config
	hooks    []Hook
	mutation *ContentChunkMutation
}

// Where appends a list predicates to the ContentChunkUpdate builder.
func (_u *ContentChunkUpdate) Where(ps ...predicate.ContentChunk) *ContentChunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ContentChunkUpdate) SetSubject(v string) *ContentChunkUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ContentChunkUpdate) SetNillableSubject(v *string) *ContentChunkUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ContentChunkUpdate) SetPosition(v int) *ContentChunkUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ContentChunkUpdate) SetNillablePosition(v *int) *ContentChunkUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ContentChunkUpdate) AddPosition(v int) *ContentChunkUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetText sets the "text" field.
func (_u *ContentChunkUpdate) SetText(v string) *ContentChunkUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ContentChunkUpdate) SetNillableText(v *string) *ContentChunkUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ContentChunkUpdate) SetEmbedding(v []float32) *ContentChunkUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *ContentChunkUpdate) AppendEmbedding(v []float32) *ContentChunkUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ContentChunkUpdate) ClearEmbedding() *ContentChunkUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// Mutation returns the ContentChunkMutation object of the builder.
func (_u *ContentChunkUpdate) Mutation() *ContentChunkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentChunkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentChunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentChunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentChunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentChunkUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := contentchunk.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ContentChunk.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := contentchunk.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "ContentChunk.text": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentChunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentchunk.Table, contentchunk.Columns, sqlgraph.NewFieldSpec(contentchunk.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(contentchunk.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(contentchunk.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(contentchunk.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(contentchunk.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(contentchunk.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentchunk.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(contentchunk.FieldEmbedding, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentChunkUpdateOne is the builder for updating a single ContentChunk entity.
type ContentChunkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentChunkMutation
}

// SetSubject sets the "subject" field.
func (_u *ContentChunkUpdateOne) SetSubject(v string) *ContentChunkUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ContentChunkUpdateOne) SetNillableSubject(v *string) *ContentChunkUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ContentChunkUpdateOne) SetPosition(v int) *ContentChunkUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ContentChunkUpdateOne) SetNillablePosition(v *int) *ContentChunkUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ContentChunkUpdateOne) AddPosition(v int) *ContentChunkUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetText sets the "text" field.
func (_u *ContentChunkUpdateOne) SetText(v string) *ContentChunkUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ContentChunkUpdateOne) SetNillableText(v *string) *ContentChunkUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ContentChunkUpdateOne) SetEmbedding(v []float32) *ContentChunkUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *ContentChunkUpdateOne) AppendEmbedding(v []float32) *ContentChunkUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ContentChunkUpdateOne) ClearEmbedding() *ContentChunkUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// Mutation returns the ContentChunkMutation object of the builder.
func (_u *ContentChunkUpdateOne) Mutation() *ContentChunkMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContentChunkUpdate builder.
func (_u *ContentChunkUpdateOne) Where(ps ...predicate.ContentChunk) *ContentChunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentChunkUpdateOne) Select(field string, fields ...string) *ContentChunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentChunk entity.
func (_u *ContentChunkUpdateOne) Save(ctx context.Context) (*ContentChunk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentChunkUpdateOne) SaveX(ctx context.Context) *ContentChunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentChunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentChunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentChunkUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := contentchunk.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ContentChunk.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := contentchunk.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "ContentChunk.text": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentChunkUpdateOne) sqlSave(ctx context.Context) (_node *ContentChunk, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentchunk.Table, contentchunk.Columns, sqlgraph.NewFieldSpec(contentchunk.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentChunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentchunk.FieldID)
		for _, f := range fields {
			if !contentchunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contentchunk.FieldID {
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
		_spec.SetField(contentchunk.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(contentchunk.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(contentchunk.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(contentchunk.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(contentchunk.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentchunk.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(contentchunk.FieldEmbedding, field.TypeJSON)
	}
	_node = &ContentChunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

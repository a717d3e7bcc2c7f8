// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/moduledoc"
	"github.com/abhisek/pathwise/internal/modules"
)

// ModuleDocCreate is the builder for creating a ModuleDoc entity.
type ModuleDocCreate struct {
	config
	mutation *ModuleDocMutation
	hooks    []Hook
}

// SetAppID sets the "app_id" field.
func (_c *ModuleDocCreate) SetAppID(v string) *ModuleDocCreate {
	_c.mutation.SetAppID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ModuleDocCreate) SetUserID(v string) *ModuleDocCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetModuleID sets the "module_id" field.
func (_c *ModuleDocCreate) SetModuleID(v string) *ModuleDocCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ModuleDocCreate) SetName(v string) *ModuleDocCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ModuleDocCreate) SetStatus(v string) *ModuleDocCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ModuleDocCreate) SetNillableStatus(v *string) *ModuleDocCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResources sets the "resources" field.
func (_c *ModuleDocCreate) SetResources(v []string) *ModuleDocCreate {
	_c.mutation.SetResources(v)
	return _c
}

// SetTeacherPicks sets the "teacher_picks" field.
func (_c *ModuleDocCreate) SetTeacherPicks(v []modules.TeacherPick) *ModuleDocCreate {
	_c.mutation.SetTeacherPicks(v)
	return _c
}

// SetAssignmentContent sets the "assignment_content" field.
func (_c *ModuleDocCreate) SetAssignmentContent(v *modules.AssignmentContent) *ModuleDocCreate {
	_c.mutation.SetAssignmentContent(v)
	return _c
}

// SetAssignments sets the "assignments" field.
func (_c *ModuleDocCreate) SetAssignments(v modules.AssignmentState) *ModuleDocCreate {
	_c.mutation.SetAssignments(v)
	return _c
}

// SetNillableAssignments sets the "assignments" field if the given value is not nil.
func (_c *ModuleDocCreate) SetNillableAssignments(v *modules.AssignmentState) *ModuleDocCreate {
	if v != nil {
		_c.SetAssignments(*v)
	}
	return _c
}

// SetQuizzes sets the "quizzes" field.
func (_c *ModuleDocCreate) SetQuizzes(v []modules.QuizAttempt) *ModuleDocCreate {
	_c.mutation.SetQuizzes(v)
	return _c
}

// SetFinalTestScore sets the "final_test_score" field.
func (_c *ModuleDocCreate) SetFinalTestScore(v float64) *ModuleDocCreate {
	_c.mutation.SetFinalTestScore(v)
	return _c
}

// SetNillableFinalTestScore sets the "final_test_score" field if the given value is not nil.
func (_c *ModuleDocCreate) SetNillableFinalTestScore(v *float64) *ModuleDocCreate {
	if v != nil {
		_c.SetFinalTestScore(*v)
	}
	return _c
}

// SetCertificateIssued sets the "certificate_issued" field.
func (_c *ModuleDocCreate) SetCertificateIssued(v bool) *ModuleDocCreate {
	_c.mutation.SetCertificateIssued(v)
	return _c
}

// SetNillableCertificateIssued sets the "certificate_issued" field if the given value is not nil.
func (_c *ModuleDocCreate) SetNillableCertificateIssued(v *bool) *ModuleDocCreate {
	if v != nil {
		_c.SetCertificateIssued(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModuleDocCreate) SetCreatedAt(v time.Time) *ModuleDocCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModuleDocCreate) SetNillableCreatedAt(v *time.Time) *ModuleDocCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *ModuleDocCreate) SetLastUpdated(v time.Time) *ModuleDocCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *ModuleDocCreate) SetNillableLastUpdated(v *time.Time) *ModuleDocCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// Mutation returns the ModuleDocMutation object of the builder.
func (_c *ModuleDocCreate) Mutation() *ModuleDocMutation {
	return _c.mutation
}

// Save creates the ModuleDoc in the database.
func (_c *ModuleDocCreate) Save(ctx context.Context) (*ModuleDoc, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModuleDocCreate) SaveX(ctx context.Context) *ModuleDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModuleDocCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModuleDocCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModuleDocCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := moduledoc.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FinalTestScore(); !ok {
		v := moduledoc.DefaultFinalTestScore
		_c.mutation.SetFinalTestScore(v)
	}
	if _, ok := _c.mutation.CertificateIssued(); !ok {
		v := moduledoc.DefaultCertificateIssued
		_c.mutation.SetCertificateIssued(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := moduledoc.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := moduledoc.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModuleDocCreate) check() error {
	if _, ok := _c.mutation.AppID(); !ok {
		return &ValidationError{Name: "app_id", err: errors.New(`ent: missing required field "ModuleDoc.app_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ModuleDoc.user_id"`)}
	}
	if _, ok := _c.mutation.ModuleID(); !ok {
		return &ValidationError{Name: "module_id", err: errors.New(`ent: missing required field "ModuleDoc.module_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ModuleDoc.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ModuleDoc.status"`)}
	}
	if _, ok := _c.mutation.FinalTestScore(); !ok {
		return &ValidationError{Name: "final_test_score", err: errors.New(`ent: missing required field "ModuleDoc.final_test_score"`)}
	}
	if _, ok := _c.mutation.CertificateIssued(); !ok {
		return &ValidationError{Name: "certificate_issued", err: errors.New(`ent: missing required field "ModuleDoc.certificate_issued"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModuleDoc.created_at"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "ModuleDoc.last_updated"`)}
	}
	return nil
}

func (_c *ModuleDocCreate) sqlSave(ctx context.Context) (*ModuleDoc, error) {
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

func (_c *ModuleDocCreate) createSpec() (*ModuleDoc, *sqlgraph.CreateSpec) {
	var (
		_node = &ModuleDoc{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(moduledoc.Table, sqlgraph.NewFieldSpec(moduledoc.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AppID(); ok {
		_spec.SetField(moduledoc.FieldAppID, field.TypeString, value)
		_node.AppID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(moduledoc.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(moduledoc.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(moduledoc.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(moduledoc.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Resources(); ok {
		_spec.SetField(moduledoc.FieldResources, field.TypeJSON, value)
		_node.Resources = value
	}
	if value, ok := _c.mutation.TeacherPicks(); ok {
		_spec.SetField(moduledoc.FieldTeacherPicks, field.TypeJSON, value)
		_node.TeacherPicks = value
	}
	if value, ok := _c.mutation.AssignmentContent(); ok {
		_spec.SetField(moduledoc.FieldAssignmentContent, field.TypeJSON, value)
		_node.AssignmentContent = value
	}
	if value, ok := _c.mutation.Assignments(); ok {
		_spec.SetField(moduledoc.FieldAssignments, field.TypeJSON, value)
		_node.Assignments = value
	}
	if value, ok := _c.mutation.Quizzes(); ok {
		_spec.SetField(moduledoc.FieldQuizzes, field.TypeJSON, value)
		_node.Quizzes = value
	}
	if value, ok := _c.mutation.FinalTestScore(); ok {
		_spec.SetField(moduledoc.FieldFinalTestScore, field.TypeFloat64, value)
		_node.FinalTestScore = value
	}
	if value, ok := _c.mutation.CertificateIssued(); ok {
		_spec.SetField(moduledoc.FieldCertificateIssued, field.TypeBool, value)
		_node.CertificateIssued = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(moduledoc.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(moduledoc.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// ModuleDocCreateBulk is the builder for creating many ModuleDoc entities in bulk.
type ModuleDocCreateBulk struct {
	config
	err      error
	builders []*ModuleDocCreate
}

// Save creates the ModuleDoc entities in the database.
func (_c *ModuleDocCreateBulk) Save(ctx context.Context) ([]*ModuleDoc, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModuleDoc, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModuleDocMutation)
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
func (_c *ModuleDocCreateBulk) SaveX(ctx context.Context) []*ModuleDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModuleDocCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModuleDocCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/abhisek/pathwise/ent/moduledoc"
	"github.com/abhisek/pathwise/ent/predicate"
	"github.com/abhisek/pathwise/internal/modules"
)

// ModuleDocUpdate is the builder for updating ModuleDoc entities.
type ModuleDocUpdate struct {
	config
	hooks    []Hook
	mutation *ModuleDocMutation
}

// Where appends a list predicates to the ModuleDocUpdate builder.
func (_u *ModuleDocUpdate) Where(ps ...predicate.ModuleDoc) *ModuleDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ModuleDocUpdate) SetName(v string) *ModuleDocUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ModuleDocUpdate) SetNillableName(v *string) *ModuleDocUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ModuleDocUpdate) SetStatus(v string) *ModuleDocUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ModuleDocUpdate) SetNillableStatus(v *string) *ModuleDocUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResources sets the "resources" field.
func (_u *ModuleDocUpdate) SetResources(v []string) *ModuleDocUpdate {
	_u.mutation.SetResources(v)
	return _u
}

// AppendResources appends value to the "resources" field.
func (_u *ModuleDocUpdate) AppendResources(v []string) *ModuleDocUpdate {
	_u.mutation.AppendResources(v)
	return _u
}

// ClearResources clears the value of the "resources" field.
func (_u *ModuleDocUpdate) ClearResources() *ModuleDocUpdate {
	_u.mutation.ClearResources()
	return _u
}

// SetTeacherPicks sets the "teacher_picks" field.
func (_u *ModuleDocUpdate) SetTeacherPicks(v []modules.TeacherPick) *ModuleDocUpdate {
	_u.mutation.SetTeacherPicks(v)
	return _u
}

// AppendTeacherPicks appends value to the "teacher_picks" field.
func (_u *ModuleDocUpdate) AppendTeacherPicks(v []modules.TeacherPick) *ModuleDocUpdate {
	_u.mutation.AppendTeacherPicks(v)
	return _u
}

// ClearTeacherPicks clears the value of the "teacher_picks" field.
func (_u *ModuleDocUpdate) ClearTeacherPicks() *ModuleDocUpdate {
	_u.mutation.ClearTeacherPicks()
	return _u
}

// SetAssignmentContent sets the "assignment_content" field.
func (_u *ModuleDocUpdate) SetAssignmentContent(v *modules.AssignmentContent) *ModuleDocUpdate {
	_u.mutation.SetAssignmentContent(v)
	return _u
}

// ClearAssignmentContent clears the value of the "assignment_content" field.
func (_u *ModuleDocUpdate) ClearAssignmentContent() *ModuleDocUpdate {
	_u.mutation.ClearAssignmentContent()
	return _u
}

// SetAssignments sets the "assignments" field.
func (_u *ModuleDocUpdate) SetAssignments(v modules.AssignmentState) *ModuleDocUpdate {
	_u.mutation.SetAssignments(v)
	return _u
}

// SetNillableAssignments sets the "assignments" field if the given value is not nil.
func (_u *ModuleDocUpdate) SetNillableAssignments(v *modules.AssignmentState) *ModuleDocUpdate {
	if v != nil {
		_u.SetAssignments(*v)
	}
	return _u
}

// ClearAssignments clears the value of the "assignments" field.
func (_u *ModuleDocUpdate) ClearAssignments() *ModuleDocUpdate {
	_u.mutation.ClearAssignments()
	return _u
}

// SetQuizzes sets the "quizzes" field.
func (_u *ModuleDocUpdate) SetQuizzes(v []modules.QuizAttempt) *ModuleDocUpdate {
	_u.mutation.SetQuizzes(v)
	return _u
}

// AppendQuizzes appends value to the "quizzes" field.
func (_u *ModuleDocUpdate) AppendQuizzes(v []modules.QuizAttempt) *ModuleDocUpdate {
	_u.mutation.AppendQuizzes(v)
	return _u
}

// ClearQuizzes clears the value of the "quizzes" field.
func (_u *ModuleDocUpdate) ClearQuizzes() *ModuleDocUpdate {
	_u.mutation.ClearQuizzes()
	return _u
}

// SetFinalTestScore sets the "final_test_score" field.
func (_u *ModuleDocUpdate) SetFinalTestScore(v float64) *ModuleDocUpdate {
	_u.mutation.ResetFinalTestScore()
	_u.mutation.SetFinalTestScore(v)
	return _u
}

// SetNillableFinalTestScore sets the "final_test_score" field if the given value is not nil.
func (_u *ModuleDocUpdate) SetNillableFinalTestScore(v *float64) *ModuleDocUpdate {
	if v != nil {
		_u.SetFinalTestScore(*v)
	}
	return _u
}

// AddFinalTestScore adds value to the "final_test_score" field.
func (_u *ModuleDocUpdate) AddFinalTestScore(v float64) *ModuleDocUpdate {
	_u.mutation.AddFinalTestScore(v)
	return _u
}

// SetCertificateIssued sets the "certificate_issued" field.
func (_u *ModuleDocUpdate) SetCertificateIssued(v bool) *ModuleDocUpdate {
	_u.mutation.SetCertificateIssued(v)
	return _u
}

// SetNillableCertificateIssued sets the "certificate_issued" field if the given value is not nil.
func (_u *ModuleDocUpdate) SetNillableCertificateIssued(v *bool) *ModuleDocUpdate {
	if v != nil {
		_u.SetCertificateIssued(*v)
	}
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *ModuleDocUpdate) SetLastUpdated(v time.Time) *ModuleDocUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *ModuleDocUpdate) SetNillableLastUpdated(v *time.Time) *ModuleDocUpdate {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// Mutation returns the ModuleDocMutation object of the builder.
func (_u *ModuleDocUpdate) Mutation() *ModuleDocMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModuleDocUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModuleDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModuleDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModuleDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ModuleDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(moduledoc.Table, moduledoc.Columns, sqlgraph.NewFieldSpec(moduledoc.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(moduledoc.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(moduledoc.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resources(); ok {
		_spec.SetField(moduledoc.FieldResources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, moduledoc.FieldResources, value)
		})
	}
	if _u.mutation.ResourcesCleared() {
		_spec.ClearField(moduledoc.FieldResources, field.TypeJSON)
	}
	if value, ok := _u.mutation.TeacherPicks(); ok {
		_spec.SetField(moduledoc.FieldTeacherPicks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTeacherPicks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, moduledoc.FieldTeacherPicks, value)
		})
	}
	if _u.mutation.TeacherPicksCleared() {
		_spec.ClearField(moduledoc.FieldTeacherPicks, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssignmentContent(); ok {
		_spec.SetField(moduledoc.FieldAssignmentContent, field.TypeJSON, value)
	}
	if _u.mutation.AssignmentContentCleared() {
		_spec.ClearField(moduledoc.FieldAssignmentContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.Assignments(); ok {
		_spec.SetField(moduledoc.FieldAssignments, field.TypeJSON, value)
	}
	if _u.mutation.AssignmentsCleared() {
		_spec.ClearField(moduledoc.FieldAssignments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Quizzes(); ok {
		_spec.SetField(moduledoc.FieldQuizzes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuizzes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, moduledoc.FieldQuizzes, value)
		})
	}
	if _u.mutation.QuizzesCleared() {
		_spec.ClearField(moduledoc.FieldQuizzes, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalTestScore(); ok {
		_spec.SetField(moduledoc.FieldFinalTestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalTestScore(); ok {
		_spec.AddField(moduledoc.FieldFinalTestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CertificateIssued(); ok {
		_spec.SetField(moduledoc.FieldCertificateIssued, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(moduledoc.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moduledoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModuleDocUpdateOne is the builder for updating a single ModuleDoc entity.
type ModuleDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModuleDocMutation
}

// SetName sets the "name" field.
func (_u *ModuleDocUpdateOne) SetName(v string) *ModuleDocUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ModuleDocUpdateOne) SetNillableName(v *string) *ModuleDocUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ModuleDocUpdateOne) SetStatus(v string) *ModuleDocUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ModuleDocUpdateOne) SetNillableStatus(v *string) *ModuleDocUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResources sets the "resources" field.
func (_u *ModuleDocUpdateOne) SetResources(v []string) *ModuleDocUpdateOne {
	_u.mutation.SetResources(v)
	return _u
}

// AppendResources appends value to the "resources" field.
func (_u *ModuleDocUpdateOne) AppendResources(v []string) *ModuleDocUpdateOne {
	_u.mutation.AppendResources(v)
	return _u
}

// ClearResources clears the value of the "resources" field.
func (_u *ModuleDocUpdateOne) ClearResources() *ModuleDocUpdateOne {
	_u.mutation.ClearResources()
	return _u
}

// SetTeacherPicks sets the "teacher_picks" field.
func (_u *ModuleDocUpdateOne) SetTeacherPicks(v []modules.TeacherPick) *ModuleDocUpdateOne {
	_u.mutation.SetTeacherPicks(v)
	return _u
}

// AppendTeacherPicks appends value to the "teacher_picks" field.
func (_u *ModuleDocUpdateOne) AppendTeacherPicks(v []modules.TeacherPick) *ModuleDocUpdateOne {
	_u.mutation.AppendTeacherPicks(v)
	return _u
}

// ClearTeacherPicks clears the value of the "teacher_picks" field.
func (_u *ModuleDocUpdateOne) ClearTeacherPicks() *ModuleDocUpdateOne {
	_u.mutation.ClearTeacherPicks()
	return _u
}

// SetAssignmentContent sets the "assignment_content" field.
func (_u *ModuleDocUpdateOne) SetAssignmentContent(v *modules.AssignmentContent) *ModuleDocUpdateOne {
	_u.mutation.SetAssignmentContent(v)
	return _u
}

// ClearAssignmentContent clears the value of the "assignment_content" field.
func (_u *ModuleDocUpdateOne) ClearAssignmentContent() *ModuleDocUpdateOne {
	_u.mutation.ClearAssignmentContent()
	return _u
}

// SetAssignments sets the "assignments" field.
func (_u *ModuleDocUpdateOne) SetAssignments(v modules.AssignmentState) *ModuleDocUpdateOne {
	_u.mutation.SetAssignments(v)
	return _u
}

// SetNillableAssignments sets the "assignments" field if the given value is not nil.
func (_u *ModuleDocUpdateOne) SetNillableAssignments(v *modules.AssignmentState) *ModuleDocUpdateOne {
	if v != nil {
		_u.SetAssignments(*v)
	}
	return _u
}

// ClearAssignments clears the value of the "assignments" field.
func (_u *ModuleDocUpdateOne) ClearAssignments() *ModuleDocUpdateOne {
	_u.mutation.ClearAssignments()
	return _u
}

// SetQuizzes sets the "quizzes" field.
func (_u *ModuleDocUpdateOne) SetQuizzes(v []modules.QuizAttempt) *ModuleDocUpdateOne {
	_u.mutation.SetQuizzes(v)
	return _u
}

// AppendQuizzes appends value to the "quizzes" field.
func (_u *ModuleDocUpdateOne) AppendQuizzes(v []modules.QuizAttempt) *ModuleDocUpdateOne {
	_u.mutation.AppendQuizzes(v)
	return _u
}

// ClearQuizzes clears the value of the "quizzes" field.
func (_u *ModuleDocUpdateOne) ClearQuizzes() *ModuleDocUpdateOne {
	_u.mutation.ClearQuizzes()
	return _u
}

// SetFinalTestScore sets the "final_test_score" field.
func (_u *ModuleDocUpdateOne) SetFinalTestScore(v float64) *ModuleDocUpdateOne {
	_u.mutation.ResetFinalTestScore()
	_u.mutation.SetFinalTestScore(v)
	return _u
}

// SetNillableFinalTestScore sets the "final_test_score" field if the given value is not nil.
func (_u *ModuleDocUpdateOne) SetNillableFinalTestScore(v *float64) *ModuleDocUpdateOne {
	if v != nil {
		_u.SetFinalTestScore(*v)
	}
	return _u
}

// AddFinalTestScore adds value to the "final_test_score" field.
func (_u *ModuleDocUpdateOne) AddFinalTestScore(v float64) *ModuleDocUpdateOne {
	_u.mutation.AddFinalTestScore(v)
	return _u
}

// SetCertificateIssued sets the "certificate_issued" field.
func (_u *ModuleDocUpdateOne) SetCertificateIssued(v bool) *ModuleDocUpdateOne {
	_u.mutation.SetCertificateIssued(v)
	return _u
}

// SetNillableCertificateIssued sets the "certificate_issued" field if the given value is not nil.
func (_u *ModuleDocUpdateOne) SetNillableCertificateIssued(v *bool) *ModuleDocUpdateOne {
	if v != nil {
		_u.SetCertificateIssued(*v)
	}
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *ModuleDocUpdateOne) SetLastUpdated(v time.Time) *ModuleDocUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *ModuleDocUpdateOne) SetNillableLastUpdated(v *time.Time) *ModuleDocUpdateOne {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// Mutation returns the ModuleDocMutation object of the builder.
func (_u *ModuleDocUpdateOne) Mutation() *ModuleDocMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModuleDocUpdate builder.
func (_u *ModuleDocUpdateOne) Where(ps ...predicate.ModuleDoc) *ModuleDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModuleDocUpdateOne) Select(field string, fields ...string) *ModuleDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModuleDoc entity.
func (_u *ModuleDocUpdateOne) Save(ctx context.Context) (*ModuleDoc, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModuleDocUpdateOne) SaveX(ctx context.Context) *ModuleDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModuleDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModuleDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ModuleDocUpdateOne) sqlSave(ctx context.Context) (_node *ModuleDoc, err error) {
	_spec := sqlgraph.NewUpdateSpec(moduledoc.Table, moduledoc.Columns, sqlgraph.NewFieldSpec(moduledoc.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModuleDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, moduledoc.FieldID)
		for _, f := range fields {
			if !moduledoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != moduledoc.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(moduledoc.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(moduledoc.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resources(); ok {
		_spec.SetField(moduledoc.FieldResources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, moduledoc.FieldResources, value)
		})
	}
	if _u.mutation.ResourcesCleared() {
		_spec.ClearField(moduledoc.FieldResources, field.TypeJSON)
	}
	if value, ok := _u.mutation.TeacherPicks(); ok {
		_spec.SetField(moduledoc.FieldTeacherPicks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTeacherPicks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, moduledoc.FieldTeacherPicks, value)
		})
	}
	if _u.mutation.TeacherPicksCleared() {
		_spec.ClearField(moduledoc.FieldTeacherPicks, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssignmentContent(); ok {
		_spec.SetField(moduledoc.FieldAssignmentContent, field.TypeJSON, value)
	}
	if _u.mutation.AssignmentContentCleared() {
		_spec.ClearField(moduledoc.FieldAssignmentContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.Assignments(); ok {
		_spec.SetField(moduledoc.FieldAssignments, field.TypeJSON, value)
	}
	if _u.mutation.AssignmentsCleared() {
		_spec.ClearField(moduledoc.FieldAssignments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Quizzes(); ok {
		_spec.SetField(moduledoc.FieldQuizzes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuizzes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, moduledoc.FieldQuizzes, value)
		})
	}
	if _u.mutation.QuizzesCleared() {
		_spec.ClearField(moduledoc.FieldQuizzes, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalTestScore(); ok {
		_spec.SetField(moduledoc.FieldFinalTestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalTestScore(); ok {
		_spec.AddField(moduledoc.FieldFinalTestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CertificateIssued(); ok {
		_spec.SetField(moduledoc.FieldCertificateIssued, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(moduledoc.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &ModuleDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moduledoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

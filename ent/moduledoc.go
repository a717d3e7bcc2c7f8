// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathwise/ent/moduledoc"
	"github.com/abhisek/pathwise/internal/modules"
)

// ModuleDoc is the model entity for the ModuleDoc schema.
type ModuleDoc struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Application identifier the collection belongs to
	AppID string `json:"app_id,omitempty"`
	// Authenticated user owning this collection
	UserID string `json:"user_id,omitempty"`
	// Opaque stable module identifier, never reused
	ModuleID string `json:"module_id,omitempty"`
	// Learner-supplied topic string
	Name string `json:"name,omitempty"`
	// Progression status: started, resources_added, assignment_done, completed, needs_revisit
	Status string `json:"status,omitempty"`
	// Learner-added resource strings, ordered
	Resources []string `json:"resources,omitempty"`
	// Generated curated resource recommendations
	TeacherPicks []modules.TeacherPick `json:"teacher_picks,omitempty"`
	// Generated multi-section assignment, null until generated
	AssignmentContent *modules.AssignmentContent `json:"assignment_content,omitempty"`
	// Assignment completion flag and recorded responses
	Assignments modules.AssignmentState `json:"assignments,omitempty"`
	// Append-only quiz attempt history
	Quizzes []modules.QuizAttempt `json:"quizzes,omitempty"`
	// Latest final test score, overwritten per attempt
	FinalTestScore float64 `json:"final_test_score,omitempty"`
	// True iff the last final test met the certification threshold
	CertificateIssued bool `json:"certificate_issued,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Refreshed on every mutation
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModuleDoc) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case moduledoc.FieldResources, moduledoc.FieldTeacherPicks, moduledoc.FieldAssignmentContent, moduledoc.FieldAssignments, moduledoc.FieldQuizzes:
			values[i] = new([]byte)
		case moduledoc.FieldCertificateIssued:
			values[i] = new(sql.NullBool)
		case moduledoc.FieldFinalTestScore:
			values[i] = new(sql.NullFloat64)
		case moduledoc.FieldID:
			values[i] = new(sql.NullInt64)
		case moduledoc.FieldAppID, moduledoc.FieldUserID, moduledoc.FieldModuleID, moduledoc.FieldName, moduledoc.FieldStatus:
			values[i] = new(sql.NullString)
		case moduledoc.FieldCreatedAt, moduledoc.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModuleDoc fields.
func (_m *ModuleDoc) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case moduledoc.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case moduledoc.FieldAppID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field app_id", values[i])
			} else if value.Valid {
				_m.AppID = value.String
			}
		case moduledoc.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case moduledoc.FieldModuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_id", values[i])
			} else if value.Valid {
				_m.ModuleID = value.String
			}
		case moduledoc.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case moduledoc.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case moduledoc.FieldResources:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field resources", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Resources); err != nil {
					return fmt.Errorf("unmarshal field resources: %w", err)
				}
			}
		case moduledoc.FieldTeacherPicks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field teacher_picks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TeacherPicks); err != nil {
					return fmt.Errorf("unmarshal field teacher_picks: %w", err)
				}
			}
		case moduledoc.FieldAssignmentContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AssignmentContent); err != nil {
					return fmt.Errorf("unmarshal field assignment_content: %w", err)
				}
			}
		case moduledoc.FieldAssignments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assignments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Assignments); err != nil {
					return fmt.Errorf("unmarshal field assignments: %w", err)
				}
			}
		case moduledoc.FieldQuizzes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field quizzes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Quizzes); err != nil {
					return fmt.Errorf("unmarshal field quizzes: %w", err)
				}
			}
		case moduledoc.FieldFinalTestScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field final_test_score", values[i])
			} else if value.Valid {
				_m.FinalTestScore = value.Float64
			}
		case moduledoc.FieldCertificateIssued:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field certificate_issued", values[i])
			} else if value.Valid {
				_m.CertificateIssued = value.Bool
			}
		case moduledoc.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case moduledoc.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ModuleDoc.
// This includes values selected through modifiers, order, etc.
func (_m *ModuleDoc) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ModuleDoc.
// Note that you need to call ModuleDoc.Unwrap() before calling this method if this ModuleDoc
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModuleDoc) Update() *ModuleDocUpdateOne {
	return NewModuleDocClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModuleDoc entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModuleDoc) Unwrap() *ModuleDoc {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModuleDoc is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModuleDoc) String() string {
	var builder strings.Builder
	builder.WriteString("ModuleDoc(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("app_id=")
	builder.WriteString(_m.AppID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("module_id=")
	builder.WriteString(_m.ModuleID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("resources=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resources))
	builder.WriteString(", ")
	builder.WriteString("teacher_picks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TeacherPicks))
	builder.WriteString(", ")
	builder.WriteString("assignment_content=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignmentContent))
	builder.WriteString(", ")
	builder.WriteString("assignments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Assignments))
	builder.WriteString(", ")
	builder.WriteString("quizzes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quizzes))
	builder.WriteString(", ")
	builder.WriteString("final_test_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalTestScore))
	builder.WriteString(", ")
	builder.WriteString("certificate_issued=")
	builder.WriteString(fmt.Sprintf("%v", _m.CertificateIssued))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ModuleDocs is a parsable slice of ModuleDoc.
type ModuleDocs []*ModuleDoc

// Code generated by ent, DO NOT EDIT.

package moduledoc

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the moduledoc type in the database.
	Label = "module_doc"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAppID holds the string denoting the app_id field in the database.
	FieldAppID = "app_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldModuleID holds the string denoting the module_id field in the database.
	FieldModuleID = "module_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResources holds the string denoting the resources field in the database.
	FieldResources = "resources"
	// FieldTeacherPicks holds the string denoting the teacher_picks field in the database.
	FieldTeacherPicks = "teacher_picks"
	// FieldAssignmentContent holds the string denoting the assignment_content field in the database.
	FieldAssignmentContent = "assignment_content"
	// FieldAssignments holds the string denoting the assignments field in the database.
	FieldAssignments = "assignments"
	// FieldQuizzes holds the string denoting the quizzes field in the database.
	FieldQuizzes = "quizzes"
	// FieldFinalTestScore holds the string denoting the final_test_score field in the database.
	FieldFinalTestScore = "final_test_score"
	// FieldCertificateIssued holds the string denoting the certificate_issued field in the database.
	FieldCertificateIssued = "certificate_issued"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// Table holds the table name of the moduledoc in the database.
	Table = "module_docs"
)

// Columns holds all SQL columns for moduledoc fields.
var Columns = []string{
	FieldID,
	FieldAppID,
	FieldUserID,
	FieldModuleID,
	FieldName,
	FieldStatus,
	FieldResources,
	FieldTeacherPicks,
	FieldAssignmentContent,
	FieldAssignments,
	FieldQuizzes,
	FieldFinalTestScore,
	FieldCertificateIssued,
	FieldCreatedAt,
	FieldLastUpdated,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultFinalTestScore holds the default value on creation for the "final_test_score" field.
	DefaultFinalTestScore float64
	// DefaultCertificateIssued holds the default value on creation for the "certificate_issued" field.
	DefaultCertificateIssued bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
)

// OrderOption defines the ordering options for the ModuleDoc queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAppID orders the results by the app_id field.
func ByAppID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByModuleID orders the results by the module_id field.
func ByModuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFinalTestScore orders the results by the final_test_score field.
func ByFinalTestScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalTestScore, opts...).ToFunc()
}

// ByCertificateIssued orders the results by the certificate_issued field.
func ByCertificateIssued(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCertificateIssued, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}

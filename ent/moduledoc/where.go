// Code generated by ent, DO NOT EDIT.

package moduledoc

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLTE(FieldID, id))
}

// AppID applies equality check predicate on the "app_id" field. It's identical to AppIDEQ.
func AppID(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldAppID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldUserID, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldModuleID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldName, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldStatus, v))
}

// FinalTestScore applies equality check predicate on the "final_test_score" field. It's identical to FinalTestScoreEQ.
func FinalTestScore(v float64) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldFinalTestScore, v))
}

// CertificateIssued applies equality check predicate on the "certificate_issued" field. It's identical to CertificateIssuedEQ.
func CertificateIssued(v bool) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldCertificateIssued, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldCreatedAt, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldLastUpdated, v))
}

// AppIDEQ applies the EQ predicate on the "app_id" field.
func AppIDEQ(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldAppID, v))
}

// AppIDNEQ applies the NEQ predicate on the "app_id" field.
func AppIDNEQ(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNEQ(FieldAppID, v))
}

// AppIDIn applies the In predicate on the "app_id" field.
func AppIDIn(vs ...string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldIn(FieldAppID, vs...))
}

// AppIDNotIn applies the NotIn predicate on the "app_id" field.
func AppIDNotIn(vs ...string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNotIn(FieldAppID, vs...))
}

// AppIDGT applies the GT predicate on the "app_id" field.
func AppIDGT(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGT(FieldAppID, v))
}

// AppIDGTE applies the GTE predicate on the "app_id" field.
func AppIDGTE(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGTE(FieldAppID, v))
}

// AppIDLT applies the LT predicate on the "app_id" field.
func AppIDLT(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLT(FieldAppID, v))
}

// AppIDLTE applies the LTE predicate on the "app_id" field.
func AppIDLTE(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLTE(FieldAppID, v))
}

// AppIDContains applies the Contains predicate on the "app_id" field.
func AppIDContains(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldContains(FieldAppID, v))
}

// AppIDHasPrefix applies the HasPrefix predicate on the "app_id" field.
func AppIDHasPrefix(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldHasPrefix(FieldAppID, v))
}

// AppIDHasSuffix applies the HasSuffix predicate on the "app_id" field.
func AppIDHasSuffix(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldHasSuffix(FieldAppID, v))
}

// AppIDEqualFold applies the EqualFold predicate on the "app_id" field.
func AppIDEqualFold(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEqualFold(FieldAppID, v))
}

// AppIDContainsFold applies the ContainsFold predicate on the "app_id" field.
func AppIDContainsFold(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldContainsFold(FieldAppID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldContainsFold(FieldUserID, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldContainsFold(FieldModuleID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldContainsFold(FieldStatus, v))
}

// ResourcesIsNil applies the IsNil predicate on the "resources" field.
func ResourcesIsNil() predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldIsNull(FieldResources))
}

// ResourcesNotNil applies the NotNil predicate on the "resources" field.
func ResourcesNotNil() predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNotNull(FieldResources))
}

// TeacherPicksIsNil applies the IsNil predicate on the "teacher_picks" field.
func TeacherPicksIsNil() predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldIsNull(FieldTeacherPicks))
}

// TeacherPicksNotNil applies the NotNil predicate on the "teacher_picks" field.
func TeacherPicksNotNil() predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNotNull(FieldTeacherPicks))
}

// AssignmentContentIsNil applies the IsNil predicate on the "assignment_content" field.
func AssignmentContentIsNil() predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldIsNull(FieldAssignmentContent))
}

// AssignmentContentNotNil applies the NotNil predicate on the "assignment_content" field.
func AssignmentContentNotNil() predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNotNull(FieldAssignmentContent))
}

// AssignmentsIsNil applies the IsNil predicate on the "assignments" field.
func AssignmentsIsNil() predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldIsNull(FieldAssignments))
}

// AssignmentsNotNil applies the NotNil predicate on the "assignments" field.
func AssignmentsNotNil() predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNotNull(FieldAssignments))
}

// QuizzesIsNil applies the IsNil predicate on the "quizzes" field.
func QuizzesIsNil() predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldIsNull(FieldQuizzes))
}

// QuizzesNotNil applies the NotNil predicate on the "quizzes" field.
func QuizzesNotNil() predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNotNull(FieldQuizzes))
}

// FinalTestScoreEQ applies the EQ predicate on the "final_test_score" field.
func FinalTestScoreEQ(v float64) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldFinalTestScore, v))
}

// FinalTestScoreNEQ applies the NEQ predicate on the "final_test_score" field.
func FinalTestScoreNEQ(v float64) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNEQ(FieldFinalTestScore, v))
}

// FinalTestScoreIn applies the In predicate on the "final_test_score" field.
func FinalTestScoreIn(vs ...float64) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldIn(FieldFinalTestScore, vs...))
}

// FinalTestScoreNotIn applies the NotIn predicate on the "final_test_score" field.
func FinalTestScoreNotIn(vs ...float64) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNotIn(FieldFinalTestScore, vs...))
}

// FinalTestScoreGT applies the GT predicate on the "final_test_score" field.
func FinalTestScoreGT(v float64) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGT(FieldFinalTestScore, v))
}

// FinalTestScoreGTE applies the GTE predicate on the "final_test_score" field.
func FinalTestScoreGTE(v float64) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGTE(FieldFinalTestScore, v))
}

// FinalTestScoreLT applies the LT predicate on the "final_test_score" field.
func FinalTestScoreLT(v float64) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLT(FieldFinalTestScore, v))
}

// FinalTestScoreLTE applies the LTE predicate on the "final_test_score" field.
func FinalTestScoreLTE(v float64) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLTE(FieldFinalTestScore, v))
}

// CertificateIssuedEQ applies the EQ predicate on the "certificate_issued" field.
func CertificateIssuedEQ(v bool) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldCertificateIssued, v))
}

// CertificateIssuedNEQ applies the NEQ predicate on the "certificate_issued" field.
func CertificateIssuedNEQ(v bool) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNEQ(FieldCertificateIssued, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLTE(FieldCreatedAt, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModuleDoc) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModuleDoc) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModuleDoc) predicate.ModuleDoc {
	return predicate.ModuleDoc(sql.NotPredicates(p))
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/abhisek/pathwise/internal/modules"
)

// ModuleDoc is one study-module document in the per-user collection,
// mirroring the apps/{appId}/users/{userId}/modules/{moduleId} key space
// of the remote document store.
type ModuleDoc struct {
	ent.Schema
}

func (ModuleDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("app_id").
			Immutable().
			Comment("Application identifier the collection belongs to"),
		field.String("user_id").
			Immutable().
			Comment("Authenticated user owning this collection"),
		field.String("module_id").
			Immutable().
			Comment("Opaque stable module identifier, never reused"),
		field.String("name").
			Comment("Learner-supplied topic string"),
		field.String("status").
			Default(string(modules.StatusStarted)).
			Comment("Progression status: started, resources_added, assignment_done, completed, needs_revisit"),
		field.JSON("resources", []string{}).
			Optional().
			Comment("Learner-added resource strings, ordered"),
		field.JSON("teacher_picks", []modules.TeacherPick{}).
			Optional().
			Comment("Generated curated resource recommendations"),
		field.JSON("assignment_content", &modules.AssignmentContent{}).
			Optional().
			Comment("Generated multi-section assignment, null until generated"),
		field.JSON("assignments", modules.AssignmentState{}).
			Optional().
			Comment("Assignment completion flag and recorded responses"),
		field.JSON("quizzes", []modules.QuizAttempt{}).
			Optional().
			Comment("Append-only quiz attempt history"),
		field.Float("final_test_score").
			Default(0).
			Comment("Latest final test score, overwritten per attempt"),
		field.Bool("certificate_issued").
			Default(false).
			Comment("True iff the last final test met the certification threshold"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_updated").
			Default(time.Now).
			Comment("Refreshed on every mutation"),
	}
}

func (ModuleDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("app_id", "user_id", "module_id").Unique(),
		index.Fields("user_id", "created_at"),
	}
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// ModuleDocsColumns holds the columns for the "module_docs" table.
	ModuleDocsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "app_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "started"},
		{Name: "resources", Type: field.TypeJSON, Nullable: true},
		{Name: "teacher_picks", Type: field.TypeJSON, Nullable: true},
		{Name: "assignment_content", Type: field.TypeJSON, Nullable: true},
		{Name: "assignments", Type: field.TypeJSON, Nullable: true},
		{Name: "quizzes", Type: field.TypeJSON, Nullable: true},
		{Name: "final_test_score", Type: field.TypeFloat64, Default: 0},
		{Name: "certificate_issued", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// ModuleDocsTable holds the schema information for the "module_docs" table.
	ModuleDocsTable = &schema.Table{
		Name:       "module_docs",
		Columns:    ModuleDocsColumns,
		PrimaryKey: []*schema.Column{ModuleDocsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "moduledoc_app_id_user_id_module_id",
				Unique:  true,
				Columns: []*schema.Column{ModuleDocsColumns[1], ModuleDocsColumns[2], ModuleDocsColumns[3]},
			},
			{
				Name:    "moduledoc_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ModuleDocsColumns[2], ModuleDocsColumns[13]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		ModuleDocsTable,
	}
)

func init() {
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/pathwise/ent/llmrequestevent"
	"github.com/abhisek/pathwise/ent/moduledoc"
	"github.com/abhisek/pathwise/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	moduledocFields := schema.ModuleDoc{}.Fields()
	_ = moduledocFields
	// moduledocDescStatus is the schema descriptor for status field.
	moduledocDescStatus := moduledocFields[4].Descriptor()
	// moduledoc.DefaultStatus holds the default value on creation for the status field.
	moduledoc.DefaultStatus = moduledocDescStatus.Default.(string)
	// moduledocDescFinalTestScore is the schema descriptor for final_test_score field.
	moduledocDescFinalTestScore := moduledocFields[10].Descriptor()
	// moduledoc.DefaultFinalTestScore holds the default value on creation for the final_test_score field.
	moduledoc.DefaultFinalTestScore = moduledocDescFinalTestScore.Default.(float64)
	// moduledocDescCertificateIssued is the schema descriptor for certificate_issued field.
	moduledocDescCertificateIssued := moduledocFields[11].Descriptor()
	// moduledoc.DefaultCertificateIssued holds the default value on creation for the certificate_issued field.
	moduledoc.DefaultCertificateIssued = moduledocDescCertificateIssued.Default.(bool)
	// moduledocDescCreatedAt is the schema descriptor for created_at field.
	moduledocDescCreatedAt := moduledocFields[12].Descriptor()
	// moduledoc.DefaultCreatedAt holds the default value on creation for the created_at field.
	moduledoc.DefaultCreatedAt = moduledocDescCreatedAt.Default.(func() time.Time)
	// moduledocDescLastUpdated is the schema descriptor for last_updated field.
	moduledocDescLastUpdated := moduledocFields[13].Descriptor()
	// moduledoc.DefaultLastUpdated holds the default value on creation for the last_updated field.
	moduledoc.DefaultLastUpdated = moduledocDescLastUpdated.Default.(func() time.Time)
}

package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/modules"
)

func questionSetJSON() json.RawMessage {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < QuestionCount; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"question":"q%d","options":{"A":"a","B":"b","C":"c","D":"d"},"correctAnswer":"A"}`, i)
	}
	b.WriteString("]")
	return json.RawMessage(b.String())
}

func testModule() *modules.Module {
	return &modules.Module{
		ID:        "m1",
		Name:      "Kubernetes",
		Resources: []string{"my notes"},
		TeacherPicks: []modules.TeacherPick{
			{Title: "Official docs", URL: "https://kubernetes.io/docs/"},
		},
	}
}

func TestGenerateQuestions(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: questionSetJSON()},
	)
	svc := NewService(mock, DefaultConfig(), nil)

	qs, err := svc.GenerateQuestions(context.Background(), testModule(), VariantQuiz)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != QuestionCount {
		t.Fatalf("expected %d questions, got %d", QuestionCount, len(qs))
	}
	if qs[0].CorrectAnswer != "A" {
		t.Fatalf("correctAnswer = %q, want A", qs[0].CorrectAnswer)
	}

	// The prompt must carry the module's study materials.
	sent := mock.Calls[0].Messages[0].Content
	if !strings.Contains(sent, "my notes") || !strings.Contains(sent, "Official docs") {
		t.Fatalf("prompt missing study materials: %s", sent)
	}
}

func TestGenerateQuestions_VariantFraming(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: questionSetJSON()},
		llm.MockResponse{Content: questionSetJSON()},
	)
	svc := NewService(mock, DefaultConfig(), nil)
	ctx := context.Background()

	if _, err := svc.GenerateQuestions(ctx, testModule(), VariantQuiz); err != nil {
		t.Fatalf("quiz: %v", err)
	}
	if _, err := svc.GenerateQuestions(ctx, testModule(), VariantFinalTest); err != nil {
		t.Fatalf("final test: %v", err)
	}

	quizMsg := mock.Calls[0].Messages[0].Content
	finalMsg := mock.Calls[1].Messages[0].Content
	if quizMsg == finalMsg {
		t.Fatal("variants must change the prompt framing")
	}
	// Both requests use the same response schema.
	if mock.Calls[0].Schema != mock.Calls[1].Schema {
		t.Fatal("variants must share one response schema")
	}
}

func TestGenerateQuestions_NilProvider(t *testing.T) {
	svc := NewService(nil, DefaultConfig(), nil)
	_, err := svc.GenerateQuestions(context.Background(), testModule(), VariantQuiz)
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestGenerateQuestions_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := NewService(mock, DefaultConfig(), nil)

	qs, err := svc.GenerateQuestions(context.Background(), testModule(), VariantQuiz)
	if err == nil {
		t.Fatal("expected error")
	}
	if qs != nil {
		t.Fatal("no questions may be returned on failure")
	}
}

func TestGenerateQuestions_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"not":"an array"}`)},
	)
	svc := NewService(mock, DefaultConfig(), nil)

	qs, err := svc.GenerateQuestions(context.Background(), testModule(), VariantQuiz)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if qs != nil {
		t.Fatal("no questions may be returned on parse failure")
	}
}

func TestGenerateQuestions_EmptySet(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`[]`)},
	)
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.GenerateQuestions(context.Background(), testModule(), VariantQuiz)
	if err == nil {
		t.Fatal("expected error for empty question set")
	}
}

func TestBuildMaterials_Fallback(t *testing.T) {
	m := &modules.Module{ID: "m1", Name: "Kubernetes"}
	got := buildMaterials(m)
	if got == "" {
		t.Fatal("materials must never be empty")
	}
	if strings.Contains(got, "- ") {
		t.Fatalf("expected generic framing without list items, got %q", got)
	}
}

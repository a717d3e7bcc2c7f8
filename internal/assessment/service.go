package assessment

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/modules"
)

// Config holds question generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for question generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.4,
	}
}

// Service generates question sets through the schema-constrained
// generation pipeline.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// NewService creates an assessment generation service.
func NewService(provider llm.Provider, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, log: log}
}

// GenerateQuestions produces the question set for a quiz or final test.
//
// There is no object-shaped fallback for question sets: a malformed or
// empty response yields zero questions and an error the caller surfaces
// as a non-fatal notice. The learner cannot submit until a generation
// succeeds and must retry explicitly.
func (s *Service) GenerateQuestions(ctx context.Context, m *modules.Module, v Variant) ([]Question, error) {
	if s.provider == nil {
		return nil, llm.ErrNotConfigured
	}

	purpose := "quiz"
	if v == VariantFinalTest {
		purpose = "final-test"
	}
	ctx = llm.WithPurpose(ctx, purpose)

	req := llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionUserMessage(m, v)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		s.log.Warn("question generation failed",
			zap.String("module", m.ID),
			zap.String("variant", string(v)),
			zap.Error(err))
		return nil, fmt.Errorf("generate %s questions: %w", v, err)
	}

	var out []Question
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse question set: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("generate %s questions: empty question set", v)
	}

	return out, nil
}

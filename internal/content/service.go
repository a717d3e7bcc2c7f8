package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/modules"
)

// Syncer persists partial module updates. The store's document repo
// satisfies it; tests substitute an in-memory fake.
type Syncer interface {
	MergeUpdate(ctx context.Context, moduleID string, p modules.Patch) error
}

// Config holds content generation settings.
type Config struct {
	PicksMaxTokens      int
	AssignmentMaxTokens int
	Temperature         float64
}

// DefaultConfig returns sensible defaults for content generation.
func DefaultConfig() Config {
	return Config{
		PicksMaxTokens:      1024,
		AssignmentMaxTokens: 4096,
		Temperature:         0.7,
	}
}

// Result reports what a generation run produced. Notices carry
// user-facing messages for the parts that fell back or failed; a
// non-empty Notices with a nil error means the module is still usable.
type Result struct {
	Picks      []modules.TeacherPick
	Assignment *modules.AssignmentContent
	Notices    []string
}

// Service generates module content: the curated resource list and the
// structured assignment. The two are produced by independent requests
// and each is persisted as soon as it is available, so a slow or failed
// assignment never delays the resource list.
type Service struct {
	provider llm.Provider
	syncer   Syncer
	cfg      Config
	log      *zap.Logger
	inflight *inflight
}

// NewService creates a content generation service.
func NewService(provider llm.Provider, syncer Syncer, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		provider: provider,
		syncer:   syncer,
		cfg:      cfg,
		log:      log,
		inflight: newInflight(),
	}
}

// Generate produces and persists teacher picks and the assignment for a
// module. Re-invocation for a module that already has content overwrites
// it; concurrent invocation for the same module returns
// ErrGenerationInFlight.
//
// A missing provider is the one fatal condition. After that, each of the
// two requests degrades independently: unusable output substitutes the
// deterministic fallback with a notice, while transport failures are
// reported verbatim with nothing persisted for that part.
func (s *Service) Generate(ctx context.Context, m *modules.Module) (*Result, error) {
	if s.provider == nil {
		return nil, llm.ErrNotConfigured
	}
	if !s.inflight.tryAcquire(m.ID) {
		return nil, ErrGenerationInFlight
	}
	defer s.inflight.release(m.ID)

	res := &Result{}
	var mu sync.Mutex
	var persistErrs []error

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		picks, notice := s.generatePicks(ctx, m)
		mu.Lock()
		defer mu.Unlock()
		if notice != "" {
			res.Notices = append(res.Notices, notice)
		}
		if picks == nil {
			return
		}
		res.Picks = picks
		err := s.syncer.MergeUpdate(ctx, m.ID, modules.Patch{TeacherPicks: modules.PicksPtr(picks)})
		if err != nil {
			persistErrs = append(persistErrs, fmt.Errorf("save teacher picks: %w", err))
		}
	}()

	go func() {
		defer wg.Done()
		assignment, notice := s.generateAssignment(ctx, m)
		mu.Lock()
		defer mu.Unlock()
		if notice != "" {
			res.Notices = append(res.Notices, notice)
		}
		if assignment == nil {
			return
		}
		res.Assignment = assignment
		err := s.syncer.MergeUpdate(ctx, m.ID, modules.Patch{AssignmentContent: assignment})
		if err != nil {
			persistErrs = append(persistErrs, fmt.Errorf("save assignment: %w", err))
		}
	}()

	wg.Wait()

	if len(persistErrs) > 0 {
		return res, errors.Join(persistErrs...)
	}
	return res, nil
}

// generatePicks returns the resource list to persist, or nil when the
// request failed in a way that has no fallback. The notice, when set, is
// shown to the learner.
func (s *Service) generatePicks(ctx context.Context, m *modules.Module) ([]modules.TeacherPick, string) {
	ctx = llm.WithPurpose(ctx, "teacher-picks")

	req := llm.Request{
		System: picksSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPicksUserMessage(m)},
		},
		Schema:      TeacherPicksSchema,
		MaxTokens:   s.cfg.PicksMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return s.recoverPicks(m, err)
	}

	var picks []modules.TeacherPick
	if jerr := json.Unmarshal(resp.Content, &picks); jerr != nil || len(picks) == 0 {
		return s.recoverPicks(m, &llm.ErrInvalidResponse{Content: resp.Content, Err: jerr})
	}
	return picks, ""
}

func (s *Service) recoverPicks(m *modules.Module, err error) ([]modules.TeacherPick, string) {
	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		s.log.Warn("teacher picks generation produced unusable output, using fallback",
			zap.String("module", m.ID), zap.Error(err))
		return FallbackPicks(m.Name), "Couldn't generate tailored resource picks; showing a generic list instead."
	}
	s.log.Warn("teacher picks generation failed",
		zap.String("module", m.ID), zap.Error(err))
	return nil, fmt.Sprintf("Resource picks unavailable: %v", err)
}

func (s *Service) generateAssignment(ctx context.Context, m *modules.Module) (*modules.AssignmentContent, string) {
	ctx = llm.WithPurpose(ctx, "assignment")

	req := llm.Request{
		System: assignmentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAssignmentUserMessage(m)},
		},
		Schema:      AssignmentSchema,
		MaxTokens:   s.cfg.AssignmentMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return s.recoverAssignment(m, err)
	}

	var ac modules.AssignmentContent
	if jerr := json.Unmarshal(resp.Content, &ac); jerr != nil || len(ac.Sections) == 0 {
		return s.recoverAssignment(m, &llm.ErrInvalidResponse{Content: resp.Content, Err: jerr})
	}
	return &ac, ""
}

func (s *Service) recoverAssignment(m *modules.Module, err error) (*modules.AssignmentContent, string) {
	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		s.log.Warn("assignment generation produced unusable output, using fallback",
			zap.String("module", m.ID), zap.Error(err))
		return FallbackAssignment(m.Name), "Couldn't generate a tailored assignment; a standard practice assignment was created instead."
	}
	s.log.Warn("assignment generation failed",
		zap.String("module", m.ID), zap.Error(err))
	return nil, fmt.Sprintf("Assignment unavailable: %v", err)
}

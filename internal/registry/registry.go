// Package registry composes the module collection: creation, listing,
// watching, and opening modules for study.
package registry

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/content"
	"github.com/abhisek/pathwise/internal/modules"
	"github.com/abhisek/pathwise/internal/phase"
	"github.com/abhisek/pathwise/internal/store"
)

// Service is the registry over one user's module collection.
type Service struct {
	docs       store.DocRepo
	content    *content.Service
	assessment *assessment.Service
	log        *zap.Logger
}

// NewService creates a registry over a user's document collection.
func NewService(docs store.DocRepo, c *content.Service, a *assessment.Service, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{docs: docs, content: c, assessment: a, log: log}
}

// CreateModule creates a new module in the started state and persists
// its document.
func (s *Service) CreateModule(ctx context.Context, name string) (*modules.Module, error) {
	now := time.Now().UTC()
	m := &modules.Module{
		ID:          uuid.NewString(),
		Name:        name,
		Status:      modules.StatusStarted,
		CreatedAt:   now,
		LastUpdated: now,
	}
	if err := s.docs.Create(ctx, m); err != nil {
		return nil, err
	}

	s.log.Info("module created", zap.String("module", m.ID), zap.String("name", name))
	return m, nil
}

// Get reads one module document.
func (s *Service) Get(ctx context.Context, moduleID string) (*modules.Module, error) {
	return s.docs.GetOnce(ctx, moduleID)
}

// List reads the current collection snapshot, newest first.
func (s *Service) List(ctx context.Context) ([]*modules.Module, error) {
	sub := s.docs.Subscribe(store.SubscriptionCap)
	defer sub.Unsubscribe()

	select {
	case snap, ok := <-sub.C:
		if !ok {
			return nil, fmt.Errorf("list modules: store closed")
		}
		SortModules(snap)
		return snap, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Watch streams collection snapshots, re-sorted newest first, until
// stop is called. Snapshot arrival order from the store is not
// meaningful, so every snapshot is re-sorted before delivery.
func (s *Service) Watch(limit int) (<-chan []*modules.Module, func()) {
	sub := s.docs.Subscribe(limit)
	out := make(chan []*modules.Module, 1)

	go func() {
		defer close(out)
		for snap := range sub.C {
			SortModules(snap)
			out <- snap
		}
	}()

	return out, sub.Unsubscribe
}

// SortModules orders a snapshot newest first by creation time, with the
// id as a tie-breaker for a stable display order.
func SortModules(ms []*modules.Module) {
	sort.Slice(ms, func(i, j int) bool {
		if !ms[i].CreatedAt.Equal(ms[j].CreatedAt) {
			return ms[i].CreatedAt.After(ms[j].CreatedAt)
		}
		return ms[i].ID < ms[j].ID
	})
}

// AddResource appends a study resource to a module. The first resource
// moves a freshly started module to the resources_added status.
func (s *Service) AddResource(ctx context.Context, moduleID, resource string) (*modules.Module, error) {
	m, err := s.docs.GetOnce(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	m.Resources = append(m.Resources, resource)
	p := modules.Patch{Resources: modules.StringsPtr(m.Resources)}
	if m.Status == modules.StatusStarted {
		m.Status = modules.StatusResourcesAdded
		p.Status = modules.StatusPtr(modules.StatusResourcesAdded)
	}

	if err := s.docs.MergeUpdate(ctx, moduleID, p); err != nil {
		return nil, err
	}
	return m, nil
}

// Open selects a module for study, returning the phase machine bound to
// it. The second return reports whether study content still needs to be
// generated before the learner can progress.
func (s *Service) Open(ctx context.Context, moduleID string) (*phase.Machine, bool, error) {
	m, err := s.docs.GetOnce(ctx, moduleID)
	if err != nil {
		return nil, false, err
	}

	machine := phase.NewMachine(m, s.docs)
	return machine, machine.NeedsGeneration(), nil
}

// GenerateContent runs content generation for a module and folds the
// persisted results back into the in-memory copy.
func (s *Service) GenerateContent(ctx context.Context, m *modules.Module) (*content.Result, error) {
	res, err := s.content.Generate(ctx, m)
	if err != nil {
		return res, err
	}

	if len(res.Picks) > 0 {
		m.TeacherPicks = res.Picks
	}
	if res.Assignment != nil {
		m.AssignmentContent = res.Assignment
	}
	return res, nil
}

// GenerateQuestions produces a question set for the module's quiz or
// final test.
func (s *Service) GenerateQuestions(ctx context.Context, m *modules.Module, v assessment.Variant) ([]assessment.Question, error) {
	return s.assessment.GenerateQuestions(ctx, m, v)
}

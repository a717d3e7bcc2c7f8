package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/pathwise/ent"
	"github.com/abhisek/pathwise/ent/moduledoc"
	"github.com/abhisek/pathwise/internal/modules"
)

// ErrNotFound is returned by GetOnce for an unknown module id.
var ErrNotFound = errors.New("module document not found")

// DocRepo is the synchronization contract with the document store: one
// document per module in a per-user collection.
//
// Mutations are merge-oriented: MergeUpdate touches only the fields set
// on the patch. Callers update their in-memory state optimistically;
// there is no read-after-write guarantee, and a failed write is not
// rolled back locally.
type DocRepo interface {
	// Create writes a full module document.
	Create(ctx context.Context, m *modules.Module) error

	// MergeUpdate applies a field-level partial update to one document,
	// leaving unspecified fields untouched. LastUpdated is always
	// refreshed.
	MergeUpdate(ctx context.Context, moduleID string, p modules.Patch) error

	// GetOnce reads a single document.
	GetOnce(ctx context.Context, moduleID string) (*modules.Module, error)

	// Subscribe streams full snapshots of the collection, capped at
	// limit documents (at most SubscriptionCap), on every change. The
	// store does not guarantee snapshot ordering; consumers re-sort.
	// The handle must be released via Unsubscribe when no longer needed.
	Subscribe(limit int) *Subscription
}

type docRepo struct {
	store  *Store
	appID  string
	userID string
}

func (r *docRepo) Create(ctx context.Context, m *modules.Module) error {
	create := r.store.client.ModuleDoc.Create().
		SetAppID(r.appID).
		SetUserID(r.userID).
		SetModuleID(m.ID).
		SetName(m.Name).
		SetStatus(string(m.Status)).
		SetResources(m.Resources).
		SetTeacherPicks(m.TeacherPicks).
		SetAssignments(m.Assignments).
		SetQuizzes(m.Quizzes).
		SetFinalTestScore(m.FinalTestScore).
		SetCertificateIssued(m.CertificateIssued).
		SetCreatedAt(m.CreatedAt).
		SetLastUpdated(m.LastUpdated)

	if m.AssignmentContent != nil {
		create.SetAssignmentContent(m.AssignmentContent)
	}

	_, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("create module document: %w", err)
	}

	r.store.notifier.changed(r.store, r.appID, r.userID)
	return nil
}

func (r *docRepo) MergeUpdate(ctx context.Context, moduleID string, p modules.Patch) error {
	upd := r.store.client.ModuleDoc.Update().
		Where(
			moduledoc.AppID(r.appID),
			moduledoc.UserID(r.userID),
			moduledoc.ModuleID(moduleID),
		).
		SetLastUpdated(time.Now().UTC())

	if p.Name != nil {
		upd.SetName(*p.Name)
	}
	if p.Status != nil {
		upd.SetStatus(string(*p.Status))
	}
	if p.Resources != nil {
		upd.SetResources(*p.Resources)
	}
	if p.TeacherPicks != nil {
		upd.SetTeacherPicks(*p.TeacherPicks)
	}
	if p.AssignmentContent != nil {
		upd.SetAssignmentContent(p.AssignmentContent)
	}
	if p.Assignments != nil {
		upd.SetAssignments(*p.Assignments)
	}
	if p.Quizzes != nil {
		upd.SetQuizzes(*p.Quizzes)
	}
	if p.FinalTestScore != nil {
		upd.SetFinalTestScore(*p.FinalTestScore)
	}
	if p.CertificateIssued != nil {
		upd.SetCertificateIssued(*p.CertificateIssued)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("merge module document %s: %w", moduleID, err)
	}
	if n == 0 {
		return fmt.Errorf("merge module document %s: %w", moduleID, ErrNotFound)
	}

	r.store.notifier.changed(r.store, r.appID, r.userID)
	return nil
}

func (r *docRepo) GetOnce(ctx context.Context, moduleID string) (*modules.Module, error) {
	doc, err := r.store.client.ModuleDoc.Query().
		Where(
			moduledoc.AppID(r.appID),
			moduledoc.UserID(r.userID),
			moduledoc.ModuleID(moduleID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get module document %s: %w", moduleID, err)
	}
	return docToModule(doc), nil
}

func (r *docRepo) Subscribe(limit int) *Subscription {
	if limit <= 0 || limit > SubscriptionCap {
		limit = SubscriptionCap
	}
	sub := r.store.notifier.subscribe(r.appID, r.userID, limit)

	// Push the initial snapshot so subscribers don't wait for the
	// first remote change.
	r.store.notifier.changed(r.store, r.appID, r.userID)
	return sub
}

// snapshot queries the current collection contents up to limit. The
// result is ordered by last write, which is deliberately NOT the
// ordering consumers want; re-sorting by createdAt is their concern.
func (r *docRepo) snapshot(ctx context.Context, limit int) ([]*modules.Module, error) {
	docs, err := r.store.client.ModuleDoc.Query().
		Where(
			moduledoc.AppID(r.appID),
			moduledoc.UserID(r.userID),
		).
		Order(ent.Desc(moduledoc.FieldLastUpdated)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot module collection: %w", err)
	}

	out := make([]*modules.Module, len(docs))
	for i, d := range docs {
		out[i] = docToModule(d)
	}
	return out, nil
}

func docToModule(d *ent.ModuleDoc) *modules.Module {
	return &modules.Module{
		ID:                d.ModuleID,
		Name:              d.Name,
		Status:            modules.Status(d.Status),
		Resources:         d.Resources,
		TeacherPicks:      d.TeacherPicks,
		AssignmentContent: d.AssignmentContent,
		Assignments:       d.Assignments,
		Quizzes:           d.Quizzes,
		FinalTestScore:    d.FinalTestScore,
		CertificateIssued: d.CertificateIssued,
		CreatedAt:         d.CreatedAt,
		LastUpdated:       d.LastUpdated,
	}
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/content"
	"github.com/abhisek/pathwise/internal/identity"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/logging"
	"github.com/abhisek/pathwise/internal/registry"
	"github.com/abhisek/pathwise/internal/store"
)

// defaultAppID scopes document paths so several applications can share
// one store.
const defaultAppID = "pathwise"

// env wires the store, identity, and services for one command
// invocation.
type env struct {
	store *store.Store
	docs  store.DocRepo
	reg   *registry.Service
	log   *zap.Logger
	user  *identity.User
}

func (e *env) close() {
	_ = e.log.Sync()
	_ = e.store.Close()
}

// openEnv opens the store, resolves the session identity, and builds
// the service graph. A missing generation credential is not fatal here:
// commands that need generation surface it when they run.
func openEnv(cmd *cobra.Command) (*env, error) {
	ctx := cmd.Context()

	log, err := logging.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	user, err := resolveIdentity(ctx, filepath.Dir(dbPath))
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	appID := os.Getenv("PATHWISE_APP_ID")
	if appID == "" {
		appID = defaultAppID
	}
	docs := st.Docs(appID, user.UID)

	var provider llm.Provider
	provider, err = llm.NewProviderFromEnv(ctx, st.EventRepo(), log)
	if err != nil {
		log.Warn("generation service not configured", zap.Error(err))
		provider = nil
	}

	contentSvc := content.NewService(provider, docs, content.DefaultConfig(), log)
	assessSvc := assessment.NewService(provider, assessment.DefaultConfig(), log)
	reg := registry.NewService(docs, contentSvc, assessSvc, log)

	return &env{store: st, docs: docs, reg: reg, log: log, user: user}, nil
}

// resolveIdentity restores the persisted identity, minting an anonymous
// one on first run. PATHWISE_AUTH_TOKEN binds the session to a named
// user instead.
func resolveIdentity(ctx context.Context, dataDir string) (*identity.User, error) {
	provider, err := identity.NewLocalProvider(dataDir, os.Getenv("PATHWISE_AUTH_SECRET"))
	if err != nil {
		return nil, fmt.Errorf("open identity: %w", err)
	}
	defer provider.Close()

	// The first state reflects the restored identity; nothing may touch
	// user documents before it arrives.
	state := <-provider.States()

	if token := os.Getenv("PATHWISE_AUTH_TOKEN"); token != "" {
		u, err := provider.SignInWithToken(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("token sign-in: %w", err)
		}
		return u, nil
	}

	if state.User != nil {
		return state.User, nil
	}
	u, err := provider.SignInAnonymously(ctx)
	if err != nil {
		return nil, fmt.Errorf("anonymous sign-in: %w", err)
	}
	return u, nil
}

// runApp starts the interactive study session. With a module id it opens
// that module directly; otherwise it starts at module selection.
func runApp(cmd *cobra.Command, moduleID string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	s := newSession(e.reg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err := s.run(cmd.Context(), moduleID); err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return nil
		}
		return err
	}
	return nil
}

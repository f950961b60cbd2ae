package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
	"github.com/mrraghuvarun/talent/internal/domain/authz"
	"github.com/mrraghuvarun/talent/internal/domain/model"
	apperrors "github.com/mrraghuvarun/talent/internal/errors"
	"github.com/mrraghuvarun/talent/internal/ports"
)

var (
	// ErrSuperseded is returned by Refresh when a newer refresh was issued while
	// this one was in flight; its response was discarded.
	ErrSuperseded = errors.New("refresh superseded by a newer request")
	// ErrStoreClosed is returned when a response arrives after Close.
	ErrStoreClosed = errors.New("candidate store closed")
)

// StoreMetrics receives store-level outcomes. Optional.
type StoreMetrics interface {
	ObserveRefresh(outcome string, size int)
	ObserveMutation(op, outcome string)
}

// CandidateStoreOptions groups dependencies for CandidateStore.
type CandidateStoreOptions struct {
	API     ports.CandidateAPI // Required
	Logger  *slog.Logger       // Optional
	Metrics StoreMetrics       // Optional
}

// CandidateStore holds the candidate list for one session and reconciles it
// with the remote API, which stays the only source of truth.
// It is safe for concurrent use.
type CandidateStore struct {
	api     ports.CandidateAPI
	logger  *slog.Logger
	metrics StoreMetrics

	seq atomic.Uint64

	mu     sync.RWMutex
	list   []model.CandidateSummary
	err    error
	loaded bool
	closed bool
}

// NewCandidateStore constructs a new CandidateStore.
func NewCandidateStore(opts CandidateStoreOptions) *CandidateStore {
	if opts.API == nil {
		panic("CandidateAPI is required")
	}
	return &CandidateStore{
		api:     opts.API,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
}

// Refresh fetches the full collection. A response is applied only if no newer
// refresh was issued in the meantime; success swaps the list and clears the
// error, failure keeps the previous list and records a FetchFailure.
func (s *CandidateStore) Refresh(ctx context.Context) error {
	seq := s.seq.Add(1)

	list, err := s.api.ListCandidates(ctx)
	if err == nil {
		err = checkUniqueIDs(list)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	if seq != s.seq.Load() {
		s.observeRefresh("superseded", len(s.list))
		if s.logger != nil {
			s.logger.Debug("discarding superseded candidate refresh", "seq", seq)
		}
		return ErrSuperseded
	}

	if err != nil {
		fetchErr := apperrors.FetchFailure("list_candidates", err)
		s.err = fetchErr
		s.observeRefresh("failure", len(s.list))
		if s.logger != nil {
			s.logger.Warn("candidate refresh failed; keeping previous list",
				"error", err, "kept", len(s.list))
		}
		return fetchErr
	}

	s.list = append([]model.CandidateSummary(nil), list...)
	s.err = nil
	s.loaded = true
	s.observeRefresh("success", len(list))
	if s.logger != nil {
		s.logger.Debug("candidate list refreshed", "count", len(list), "seq", seq)
	}
	return nil
}

func checkUniqueIDs(list []model.CandidateSummary) error {
	seen := make(map[model.CandidateID]struct{}, len(list))
	for _, c := range list {
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("duplicate candidate id %q in response", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

// Snapshot returns a copy of the raw list as last fetched.
func (s *CandidateStore) Snapshot() []model.CandidateSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.CandidateSummary(nil), s.list...)
}

// Err returns the error recorded by the last applied refresh, if any.
func (s *CandidateStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loaded reports whether at least one refresh has succeeded.
func (s *CandidateStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Close detaches the store; responses that arrive afterwards are discarded.
func (s *CandidateStore) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// VisibleFor projects the current snapshot for viewerRole.
func (s *CandidateStore) VisibleFor(viewerRole domainauth.Role) []model.CandidateSummary {
	return VisibleFor(viewerRole, s.Snapshot())
}

// View returns the visible, ordered and searched rows for viewer.
func (s *CandidateStore) View(viewer domainauth.ViewerContext, query string) []CandidateRow {
	return BuildView(viewer, s.Snapshot(), query)
}

// Find returns the candidate with id from the current snapshot.
func (s *CandidateStore) Find(id model.CandidateID) (model.CandidateSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.list {
		if c.ID == id {
			return c, true
		}
	}
	return model.CandidateSummary{}, false
}

// Authorize checks that viewer may perform action on the candidate id as it
// appears in the current snapshot.
func (s *CandidateStore) Authorize(viewer domainauth.ViewerContext, id model.CandidateID, action authz.Action) error {
	c, ok := s.Find(id)
	if !ok {
		return apperrors.NotFoundf("candidate %s not found", id)
	}
	if !authz.ActionsFor(viewer.Role, c.Role).Allows(action) {
		return apperrors.Unauthorized(fmt.Sprintf("%s may not %s candidate %s (%s)", viewer.Role, action, id, c.Role))
	}
	return nil
}

// Promote makes the candidate a power user, then re-fetches.
func (s *CandidateStore) Promote(ctx context.Context, id model.CandidateID) error {
	return s.changeRole(ctx, "promote", id, domainauth.RolePowerUser)
}

// Demote makes the candidate a plain user, then re-fetches.
func (s *CandidateStore) Demote(ctx context.Context, id model.CandidateID) error {
	return s.changeRole(ctx, "demote", id, domainauth.RoleUser)
}

// changeRole leaves local state untouched when the API call fails. When the
// call succeeds but the follow-up refresh fails, the stale list stays in place
// and the FetchFailure is returned.
func (s *CandidateStore) changeRole(ctx context.Context, op string, id model.CandidateID, role domainauth.Role) error {
	if id == "" {
		return apperrors.ValidationField("id", "candidate id is required")
	}
	if err := (model.RoleChangeRequest{Role: role}).Validate(); err != nil {
		return fmt.Errorf("%s %s: %w", op, id, err)
	}

	if err := s.api.UpdateRole(ctx, id, role); err != nil {
		s.observeMutation(op, "failure")
		return fmt.Errorf("%s %s: %w", op, id, apperrors.MutationFailure("update_role", err))
	}
	s.observeMutation(op, "success")
	if s.logger != nil {
		s.logger.Info("candidate role changed", "id", id, "role", role)
	}

	if err := s.Refresh(ctx); err != nil {
		if errors.Is(err, ErrSuperseded) {
			return nil
		}
		return fmt.Errorf("%s %s: reconcile: %w", op, id, err)
	}
	return nil
}

// Invite asks the API to send an onboarding link. The list is not touched:
// the invited candidate is not fetchable until they accept.
func (s *CandidateStore) Invite(ctx context.Context, email string) error {
	req := model.InviteRequest{Email: email}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invite: %w", err)
	}
	if err := s.api.SendMagicLink(ctx, req.Email); err != nil {
		s.observeMutation("invite", "failure")
		return fmt.Errorf("invite %s: %w", req.Email, apperrors.MutationFailure("send_magic_link", err))
	}
	s.observeMutation("invite", "success")
	if s.logger != nil {
		s.logger.Info("magic link sent", "email", req.Email)
	}
	return nil
}

// dropLocal removes a confirmed delete from the list. It advances the refresh
// sequence so a refresh issued before the delete cannot restore the row.
func (s *CandidateStore) dropLocal(id model.CandidateID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq.Add(1)
	out := s.list[:0:0]
	for _, c := range s.list {
		if c.ID != id {
			out = append(out, c)
		}
	}
	s.list = out
}

func (s *CandidateStore) observeRefresh(outcome string, size int) {
	if s.metrics != nil {
		s.metrics.ObserveRefresh(outcome, size)
	}
}

func (s *CandidateStore) observeMutation(op, outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveMutation(op, outcome)
	}
}

package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ganot/statuswatch/internal/domain/change"
	"github.com/ganot/statuswatch/internal/domain/status"
	"github.com/ganot/statuswatch/internal/repository"
)

const defaultHistoryLimit = 10

// Service orchestrates extraction, snapshot persistence, and change
// detection. It owns one observation end-to-end; the save-then-diff sequence
// is not atomic, so callers that can observe the same project concurrently
// must serialize those calls per project.
type Service struct {
	extractor *status.Extractor
	analyzer  *change.Analyzer
	snapshots SnapshotRepository
	logger    *slog.Logger
}

// NewService creates a new monitor service.
func NewService(snapshots SnapshotRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		extractor: status.NewExtractor(),
		analyzer:  change.NewAnalyzer(),
		snapshots: snapshots,
		logger:    logger,
	}
}

// ObserveRequest carries one raw document into the engine. SourceID is an
// opaque provenance identifier stored verbatim; ProjectNameHint overrides
// name extraction when set.
type ObserveRequest struct {
	RawText         string
	SourceID        string
	ProjectNameHint string
}

// Observe extracts a status record from the raw document and appends it to
// the project's history. Extraction cannot fail; storage errors propagate
// unmodified because a silently lost observation would leave gaps the caller
// believes do not exist.
func (s *Service) Observe(ctx context.Context, req ObserveRequest) (*status.StatusRecord, error) {
	rec := s.extractor.Extract(req.RawText, req.SourceID, req.ProjectNameHint)

	if err := s.snapshots.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}

	s.logger.Info("observed project status",
		"project", rec.ProjectName,
		"status", rec.OverallStatus,
		"risks", len(rec.Risks))

	return rec, nil
}

// ObserveAndDiff extracts a status record, compares it against the latest
// prior snapshot, and appends it to the history. The current observation is
// always persisted, so the first observation of a project establishes its
// baseline with an empty change list.
func (s *Service) ObserveAndDiff(ctx context.Context, req ObserveRequest) (*status.StatusRecord, []change.Change, error) {
	current := s.extractor.Extract(req.RawText, req.SourceID, req.ProjectNameHint)

	previous, err := s.snapshots.GetLatest(ctx, current.ProjectName)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, nil, fmt.Errorf("loading previous snapshot: %w", err)
	}

	if err := s.snapshots.Save(ctx, current); err != nil {
		return nil, nil, fmt.Errorf("saving snapshot: %w", err)
	}

	var changes []change.Change
	if previous != nil {
		changes = s.analyzer.Diff(previous, current)
	}

	s.logger.Info("observed project status",
		"project", current.ProjectName,
		"status", current.OverallStatus,
		"changes", len(changes))

	return current, changes, nil
}

// Latest returns the newest snapshot for a project.
func (s *Service) Latest(ctx context.Context, projectName string) (*status.StatusRecord, error) {
	rec, err := s.snapshots.GetLatest(ctx, projectName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoHistory
		}
		return nil, fmt.Errorf("loading latest snapshot: %w", err)
	}
	return rec, nil
}

// History returns up to limit snapshots for a project, newest first. A
// project with no history yields an empty result, not an error.
func (s *Service) History(ctx context.Context, projectName string, limit int) ([]status.StatusRecord, error) {
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	history, err := s.snapshots.GetHistory(ctx, projectName, limit)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return history, nil
}

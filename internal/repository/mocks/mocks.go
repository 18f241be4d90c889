package mocks

import (
	"context"

	"github.com/ganot/statuswatch/internal/domain/status"
	"github.com/stretchr/testify/mock"
)

// SnapshotRepository is a mock for repository.SnapshotRepository.
type SnapshotRepository struct {
	mock.Mock
}

func (m *SnapshotRepository) Save(ctx context.Context, rec *status.StatusRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *SnapshotRepository) GetLatest(ctx context.Context, projectName string) (*status.StatusRecord, error) {
	args := m.Called(ctx, projectName)
	if rec, ok := args.Get(0).(*status.StatusRecord); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SnapshotRepository) GetHistory(ctx context.Context, projectName string, limit int) ([]status.StatusRecord, error) {
	args := m.Called(ctx, projectName, limit)
	if recs, ok := args.Get(0).([]status.StatusRecord); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

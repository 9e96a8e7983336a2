package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"osuapi/internal/service"
	"osuapi/pkg/osuapi"
)

type MockLookupService struct {
	mock.Mock
}

func (m *MockLookupService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLookupService) User(ctx context.Context, user, mode string, eventDays int) (*osuapi.User, error) {
	args := m.Called(ctx, user, mode, eventDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*osuapi.User), args.Error(1)
}

func (m *MockLookupService) UserBest(ctx context.Context, user, mode string, limit int) ([]osuapi.UserScore, error) {
	args := m.Called(ctx, user, mode, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]osuapi.UserScore), args.Error(1)
}

func (m *MockLookupService) UserRecent(ctx context.Context, user, mode string, limit int) ([]osuapi.UserScore, error) {
	args := m.Called(ctx, user, mode, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]osuapi.UserScore), args.Error(1)
}

func (m *MockLookupService) Beatmap(ctx context.Context, id int64, mode string) (*osuapi.Beatmap, error) {
	args := m.Called(ctx, id, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*osuapi.Beatmap), args.Error(1)
}

func (m *MockLookupService) Beatmaps(ctx context.Context, f service.BeatmapFilter) ([]osuapi.Beatmap, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]osuapi.Beatmap), args.Error(1)
}

func (m *MockLookupService) BeatmapScores(ctx context.Context, id int64, f service.ScoreFilter) ([]osuapi.BeatmapScore, error) {
	args := m.Called(ctx, id, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]osuapi.BeatmapScore), args.Error(1)
}

func (m *MockLookupService) Match(ctx context.Context, id int64) (*osuapi.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*osuapi.Match), args.Error(1)
}

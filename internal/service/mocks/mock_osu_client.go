package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"osuapi/pkg/osuapi"
)

type MockOsuClient struct {
	mock.Mock
}

func (m *MockOsuClient) GetUser(ctx context.Context, q osuapi.UserQuery) ([]osuapi.User, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]osuapi.User), args.Error(1)
}

func (m *MockOsuClient) GetUserBest(ctx context.Context, q osuapi.UserScoresQuery) ([]osuapi.UserScore, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]osuapi.UserScore), args.Error(1)
}

func (m *MockOsuClient) GetUserRecent(ctx context.Context, q osuapi.UserScoresQuery) ([]osuapi.UserScore, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]osuapi.UserScore), args.Error(1)
}

func (m *MockOsuClient) GetScores(ctx context.Context, q osuapi.ScoresQuery) ([]osuapi.BeatmapScore, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]osuapi.BeatmapScore), args.Error(1)
}

func (m *MockOsuClient) GetBeatmaps(ctx context.Context, q osuapi.BeatmapsQuery) ([]osuapi.Beatmap, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]osuapi.Beatmap), args.Error(1)
}

func (m *MockOsuClient) GetMatch(ctx context.Context, matchID int64) (*osuapi.Match, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*osuapi.Match), args.Error(1)
}

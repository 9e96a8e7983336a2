package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"osuapi/internal/service"
	"osuapi/internal/service/mocks"
	"osuapi/pkg/osuapi"
)

func TestParseUser(t *testing.T) {
	ref, err := service.ParseUser("124493")
	require.NoError(t, err)
	assert.Equal(t, osuapi.UserID(124493), ref)

	ref, err = service.ParseUser("khazhyk")
	require.NoError(t, err)
	assert.Equal(t, osuapi.UserName("khazhyk"), ref)

	for _, bad := range []string{"", "  ", "0", "-5"} {
		_, err := service.ParseUser(bad)
		assert.ErrorIs(t, err, service.ErrInvalidUser, bad)
	}
}

func TestLookupService_User(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		user       string
		mode       string
		eventDays  int
		setupMocks func(m *mocks.MockOsuClient)
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "by id",
			user: "124493",
			mode: "taiko",
			setupMocks: func(m *mocks.MockOsuClient) {
				m.On("GetUser", ctx, osuapi.UserQuery{User: osuapi.UserID(124493), Mode: osuapi.Taiko.Filter()}).
					Return([]osuapi.User{{ID: 124493, Username: "Cookiezi"}}, nil)
			},
		},
		{
			name:      "by name with events",
			user:      "khazhyk",
			eventDays: 7,
			setupMocks: func(m *mocks.MockOsuClient) {
				m.On("GetUser", ctx, osuapi.UserQuery{User: osuapi.UserName("khazhyk"), EventDays: 7}).
					Return([]osuapi.User{{ID: 1, Username: "khazhyk"}}, nil)
			},
		},
		{
			name:      "out of range event days are dropped",
			user:      "1",
			eventDays: 90,
			setupMocks: func(m *mocks.MockOsuClient) {
				m.On("GetUser", ctx, osuapi.UserQuery{User: osuapi.UserID(1)}).
					Return([]osuapi.User{{ID: 1}}, nil)
			},
		},
		{
			name: "unknown user",
			user: "nobody",
			setupMocks: func(m *mocks.MockOsuClient) {
				m.On("GetUser", ctx, mock.Anything).Return([]osuapi.User{}, nil)
			},
			wantErr: service.ErrNotFound,
		},
		{
			name:       "invalid mode",
			user:       "1",
			mode:       "drums",
			setupMocks: func(m *mocks.MockOsuClient) {},
			wantErr:    service.ErrInvalidMode,
		},
		{
			name:       "invalid user",
			user:       "",
			setupMocks: func(m *mocks.MockOsuClient) {},
			wantErr:    service.ErrInvalidUser,
		},
		{
			name: "upstream error is wrapped",
			user: "1",
			setupMocks: func(m *mocks.MockOsuClient) {
				m.On("GetUser", ctx, mock.Anything).Return(nil, &osuapi.StatusError{StatusCode: 401, Status: "401 Unauthorized"})
			},
			wantErrMsg: "get user 1: osuapi: 401 Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(mocks.MockOsuClient)
			tt.setupMocks(m)
			svc := service.NewLookupService(m)

			u, err := svc.User(ctx, tt.user, tt.mode, tt.eventDays)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.EqualError(t, err, tt.wantErrMsg)
				var se *osuapi.StatusError
				assert.ErrorAs(t, err, &se)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, u)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestLookupService_UserScores(t *testing.T) {
	ctx := context.Background()

	t.Run("best", func(t *testing.T) {
		m := new(mocks.MockOsuClient)
		m.On("GetUserBest", ctx, osuapi.UserScoresQuery{User: osuapi.UserName("khazhyk"), Mode: osuapi.Mania.Filter(), Limit: 5}).
			Return([]osuapi.UserScore{{BeatmapID: 1}}, nil)

		scores, err := service.NewLookupService(m).UserBest(ctx, "khazhyk", "3", 5)
		require.NoError(t, err)
		assert.Len(t, scores, 1)
		m.AssertExpectations(t)
	})

	t.Run("recent limit bound", func(t *testing.T) {
		m := new(mocks.MockOsuClient)
		_, err := service.NewLookupService(m).UserRecent(ctx, "1", "", service.MaxUserRecentLimit+1)
		assert.ErrorIs(t, err, service.ErrInvalidLimit)
		m.AssertNotCalled(t, "GetUserRecent", mock.Anything, mock.Anything)
	})

	t.Run("recent", func(t *testing.T) {
		m := new(mocks.MockOsuClient)
		m.On("GetUserRecent", ctx, osuapi.UserScoresQuery{User: osuapi.UserID(39828), Limit: 1}).
			Return([]osuapi.UserScore{}, nil)

		scores, err := service.NewLookupService(m).UserRecent(ctx, "39828", "", 1)
		require.NoError(t, err)
		assert.Empty(t, scores)
		m.AssertExpectations(t)
	})
}

func TestLookupService_Beatmaps(t *testing.T) {
	ctx := context.Background()

	t.Run("single beatmap with mode includes converts", func(t *testing.T) {
		m := new(mocks.MockOsuClient)
		m.On("GetBeatmaps", ctx, osuapi.BeatmapsQuery{BeatmapID: 129891, Mode: osuapi.Taiko.Filter(), IncludeConverted: true}).
			Return([]osuapi.Beatmap{{BeatmapID: 129891, Mode: osuapi.Taiko}}, nil)

		b, err := service.NewLookupService(m).Beatmap(ctx, 129891, "taiko")
		require.NoError(t, err)
		assert.Equal(t, osuapi.Taiko, b.Mode)
		m.AssertExpectations(t)
	})

	t.Run("unknown beatmap", func(t *testing.T) {
		m := new(mocks.MockOsuClient)
		m.On("GetBeatmaps", ctx, osuapi.BeatmapsQuery{BeatmapID: 1}).Return([]osuapi.Beatmap{}, nil)

		_, err := service.NewLookupService(m).Beatmap(ctx, 1, "")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("search", func(t *testing.T) {
		m := new(mocks.MockOsuClient)
		m.On("GetBeatmaps", ctx, osuapi.BeatmapsQuery{
			BeatmapSetID: 39804,
			User:         osuapi.UserName("Nakagawa-Kanon"),
			Mode:         osuapi.Standard.Filter(),
			Limit:        20,
		}).Return([]osuapi.Beatmap{{BeatmapID: 129891}}, nil)

		maps, err := service.NewLookupService(m).Beatmaps(ctx, service.BeatmapFilter{
			SetID: 39804,
			User:  "Nakagawa-Kanon",
			Mode:  "osu",
			Limit: 20,
		})
		require.NoError(t, err)
		assert.Len(t, maps, 1)
		m.AssertExpectations(t)
	})

	t.Run("search limit bound", func(t *testing.T) {
		_, err := service.NewLookupService(new(mocks.MockOsuClient)).Beatmaps(ctx, service.BeatmapFilter{Limit: -1})
		assert.ErrorIs(t, err, service.ErrInvalidLimit)
	})
}

func TestLookupService_BeatmapScores(t *testing.T) {
	ctx := context.Background()
	hddt := osuapi.Hidden | osuapi.DoubleTime
	nomod := osuapi.NoMod

	tests := []struct {
		name    string
		filter  service.ScoreFilter
		want    osuapi.ScoresQuery
		wantErr error
	}{
		{
			name:   "short mod names",
			filter: service.ScoreFilter{Mods: "HDDT", Limit: 10},
			want:   osuapi.ScoresQuery{BeatmapID: 774965, Mods: &hddt, Limit: 10},
		},
		{
			name:   "numeric mods",
			filter: service.ScoreFilter{Mods: "72", User: "124493"},
			want:   osuapi.ScoresQuery{BeatmapID: 774965, Mods: &hddt, User: osuapi.UserID(124493)},
		},
		{
			name:   "no mod",
			filter: service.ScoreFilter{Mods: "NM"},
			want:   osuapi.ScoresQuery{BeatmapID: 774965, Mods: &nomod},
		},
		{
			name:    "invalid mods",
			filter:  service.ScoreFilter{Mods: "XX"},
			wantErr: service.ErrInvalidMods,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(mocks.MockOsuClient)
			if tt.wantErr == nil {
				m.On("GetScores", ctx, tt.want).Return([]osuapi.BeatmapScore{{ScoreID: 1}}, nil)
			}

			scores, err := service.NewLookupService(m).BeatmapScores(ctx, 774965, tt.filter)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Len(t, scores, 1)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestLookupService_Match(t *testing.T) {
	ctx := context.Background()

	m := new(mocks.MockOsuClient)
	m.On("GetMatch", ctx, int64(71641)).Return(&osuapi.Match{Info: osuapi.MatchInfo{MatchID: 71641}}, nil)
	m.On("GetMatch", ctx, int64(1)).Return(nil, osuapi.ErrNoMatch)
	m.On("GetMatch", ctx, int64(2)).Return(nil, errors.New("connection reset"))
	svc := service.NewLookupService(m)

	match, err := svc.Match(ctx, 71641)
	require.NoError(t, err)
	assert.Equal(t, int64(71641), match.Info.MatchID)

	_, err = svc.Match(ctx, 1)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Match(ctx, 2)
	assert.EqualError(t, err, "get match 2: connection reset")
}

func TestLookupService_Ping(t *testing.T) {
	ctx := context.Background()

	m := new(mocks.MockOsuClient)
	m.On("GetBeatmaps", ctx, osuapi.BeatmapsQuery{Limit: 1}).Return([]osuapi.Beatmap{}, nil).Once()
	m.On("GetBeatmaps", ctx, osuapi.BeatmapsQuery{Limit: 1}).Return(nil, &osuapi.APIError{Message: "invalid key"}).Once()
	svc := service.NewLookupService(m)

	assert.NoError(t, svc.Ping(ctx))
	err := svc.Ping(ctx)
	var ae *osuapi.APIError
	assert.ErrorAs(t, err, &ae)
}

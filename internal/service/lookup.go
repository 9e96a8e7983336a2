package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"osuapi/pkg/osuapi"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidUser  = errors.New("invalid user")
	ErrInvalidMode  = errors.New("invalid mode")
	ErrInvalidMods  = errors.New("invalid mods")
	ErrInvalidLimit = errors.New("invalid limit")
)

// Upper bounds of the limit parameter accepted by the osu! API.
const (
	MaxUserBestLimit   = 100
	MaxUserRecentLimit = 50
	MaxScoresLimit     = 100
	MaxBeatmapsLimit   = 500
)

// OsuClient is the part of *osuapi.Client the gateway depends on.
type OsuClient interface {
	GetUser(ctx context.Context, q osuapi.UserQuery) ([]osuapi.User, error)
	GetUserBest(ctx context.Context, q osuapi.UserScoresQuery) ([]osuapi.UserScore, error)
	GetUserRecent(ctx context.Context, q osuapi.UserScoresQuery) ([]osuapi.UserScore, error)
	GetScores(ctx context.Context, q osuapi.ScoresQuery) ([]osuapi.BeatmapScore, error)
	GetBeatmaps(ctx context.Context, q osuapi.BeatmapsQuery) ([]osuapi.Beatmap, error)
	GetMatch(ctx context.Context, matchID int64) (*osuapi.Match, error)
}

// BeatmapFilter are the optional filters of a beatmap search.
type BeatmapFilter struct {
	Since     time.Time
	SetID     int64
	User      string
	Mode      string
	Converted bool
	Hash      string
	Limit     int
}

// ScoreFilter are the optional filters of a beatmap leaderboard.
type ScoreFilter struct {
	User  string
	Mode  string
	Mods  string
	Limit int
}

// LookupService turns gateway requests into osu! API calls.
// User, mode and mods arrive as the raw strings of the HTTP request.
type LookupService interface {
	// Ping checks that the upstream API answers with the configured key.
	Ping(ctx context.Context) error

	User(ctx context.Context, user, mode string, eventDays int) (*osuapi.User, error)
	UserBest(ctx context.Context, user, mode string, limit int) ([]osuapi.UserScore, error)
	UserRecent(ctx context.Context, user, mode string, limit int) ([]osuapi.UserScore, error)

	Beatmap(ctx context.Context, id int64, mode string) (*osuapi.Beatmap, error)
	Beatmaps(ctx context.Context, f BeatmapFilter) ([]osuapi.Beatmap, error)
	BeatmapScores(ctx context.Context, id int64, f ScoreFilter) ([]osuapi.BeatmapScore, error)

	Match(ctx context.Context, id int64) (*osuapi.Match, error)
}

type lookupService struct {
	client OsuClient
}

// NewLookupService constructs a new LookupService.
func NewLookupService(client OsuClient) LookupService {
	return &lookupService{client: client}
}

// ParseUser reads a path segment as a user id when it is all digits, and as
// a user name otherwise.
func ParseUser(s string) (osuapi.UserRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return osuapi.UserRef{}, ErrInvalidUser
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		if id <= 0 {
			return osuapi.UserRef{}, ErrInvalidUser
		}
		return osuapi.UserID(id), nil
	}
	return osuapi.UserName(s), nil
}

func parseOptionalUser(s string) (osuapi.UserRef, error) {
	if s == "" {
		return osuapi.UserRef{}, nil
	}
	return ParseUser(s)
}

func parseMode(s string) (*osuapi.Mode, error) {
	if s == "" {
		return nil, nil
	}
	m, err := osuapi.ParseMode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return &m, nil
}

func parseMods(s string) (*osuapi.Mods, error) {
	if s == "" {
		return nil, nil
	}
	var m osuapi.Mods
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		m = osuapi.Mods(n)
	} else if m, err = osuapi.ParseMods(s); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMods, s)
	}
	return &m, nil
}

func checkLimit(limit, max int) error {
	if limit < 0 || limit > max {
		return fmt.Errorf("%w: must be between 1 and %d", ErrInvalidLimit, max)
	}
	return nil
}

func (s *lookupService) Ping(ctx context.Context) error {
	if _, err := s.client.GetBeatmaps(ctx, osuapi.BeatmapsQuery{Limit: 1}); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

func (s *lookupService) User(ctx context.Context, user, mode string, eventDays int) (*osuapi.User, error) {
	ref, err := ParseUser(user)
	if err != nil {
		return nil, err
	}
	m, err := parseMode(mode)
	if err != nil {
		return nil, err
	}
	if eventDays < 0 || eventDays > 31 {
		eventDays = 0
	}

	users, err := s.client.GetUser(ctx, osuapi.UserQuery{User: ref, Mode: m, EventDays: eventDays})
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", ref, err)
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return &users[0], nil
}

func (s *lookupService) userScoresQuery(user, mode string, limit, max int) (osuapi.UserScoresQuery, error) {
	ref, err := ParseUser(user)
	if err != nil {
		return osuapi.UserScoresQuery{}, err
	}
	m, err := parseMode(mode)
	if err != nil {
		return osuapi.UserScoresQuery{}, err
	}
	if err := checkLimit(limit, max); err != nil {
		return osuapi.UserScoresQuery{}, err
	}
	return osuapi.UserScoresQuery{User: ref, Mode: m, Limit: limit}, nil
}

func (s *lookupService) UserBest(ctx context.Context, user, mode string, limit int) ([]osuapi.UserScore, error) {
	q, err := s.userScoresQuery(user, mode, limit, MaxUserBestLimit)
	if err != nil {
		return nil, err
	}
	scores, err := s.client.GetUserBest(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("get user best %s: %w", q.User, err)
	}
	return scores, nil
}

func (s *lookupService) UserRecent(ctx context.Context, user, mode string, limit int) ([]osuapi.UserScore, error) {
	q, err := s.userScoresQuery(user, mode, limit, MaxUserRecentLimit)
	if err != nil {
		return nil, err
	}
	scores, err := s.client.GetUserRecent(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("get user recent %s: %w", q.User, err)
	}
	return scores, nil
}

func (s *lookupService) Beatmap(ctx context.Context, id int64, mode string) (*osuapi.Beatmap, error) {
	m, err := parseMode(mode)
	if err != nil {
		return nil, err
	}
	q := osuapi.BeatmapsQuery{BeatmapID: id, Mode: m, IncludeConverted: m != nil}
	maps, err := s.client.GetBeatmaps(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("get beatmap %d: %w", id, err)
	}
	if len(maps) == 0 {
		return nil, ErrNotFound
	}
	return &maps[0], nil
}

func (s *lookupService) Beatmaps(ctx context.Context, f BeatmapFilter) ([]osuapi.Beatmap, error) {
	ref, err := parseOptionalUser(f.User)
	if err != nil {
		return nil, err
	}
	m, err := parseMode(f.Mode)
	if err != nil {
		return nil, err
	}
	if err := checkLimit(f.Limit, MaxBeatmapsLimit); err != nil {
		return nil, err
	}

	maps, err := s.client.GetBeatmaps(ctx, osuapi.BeatmapsQuery{
		Since:            f.Since,
		BeatmapSetID:     f.SetID,
		User:             ref,
		Mode:             m,
		IncludeConverted: f.Converted,
		Hash:             f.Hash,
		Limit:            f.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("get beatmaps: %w", err)
	}
	return maps, nil
}

func (s *lookupService) BeatmapScores(ctx context.Context, id int64, f ScoreFilter) ([]osuapi.BeatmapScore, error) {
	ref, err := parseOptionalUser(f.User)
	if err != nil {
		return nil, err
	}
	m, err := parseMode(f.Mode)
	if err != nil {
		return nil, err
	}
	mods, err := parseMods(f.Mods)
	if err != nil {
		return nil, err
	}
	if err := checkLimit(f.Limit, MaxScoresLimit); err != nil {
		return nil, err
	}

	scores, err := s.client.GetScores(ctx, osuapi.ScoresQuery{BeatmapID: id, User: ref, Mode: m, Mods: mods, Limit: f.Limit})
	if err != nil {
		return nil, fmt.Errorf("get scores %d: %w", id, err)
	}
	return scores, nil
}

func (s *lookupService) Match(ctx context.Context, id int64) (*osuapi.Match, error) {
	match, err := s.client.GetMatch(ctx, id)
	if err != nil {
		if errors.Is(err, osuapi.ErrNoMatch) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get match %d: %w", id, err)
	}
	return match, nil
}

package osuapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Client issues typed requests against the v1 API through a Connector.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	key  string
	conn Connector
}

// New creates a Client. The connector decides whether requests block
// (SyncConnector) or run concurrently (ConcurrentConnector).
func New(key string, conn Connector) (*Client, error) {
	if key == "" {
		return nil, ErrMissingKey
	}
	if conn == nil {
		return nil, ErrNilConnector
	}
	return &Client{key: key, conn: conn}, nil
}

// Close closes the connector.
func (c *Client) Close() error {
	return c.conn.Close()
}

type request struct {
	path   string
	params url.Values
	err    error
}

type encoder interface {
	encode(url.Values) error
}

func (c *Client) request(path string, q encoder) request {
	v := url.Values{}
	v.Set("k", c.key)
	if err := q.encode(v); err != nil {
		return request{path: path, err: err}
	}
	return request{path: path, params: v}
}

// GetUser returns the user matching q. An unknown user yields an empty slice.
func (c *Client) GetUser(ctx context.Context, q UserQuery) ([]User, error) {
	return fetch(ctx, c, c.request(EndpointUser, q), decodeList[User])
}

// GetUserAsync is GetUser without blocking the caller.
func (c *Client) GetUserAsync(ctx context.Context, q UserQuery) *Future[[]User] {
	return dispatch(ctx, c, c.request(EndpointUser, q), decodeList[User])
}

// GetUserBest returns the user's top scores.
func (c *Client) GetUserBest(ctx context.Context, q UserScoresQuery) ([]UserScore, error) {
	return fetch(ctx, c, c.request(EndpointUserBest, q), decodeList[UserScore])
}

// GetUserBestAsync is GetUserBest without blocking the caller.
func (c *Client) GetUserBestAsync(ctx context.Context, q UserScoresQuery) *Future[[]UserScore] {
	return dispatch(ctx, c, c.request(EndpointUserBest, q), decodeList[UserScore])
}

// GetUserRecent returns the user's plays from the last 24 hours.
func (c *Client) GetUserRecent(ctx context.Context, q UserScoresQuery) ([]UserScore, error) {
	return fetch(ctx, c, c.request(EndpointUserRecent, q), decodeList[UserScore])
}

// GetUserRecentAsync is GetUserRecent without blocking the caller.
func (c *Client) GetUserRecentAsync(ctx context.Context, q UserScoresQuery) *Future[[]UserScore] {
	return dispatch(ctx, c, c.request(EndpointUserRecent, q), decodeList[UserScore])
}

// GetScores returns the leaderboard scores of a beatmap.
func (c *Client) GetScores(ctx context.Context, q ScoresQuery) ([]BeatmapScore, error) {
	return fetch(ctx, c, c.request(EndpointScores, q), decodeList[BeatmapScore])
}

// GetScoresAsync is GetScores without blocking the caller.
func (c *Client) GetScoresAsync(ctx context.Context, q ScoresQuery) *Future[[]BeatmapScore] {
	return dispatch(ctx, c, c.request(EndpointScores, q), decodeList[BeatmapScore])
}

// GetBeatmaps returns the beatmaps matching q.
func (c *Client) GetBeatmaps(ctx context.Context, q BeatmapsQuery) ([]Beatmap, error) {
	return fetch(ctx, c, c.request(EndpointBeatmaps, q), decodeList[Beatmap])
}

// GetBeatmapsAsync is GetBeatmaps without blocking the caller.
func (c *Client) GetBeatmapsAsync(ctx context.Context, q BeatmapsQuery) *Future[[]Beatmap] {
	return dispatch(ctx, c, c.request(EndpointBeatmaps, q), decodeList[Beatmap])
}

type matchQuery int64

func (q matchQuery) encode(v url.Values) error {
	if q <= 0 {
		return fmt.Errorf("%w: match id is required", ErrInvalidQuery)
	}
	v.Set("mp", strconv.FormatInt(int64(q), 10))
	return nil
}

// GetMatch returns a multiplayer match, or ErrNoMatch.
func (c *Client) GetMatch(ctx context.Context, matchID int64) (*Match, error) {
	return fetch(ctx, c, c.request(EndpointMatch, matchQuery(matchID)), decodeMatch)
}

// GetMatchAsync is GetMatch without blocking the caller.
func (c *Client) GetMatchAsync(ctx context.Context, matchID int64) *Future[*Match] {
	return dispatch(ctx, c, c.request(EndpointMatch, matchQuery(matchID)), decodeMatch)
}

type decodeFunc[T any] func(path string, body json.RawMessage) (T, error)

func decodeList[T any](path string, body json.RawMessage) ([]T, error) {
	out := []T{}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &DecodeError{Endpoint: path, Err: err}
	}
	return out, nil
}

func decodeMatch(path string, body json.RawMessage) (*Match, error) {
	var raw struct {
		Match json.RawMessage `json:"match"`
		Games []MatchGame     `json:"games"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &DecodeError{Endpoint: path, Err: err}
	}
	// An unknown id is answered with {"match": 0, "games": []}.
	if m := bytes.Trim(raw.Match, `"`); len(m) == 0 || string(m) == "0" || string(m) == "null" {
		return nil, ErrNoMatch
	}
	out := &Match{Games: raw.Games}
	if err := json.Unmarshal(raw.Match, &out.Info); err != nil {
		return nil, &DecodeError{Endpoint: path, Err: err}
	}
	if out.Games == nil {
		out.Games = []MatchGame{}
	}
	return out, nil
}

func fetch[T any](ctx context.Context, c *Client, r request, decode decodeFunc[T]) (T, error) {
	var zero T
	if r.err != nil {
		return zero, r.err
	}
	body, err := c.conn.Get(ctx, r.path, r.params)
	if err != nil {
		return zero, err
	}
	return decode(r.path, body)
}

func dispatch[T any](ctx context.Context, c *Client, r request, decode decodeFunc[T]) *Future[T] {
	f := newFuture[T]()
	if r.err != nil {
		f.resolve(*new(T), r.err)
		return f
	}

	var ch <-chan Response
	if ac, ok := c.conn.(AsyncConnector); ok {
		ch = ac.Go(ctx, r.path, r.params)
	} else {
		single := make(chan Response, 1)
		go func() {
			defer close(single)
			body, err := c.conn.Get(ctx, r.path, r.params)
			single <- Response{Body: body, Err: err}
		}()
		ch = single
	}

	go func() {
		resp, ok := <-ch
		switch {
		case !ok:
			f.resolve(*new(T), fmt.Errorf("osuapi: %s: connector closed the response channel", r.path))
		case resp.Err != nil:
			f.resolve(*new(T), resp.Err)
		default:
			f.resolve(decode(r.path, resp.Body))
		}
	}()
	return f
}

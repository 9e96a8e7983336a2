package osuapi

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// API endpoints, relative to the base URL.
const (
	EndpointUser       = "/api/get_user"
	EndpointUserBest   = "/api/get_user_best"
	EndpointUserRecent = "/api/get_user_recent"
	EndpointScores     = "/api/get_scores"
	EndpointBeatmaps   = "/api/get_beatmaps"
	EndpointMatch      = "/api/get_match"
)

// UserRef identifies a user either by numeric id or by name.
// The zero value refers to nobody and is omitted from requests.
type UserRef struct {
	id     int64
	name   string
	byName bool
	set    bool
}

// UserID refers to a user by id.
func UserID(id int64) UserRef {
	return UserRef{id: id, set: true}
}

// UserName refers to a user by name. Names made of digits are still sent
// as names.
func UserName(name string) UserRef {
	return UserRef{name: name, byName: true, set: true}
}

// IsZero reports whether u refers to nobody.
func (u UserRef) IsZero() bool {
	return !u.set
}

func (u UserRef) String() string {
	if u.byName {
		return u.name
	}
	return strconv.FormatInt(u.id, 10)
}

func (u UserRef) encode(v url.Values) {
	if !u.set {
		return
	}
	if u.byName {
		v.Set("u", u.name)
		v.Set("type", "string")
		return
	}
	v.Set("u", strconv.FormatInt(u.id, 10))
	v.Set("type", "id")
}

// UserQuery are the parameters of get_user.
type UserQuery struct {
	User UserRef
	Mode *Mode
	// EventDays is the max age in days of the returned events (1-31).
	EventDays int
}

// UserScoresQuery are the parameters of get_user_best and get_user_recent.
type UserScoresQuery struct {
	User  UserRef
	Mode  *Mode
	Limit int
}

// ScoresQuery are the parameters of get_scores.
type ScoresQuery struct {
	BeatmapID int64
	User      UserRef
	Mode      *Mode
	Mods      *Mods
	Limit     int
}

// BeatmapsQuery are the parameters of get_beatmaps. Every field is optional.
type BeatmapsQuery struct {
	// Since returns beatmaps ranked or loved after this instant.
	Since        time.Time
	BeatmapSetID int64
	BeatmapID    int64
	User         UserRef
	Mode         *Mode
	// IncludeConverted includes converts when Mode is not Standard.
	IncludeConverted bool
	Hash             string
	Limit            int
}

func encodeMode(v url.Values, m *Mode) {
	if m != nil {
		v.Set("m", strconv.Itoa(int(*m)))
	}
}

func encodeLimit(v url.Values, limit int) {
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
}

func (q UserQuery) encode(v url.Values) error {
	if q.User.IsZero() {
		return fmt.Errorf("%w: user is required", ErrInvalidQuery)
	}
	q.User.encode(v)
	encodeMode(v, q.Mode)
	if q.EventDays > 0 {
		v.Set("event_days", strconv.Itoa(q.EventDays))
	}
	return nil
}

func (q UserScoresQuery) encode(v url.Values) error {
	if q.User.IsZero() {
		return fmt.Errorf("%w: user is required", ErrInvalidQuery)
	}
	q.User.encode(v)
	encodeMode(v, q.Mode)
	encodeLimit(v, q.Limit)
	return nil
}

func (q ScoresQuery) encode(v url.Values) error {
	if q.BeatmapID <= 0 {
		return fmt.Errorf("%w: beatmap id is required", ErrInvalidQuery)
	}
	v.Set("b", strconv.FormatInt(q.BeatmapID, 10))
	q.User.encode(v)
	encodeMode(v, q.Mode)
	if q.Mods != nil {
		v.Set("mods", strconv.FormatUint(uint64(*q.Mods), 10))
	}
	encodeLimit(v, q.Limit)
	return nil
}

func (q BeatmapsQuery) encode(v url.Values) error {
	if !q.Since.IsZero() {
		v.Set("since", q.Since.UTC().Format(TimeLayout))
	}
	if q.BeatmapSetID > 0 {
		v.Set("s", strconv.FormatInt(q.BeatmapSetID, 10))
	}
	if q.BeatmapID > 0 {
		v.Set("b", strconv.FormatInt(q.BeatmapID, 10))
	}
	q.User.encode(v)
	encodeMode(v, q.Mode)
	if q.IncludeConverted {
		v.Set("a", "1")
	}
	if q.Hash != "" {
		v.Set("h", q.Hash)
	}
	encodeLimit(v, q.Limit)
	return nil
}

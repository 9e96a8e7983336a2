package osuapi

import (
	"strconv"
	"strings"
)

// User is one element of a get_user response.
type User struct {
	ID                 int64       `json:"user_id,string"`
	Username           string      `json:"username"`
	JoinDate           Time        `json:"join_date"`
	Count300           int64       `json:"count300,string"`
	Count100           int64       `json:"count100,string"`
	Count50            int64       `json:"count50,string"`
	PlayCount          int64       `json:"playcount,string"`
	RankedScore        int64       `json:"ranked_score,string"`
	TotalScore         int64       `json:"total_score,string"`
	PPRank             *int64      `json:"pp_rank,string"`
	Level              *float64    `json:"level,string"`
	PPRaw              *float64    `json:"pp_raw,string"`
	Accuracy           *float64    `json:"accuracy,string"`
	CountRankSS        int64       `json:"count_rank_ss,string"`
	CountRankSSH       int64       `json:"count_rank_ssh,string"`
	CountRankS         int64       `json:"count_rank_s,string"`
	CountRankSH        int64       `json:"count_rank_sh,string"`
	CountRankA         int64       `json:"count_rank_a,string"`
	Country            string      `json:"country"`
	TotalSecondsPlayed int64       `json:"total_seconds_played,string"`
	PPCountryRank      *int64      `json:"pp_country_rank,string"`
	Events             []UserEvent `json:"events"`
}

// UserEvent is a notable recent event on a user's profile.
type UserEvent struct {
	DisplayHTML  string `json:"display_html"`
	BeatmapID    *int64 `json:"beatmap_id,string"`
	BeatmapSetID *int64 `json:"beatmapset_id,string"`
	Date         Time   `json:"date"`
	EpicFactor   int    `json:"epicfactor,string"`
}

// HitCounts holds the judgement counters shared by every score record.
type HitCounts struct {
	Count300  int64 `json:"count300,string"`
	Count100  int64 `json:"count100,string"`
	Count50   int64 `json:"count50,string"`
	CountMiss int64 `json:"countmiss,string"`
	CountKatu int64 `json:"countkatu,string"`
	CountGeki int64 `json:"countgeki,string"`
}

// Accuracy returns the accuracy in [0, 1] using the formula of mode m.
func (h HitCounts) Accuracy(m Mode) float64 {
	var num, den float64
	switch m {
	case Taiko:
		num = float64(h.Count300) + 0.5*float64(h.Count100)
		den = float64(h.Count300 + h.Count100 + h.CountMiss)
	case CatchTheBeat:
		num = float64(h.Count300 + h.Count100 + h.Count50)
		den = float64(h.Count300 + h.Count100 + h.Count50 + h.CountKatu + h.CountMiss)
	case Mania:
		num = float64(300*(h.Count300+h.CountGeki) + 200*h.CountKatu + 100*h.Count100 + 50*h.Count50)
		den = float64(300 * (h.Count300 + h.CountGeki + h.CountKatu + h.Count100 + h.Count50 + h.CountMiss))
	default:
		num = float64(300*h.Count300 + 100*h.Count100 + 50*h.Count50)
		den = float64(300 * (h.Count300 + h.Count100 + h.Count50 + h.CountMiss))
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// UserScore is one element of a get_user_best or get_user_recent response.
// ScoreID, PP and ReplayAvailable are only sent by get_user_best.
type UserScore struct {
	BeatmapID int64  `json:"beatmap_id,string"`
	ScoreID   *int64 `json:"score_id,string"`
	Score     int64  `json:"score,string"`
	MaxCombo  int64  `json:"maxcombo,string"`
	HitCounts
	Perfect         Bool     `json:"perfect"`
	EnabledMods     Mods     `json:"enabled_mods"`
	UserID          int64    `json:"user_id,string"`
	Date            Time     `json:"date"`
	Rank            string   `json:"rank"`
	PP              *float64 `json:"pp,string"`
	ReplayAvailable *Bool    `json:"replay_available"`
}

// BeatmapScore is one element of a get_scores response.
// PP is nil on loved and unranked beatmaps.
type BeatmapScore struct {
	ScoreID  int64  `json:"score_id,string"`
	Score    int64  `json:"score,string"`
	Username string `json:"username"`
	MaxCombo int64  `json:"maxcombo,string"`
	HitCounts
	Perfect         Bool     `json:"perfect"`
	EnabledMods     Mods     `json:"enabled_mods"`
	UserID          int64    `json:"user_id,string"`
	Date            Time     `json:"date"`
	Rank            string   `json:"rank"`
	PP              *float64 `json:"pp,string"`
	ReplayAvailable Bool     `json:"replay_available"`
}

// Beatmap is one element of a get_beatmaps response.
// DiffAim and DiffSpeed are only computed for the modes that define them and
// are nil otherwise; MaxCombo is nil where the API has not computed it.
type Beatmap struct {
	Status              BeatmapStatus `json:"approved,string"`
	SubmitDate          Time          `json:"submit_date"`
	ApprovedDate        *Time         `json:"approved_date"`
	LastUpdate          Time          `json:"last_update"`
	Artist              string        `json:"artist"`
	BeatmapID           int64         `json:"beatmap_id,string"`
	BeatmapSetID        int64         `json:"beatmapset_id,string"`
	BPM                 float64       `json:"bpm,string"`
	Creator             string        `json:"creator"`
	CreatorID           int64         `json:"creator_id,string"`
	DifficultyRating    float64       `json:"difficultyrating,string"`
	DiffAim             *float64      `json:"diff_aim,string"`
	DiffSpeed           *float64      `json:"diff_speed,string"`
	DiffSize            float64       `json:"diff_size,string"`
	DiffOverall         float64       `json:"diff_overall,string"`
	DiffApproach        float64       `json:"diff_approach,string"`
	DiffDrain           float64       `json:"diff_drain,string"`
	HitLength           int64         `json:"hit_length,string"`
	Source              string        `json:"source"`
	Genre               Genre         `json:"genre_id,string"`
	Language            Language      `json:"language_id,string"`
	Title               string        `json:"title"`
	TotalLength         int64         `json:"total_length,string"`
	Version             string        `json:"version"`
	FileMD5             string        `json:"file_md5"`
	Mode                Mode          `json:"mode"`
	Tags                string        `json:"tags"`
	FavouriteCount      int64         `json:"favourite_count,string"`
	Rating              float64       `json:"rating,string"`
	PlayCount           int64         `json:"playcount,string"`
	PassCount           int64         `json:"passcount,string"`
	CountNormal         int64         `json:"count_normal,string"`
	CountSlider         int64         `json:"count_slider,string"`
	CountSpinner        int64         `json:"count_spinner,string"`
	MaxCombo            *int64        `json:"max_combo,string"`
	Storyboard          Bool          `json:"storyboard"`
	Video               Bool          `json:"video"`
	DownloadUnavailable Bool          `json:"download_unavailable"`
	AudioUnavailable    Bool          `json:"audio_unavailable"`
}

// URL is the beatmap's page on the osu! website.
func (b Beatmap) URL() string {
	return "https://osu.ppy.sh/b/" + strconv.FormatInt(b.BeatmapID, 10)
}

// TagList splits Tags on whitespace.
func (b Beatmap) TagList() []string {
	return strings.Fields(b.Tags)
}

// ScoringType is how a multiplayer game is won.
type ScoringType int

const (
	ScoringScore    ScoringType = 0
	ScoringAccuracy ScoringType = 1
	ScoringCombo    ScoringType = 2
	ScoringScoreV2  ScoringType = 3
)

// TeamType is the team layout of a multiplayer game.
type TeamType int

const (
	TeamHeadToHead TeamType = 0
	TeamTagCoop    TeamType = 1
	TeamVs         TeamType = 2
	TeamTagTeamVs  TeamType = 3
)

// Match is the get_match response.
type Match struct {
	Info  MatchInfo   `json:"match"`
	Games []MatchGame `json:"games"`
}

// MatchInfo describes a multiplayer room.
type MatchInfo struct {
	MatchID   int64  `json:"match_id,string"`
	Name      string `json:"name"`
	StartTime Time   `json:"start_time"`
	EndTime   *Time  `json:"end_time"`
}

// MatchGame is one beatmap played in a multiplayer room.
type MatchGame struct {
	GameID      int64        `json:"game_id,string"`
	StartTime   Time         `json:"start_time"`
	EndTime     *Time        `json:"end_time"`
	BeatmapID   int64        `json:"beatmap_id,string"`
	PlayMode    Mode         `json:"play_mode"`
	MatchType   int          `json:"match_type,string"`
	ScoringType ScoringType  `json:"scoring_type,string"`
	TeamType    TeamType     `json:"team_type,string"`
	Mods        Mods         `json:"mods"`
	Scores      []MatchScore `json:"scores"`
}

// MatchScore is one player's result in a MatchGame.
// EnabledMods is nil unless the room had free mods.
type MatchScore struct {
	Slot     int   `json:"slot,string"`
	Team     int   `json:"team,string"`
	UserID   int64 `json:"user_id,string"`
	Score    int64 `json:"score,string"`
	MaxCombo int64 `json:"maxcombo,string"`
	HitCounts
	Perfect     Bool  `json:"perfect"`
	Pass        Bool  `json:"pass"`
	EnabledMods *Mods `json:"enabled_mods"`
}

package osuapi

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Mode is a game variant.
type Mode int

const (
	Standard     Mode = 0
	Taiko        Mode = 1
	CatchTheBeat Mode = 2
	Mania        Mode = 3
)

var modeNames = map[Mode]string{
	Standard:     "osu",
	Taiko:        "taiko",
	CatchTheBeat: "ctb",
	Mania:        "mania",
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// Filter returns a pointer to m for use in query structs.
func (m Mode) Filter() *Mode {
	return &m
}

// ParseMode accepts a mode name ("osu", "std", "taiko", "ctb", "fruits",
// "catch", "mania") or its numeric value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "osu", "std", "standard", "0":
		return Standard, nil
	case "taiko", "1":
		return Taiko, nil
	case "ctb", "fruits", "catch", "2":
		return CatchTheBeat, nil
	case "mania", "3":
		return Mania, nil
	}
	return 0, fmt.Errorf("invalid mode %q", s)
}

// UnmarshalJSON accepts both "3" and 3.
func (m *Mode) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	v, err := strconv.Atoi(string(bytes.Trim(b, `"`)))
	if err != nil {
		return fmt.Errorf("mode: %w", err)
	}
	if _, ok := modeNames[Mode(v)]; !ok {
		return fmt.Errorf("mode: unknown value %d", v)
	}
	*m = Mode(v)
	return nil
}

// BeatmapStatus is the ranking state of a beatmap ("approved" in the API).
type BeatmapStatus int

const (
	StatusGraveyard BeatmapStatus = -2
	StatusWIP       BeatmapStatus = -1
	StatusPending   BeatmapStatus = 0
	StatusRanked    BeatmapStatus = 1
	StatusApproved  BeatmapStatus = 2
	StatusQualified BeatmapStatus = 3
	StatusLoved     BeatmapStatus = 4
)

func (s BeatmapStatus) String() string {
	switch s {
	case StatusGraveyard:
		return "graveyard"
	case StatusWIP:
		return "wip"
	case StatusPending:
		return "pending"
	case StatusRanked:
		return "ranked"
	case StatusApproved:
		return "approved"
	case StatusQualified:
		return "qualified"
	case StatusLoved:
		return "loved"
	}
	return "BeatmapStatus(" + strconv.Itoa(int(s)) + ")"
}

// HasLeaderboard reports whether scores on the beatmap are kept.
func (s BeatmapStatus) HasLeaderboard() bool {
	return s >= StatusRanked
}

// Genre of a beatmap's song.
type Genre int

const (
	GenreAny         Genre = 0
	GenreUnspecified Genre = 1
	GenreVideoGame   Genre = 2
	GenreAnime       Genre = 3
	GenreRock        Genre = 4
	GenrePop         Genre = 5
	GenreOther       Genre = 6
	GenreNovelty     Genre = 7
	GenreHipHop      Genre = 9
	GenreElectronic  Genre = 10
	GenreMetal       Genre = 11
	GenreClassical   Genre = 12
	GenreFolk        Genre = 13
	GenreJazz        Genre = 14
)

var genreNames = map[Genre]string{
	GenreAny:         "any",
	GenreUnspecified: "unspecified",
	GenreVideoGame:   "video game",
	GenreAnime:       "anime",
	GenreRock:        "rock",
	GenrePop:         "pop",
	GenreOther:       "other",
	GenreNovelty:     "novelty",
	GenreHipHop:      "hip hop",
	GenreElectronic:  "electronic",
	GenreMetal:       "metal",
	GenreClassical:   "classical",
	GenreFolk:        "folk",
	GenreJazz:        "jazz",
}

func (g Genre) String() string {
	if n, ok := genreNames[g]; ok {
		return n
	}
	return "Genre(" + strconv.Itoa(int(g)) + ")"
}

// Language of a beatmap's song.
type Language int

const (
	LanguageAny          Language = 0
	LanguageUnspecified  Language = 1
	LanguageEnglish      Language = 2
	LanguageJapanese     Language = 3
	LanguageChinese      Language = 4
	LanguageInstrumental Language = 5
	LanguageKorean       Language = 6
	LanguageFrench       Language = 7
	LanguageGerman       Language = 8
	LanguageSwedish      Language = 9
	LanguageSpanish      Language = 10
	LanguageItalian      Language = 11
	LanguageRussian      Language = 12
	LanguagePolish       Language = 13
	LanguageOther        Language = 14
)

var languageNames = map[Language]string{
	LanguageAny:          "any",
	LanguageUnspecified:  "unspecified",
	LanguageEnglish:      "english",
	LanguageJapanese:     "japanese",
	LanguageChinese:      "chinese",
	LanguageInstrumental: "instrumental",
	LanguageKorean:       "korean",
	LanguageFrench:       "french",
	LanguageGerman:       "german",
	LanguageSwedish:      "swedish",
	LanguageSpanish:      "spanish",
	LanguageItalian:      "italian",
	LanguageRussian:      "russian",
	LanguagePolish:       "polish",
	LanguageOther:        "other",
}

func (l Language) String() string {
	if n, ok := languageNames[l]; ok {
		return n
	}
	return "Language(" + strconv.Itoa(int(l)) + ")"
}

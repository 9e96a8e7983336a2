package osuapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Mods is the bitmask of gameplay modifiers used by the osu! API.
type Mods uint32

// Single mod bits. Nightcore and Perfect are composites: the API always sets
// DoubleTime alongside Nightcore and SuddenDeath alongside Perfect.
const (
	NoMod       Mods = 0
	NoFail      Mods = 1 << 0
	Easy        Mods = 1 << 1
	TouchDevice Mods = 1 << 2
	Hidden      Mods = 1 << 3
	HardRock    Mods = 1 << 4
	SuddenDeath Mods = 1 << 5
	DoubleTime  Mods = 1 << 6
	Relax       Mods = 1 << 7
	HalfTime    Mods = 1 << 8
	Nightcore   Mods = 1<<9 | DoubleTime
	Flashlight  Mods = 1 << 10
	Autoplay    Mods = 1 << 11
	SpunOut     Mods = 1 << 12
	Autopilot   Mods = 1 << 13
	Perfect     Mods = 1<<14 | SuddenDeath
	Key4        Mods = 1 << 15
	Key5        Mods = 1 << 16
	Key6        Mods = 1 << 17
	Key7        Mods = 1 << 18
	Key8        Mods = 1 << 19
	FadeIn      Mods = 1 << 20
	Random      Mods = 1 << 21
	Cinema      Mods = 1 << 22
	Target      Mods = 1 << 23
	Key9        Mods = 1 << 24
	KeyCoop     Mods = 1 << 25
	Key1        Mods = 1 << 26
	Key3        Mods = 1 << 27
	Key2        Mods = 1 << 28
	ScoreV2     Mods = 1 << 29
	Mirror      Mods = 1 << 30
)

// Mod groups as documented by the osu! API.
const (
	KeyMods           = Key1 | Key2 | Key3 | Key4 | Key5 | Key6 | Key7 | Key8 | Key9 | KeyCoop
	FreeModAllowed    = NoFail | Easy | Hidden | HardRock | SuddenDeath | Flashlight | FadeIn | Relax | Autopilot | SpunOut | KeyMods
	ScoreIncreaseMods = Hidden | HardRock | DoubleTime | Flashlight | FadeIn
)

type modName struct {
	mod   Mods
	short string
	long  string
}

// modNames is in display order. Composites come before the bits they contain.
var modNames = []modName{
	{NoFail, "NF", "NoFail"},
	{Easy, "EZ", "Easy"},
	{TouchDevice, "TD", "TouchDevice"},
	{Hidden, "HD", "Hidden"},
	{HardRock, "HR", "HardRock"},
	{Perfect, "PF", "Perfect"},
	{SuddenDeath, "SD", "SuddenDeath"},
	{Nightcore, "NC", "Nightcore"},
	{DoubleTime, "DT", "DoubleTime"},
	{Relax, "RX", "Relax"},
	{HalfTime, "HT", "HalfTime"},
	{Flashlight, "FL", "Flashlight"},
	{Autoplay, "AT", "Autoplay"},
	{SpunOut, "SO", "SpunOut"},
	{Autopilot, "AP", "Autopilot"},
	{FadeIn, "FI", "FadeIn"},
	{Random, "RD", "Random"},
	{Cinema, "CN", "Cinema"},
	{Target, "TP", "Target"},
	{Key1, "1K", "Key1"},
	{Key2, "2K", "Key2"},
	{Key3, "3K", "Key3"},
	{Key4, "4K", "Key4"},
	{Key5, "5K", "Key5"},
	{Key6, "6K", "Key6"},
	{Key7, "7K", "Key7"},
	{Key8, "8K", "Key8"},
	{Key9, "9K", "Key9"},
	{KeyCoop, "CO", "KeyCoop"},
	{ScoreV2, "V2", "ScoreV2"},
	{Mirror, "MR", "Mirror"},
}

// Has reports whether every bit of o is set in m.
func (m Mods) Has(o Mods) bool {
	return m&o == o
}

// Split returns the named mods that make up m, in display order.
// A composite such as Nightcore is returned instead of its DoubleTime bit.
func (m Mods) Split() []Mods {
	var out []Mods
	rest := m
	for _, n := range modNames {
		if rest&n.mod == n.mod {
			out = append(out, n.mod)
			rest &^= n.mod
		}
	}
	return out
}

// ShortName returns the canonical abbreviation of m, e.g. "HDNC".
// It only depends on which bits are set. NoMod yields "".
func (m Mods) ShortName() string {
	var b strings.Builder
	rest := m
	for _, n := range modNames {
		if rest&n.mod == n.mod {
			b.WriteString(n.short)
			rest &^= n.mod
		}
	}
	return b.String()
}

// String returns the long names of m joined by "|", or "NoMod".
func (m Mods) String() string {
	if m == NoMod {
		return "NoMod"
	}
	var parts []string
	rest := m
	for _, n := range modNames {
		if rest&n.mod == n.mod {
			parts = append(parts, n.long)
			rest &^= n.mod
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseMods parses a concatenation of short names such as "HDDT" or "hdnc".
// "" and "NM" parse to NoMod.
func ParseMods(s string) (Mods, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || s == "NM" {
		return NoMod, nil
	}
	if len(s)%2 != 0 {
		return NoMod, fmt.Errorf("invalid mods %q", s)
	}
	var m Mods
	for i := 0; i < len(s); i += 2 {
		found := false
		for _, n := range modNames {
			if n.short == s[i:i+2] {
				m |= n.mod
				found = true
				break
			}
		}
		if !found {
			return NoMod, fmt.Errorf("invalid mods %q: unknown mod %q", s, s[i:i+2])
		}
	}
	return m, nil
}

// UnmarshalJSON accepts both "72" and 72.
func (m *Mods) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	v, err := strconv.ParseUint(string(bytes.Trim(b, `"`)), 10, 32)
	if err != nil {
		return fmt.Errorf("mods: %w", err)
	}
	*m = Mods(v)
	return nil
}

// MarshalJSON encodes m as a bare integer.
func (m Mods) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint32(m))
}

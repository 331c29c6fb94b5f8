// Package lifestyle encodes and decodes the roommate lifestyle-preferences
// payload. The column holds one of two JSON shapes: a bare tag array
// (legacy/seed rows) or an object with tags plus enumerated attributes.
// Decode never fails; anything unreadable comes back as an empty tag list so
// display and filter code never trips over bad stored data.
package lifestyle

import (
	"encoding/json"
	"strings"
)

// Enumerated attribute values, as the original frontend writes them. The
// encoder does not reject values outside these sets.
const (
	OvernightRarely    = "Rarely"
	OvernightSometimes = "Sometimes"
	OvernightOften     = "Often"

	PartyQuiet     = "Quiet"
	PartySometimes = "Sometimes"
	PartySocial    = "Social"

	SleepEarlyBird = "Early Bird"
	SleepNightOwl  = "Night Owl"
	SleepFlexible  = "Flexible"
)

// Structured is the object form of the payload.
type Structured struct {
	Tags            []string `json:"tags"`
	OvernightGuests string   `json:"overnightGuests,omitempty"`
	PartyHabits     string   `json:"partyHabits,omitempty"`
	SleepSchedule   string   `json:"sleepSchedule,omitempty"`
	FoodPreference  string   `json:"foodPreference,omitempty"`
	Smoker          string   `json:"smoker,omitempty"`
	WorkSchedule    string   `json:"workSchedule,omitempty"`
	Gender          string   `json:"gender,omitempty"`
	Alcohol         string   `json:"alcohol,omitempty"`
}

// Prefs is the decoded payload: either a flat tag list or the structured
// object form. Exactly one representation is active; IsStructured tells
// them apart.
type Prefs struct {
	// Tags holds the tag-list form when Structured is nil, and is unused
	// otherwise.
	Tags       []string
	Structured *Structured
}

// TagList builds the tag-list form.
func TagList(tags ...string) Prefs {
	if tags == nil {
		tags = []string{}
	}
	return Prefs{Tags: tags}
}

// FromStructured builds the object form.
func FromStructured(s Structured) Prefs {
	if s.Tags == nil {
		s.Tags = []string{}
	}
	return Prefs{Structured: &s}
}

// IsStructured reports whether the payload carries the object form.
func (p Prefs) IsStructured() bool {
	return p.Structured != nil
}

// AllTags returns the tag list regardless of form.
func (p Prefs) AllTags() []string {
	if p.Structured != nil {
		return p.Structured.Tags
	}
	return p.Tags
}

// Field returns the named enumerated attribute. Tag-list payloads have no
// attributes, so every field reads as empty for them; an equality filter
// with a non-empty wanted value therefore never matches a tag-list row.
func (p Prefs) Field(name string) string {
	if p.Structured == nil {
		return ""
	}
	switch name {
	case "overnightGuests":
		return p.Structured.OvernightGuests
	case "partyHabits":
		return p.Structured.PartyHabits
	case "sleepSchedule":
		return p.Structured.SleepSchedule
	case "foodPreference":
		return p.Structured.FoodPreference
	case "smoker":
		return p.Structured.Smoker
	case "workSchedule":
		return p.Structured.WorkSchedule
	case "gender":
		return p.Structured.Gender
	case "alcohol":
		return p.Structured.Alcohol
	}
	return ""
}

// Matches reports whether the payload's named attribute equals want,
// ignoring case. An empty want matches everything.
func (p Prefs) Matches(name, want string) bool {
	if want == "" {
		return true
	}
	got := p.Field(name)
	if got == "" {
		return false
	}
	return strings.EqualFold(got, want)
}

// Encode serializes the payload to the stored text form.
func Encode(p Prefs) (string, error) {
	var v interface{}
	if p.Structured != nil {
		v = p.Structured
	} else {
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		v = tags
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses stored text into a payload. Malformed or legacy text decodes
// to an empty tag list rather than an error.
func Decode(text string) Prefs {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return TagList()
	}

	var raw json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return TagList()
	}

	switch trimmed[0] {
	case '[':
		var tags []string
		if err := json.Unmarshal(raw, &tags); err != nil {
			return TagList()
		}
		return TagList(tags...)
	case '{':
		var s Structured
		if err := json.Unmarshal(raw, &s); err != nil {
			return TagList()
		}
		if s.Tags == nil {
			s.Tags = []string{}
		}
		return Prefs{Structured: &s}
	}
	return TagList()
}

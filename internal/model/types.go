// Package model defines shared data structures.
package model

import "time"

// KanaType names a kana script.
type KanaType string

const (
	Hiragana KanaType = "hiragana"
	Katakana KanaType = "katakana"
)

// Valid reports whether t is a known script.
func (t KanaType) Valid() bool {
	return t == Hiragana || t == Katakana
}

// Title returns the capitalized script name.
func (t KanaType) Title() string {
	switch t {
	case Hiragana:
		return "Hiragana"
	case Katakana:
		return "Katakana"
	default:
		return string(t)
	}
}

// Kana is a single reference character.
type Kana struct {
	ID        string   `json:"id"`
	Character string   `json:"character"`
	Romaji    string   `json:"romaji"`
	Type      KanaType `json:"type"`
}

// StudyProgress records one answer.
type StudyProgress struct {
	KanaID       string `json:"kanaId"`
	IsCorrect    bool   `json:"isCorrect"`
	ResponseTime int64  `json:"responseTime"`
	Timestamp    string `json:"timestamp"`
}

// StudyOptions configures a study run.
type StudyOptions struct {
	IsShuffled     bool `json:"isShuffled"`
	CharacterCount *int `json:"characterCount,omitempty"`
}

// EffectiveCount returns how many of the available cards a run uses.
// A missing, non-positive or oversized count means all of them.
func (o StudyOptions) EffectiveCount(available int) int {
	if o.CharacterCount == nil {
		return available
	}
	n := *o.CharacterCount
	if n <= 0 || n > available {
		return available
	}
	return n
}

// StudySession captures a study run.
type StudySession struct {
	ID               string        `json:"id"`
	KanaType         KanaType      `json:"kanaType"`
	StartTime        string        `json:"startTime"`
	EndTime          string        `json:"endTime,omitempty"`
	CardsReviewed    int           `json:"cardsReviewed"`
	CorrectAnswers   int           `json:"correctAnswers"`
	IncorrectAnswers int           `json:"incorrectAnswers"`
	StudyOptions     *StudyOptions `json:"studyOptions,omitempty"`
}

// Duration returns the elapsed time of an ended session.
// Sessions without a parseable end time report zero.
func (s StudySession) Duration() time.Duration {
	if s.EndTime == "" {
		return 0
	}
	start, err := ParseTime(s.StartTime)
	if err != nil {
		return 0
	}
	end, err := ParseTime(s.EndTime)
	if err != nil {
		return 0
	}
	if end.Before(start) {
		return 0
	}
	return end.Sub(start)
}

// KanaProgress aggregates answers for a single character.
type KanaProgress struct {
	CorrectCount   int    `json:"correctCount"`
	IncorrectCount int    `json:"incorrectCount"`
	LastReviewed   string `json:"lastReviewed,omitempty"`
}

// Total returns the number of recorded answers.
func (p KanaProgress) Total() int {
	return p.CorrectCount + p.IncorrectCount
}

// ProgressMap maps kana ids to their progress.
type ProgressMap map[string]KanaProgress

// Clone returns a copy of the map.
func (m ProgressMap) Clone() ProgressMap {
	out := make(ProgressMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Timestamps use millisecond precision in UTC, matching the stored format.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTime renders t as an ISO-8601 timestamp.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses an ISO-8601 timestamp.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

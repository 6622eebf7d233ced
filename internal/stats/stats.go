// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/kanaflash/internal/model"
)

// RecentLimit is the number of sessions listed as recent.
const RecentLimit = 5

const sparkChars = " .:-=+*#%@"

// Overview aggregates completed sessions.
type Overview struct {
	TotalStudyTime      time.Duration
	TotalCardsReviewed  int
	TotalCorrectAnswers int
	Accuracy            int
	RecentSessions      []model.StudySession
}

// Compute derives the overview from sessions in completion order.
func Compute(sessions []model.StudySession) Overview {
	var ov Overview
	for _, s := range sessions {
		ov.TotalStudyTime += s.Duration()
		ov.TotalCardsReviewed += s.CardsReviewed
		ov.TotalCorrectAnswers += s.CorrectAnswers
	}
	ov.Accuracy = Accuracy(ov.TotalCorrectAnswers, ov.TotalCardsReviewed)
	ov.RecentSessions = recent(sessions, RecentLimit)
	return ov
}

// Accuracy returns correct/total as a rounded percentage in [0, 100].
// It is 0 when total is 0.
func Accuracy(correct, total int) int {
	if total <= 0 || correct <= 0 {
		return 0
	}
	pct := int(math.Round(float64(correct) / float64(total) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// FormatDuration renders d as whole minutes and seconds, e.g. "3m 7s".
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%dm %ds", ms/60000, (ms%60000)/1000)
}

// SessionAccuracies returns per-session accuracy percentages.
func SessionAccuracies(sessions []model.StudySession) []float64 {
	out := make([]float64, len(sessions))
	for i, s := range sessions {
		out[i] = float64(Accuracy(s.CorrectAnswers, s.CardsReviewed))
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// recent returns the last n sessions, most recent first.
func recent(sessions []model.StudySession, n int) []model.StudySession {
	if len(sessions) < n {
		n = len(sessions)
	}
	out := make([]model.StudySession, 0, n)
	for i := len(sessions) - 1; i >= len(sessions)-n; i-- {
		out = append(out, sessions[i])
	}
	return out
}

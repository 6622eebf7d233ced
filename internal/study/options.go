// Package study drives a flashcard run through the session store.
package study

import (
	"encoding/json"
	"strings"

	"github.com/verte-zerg/kanaflash/internal/generator"
	"github.com/verte-zerg/kanaflash/internal/model"
)

// DefaultOptions is used when no usable options are supplied.
func DefaultOptions() model.StudyOptions {
	return model.StudyOptions{IsShuffled: true}
}

// ParseOptions decodes raw StudyOptions JSON. Empty or malformed input
// yields DefaultOptions.
func ParseOptions(raw string) model.StudyOptions {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultOptions()
	}
	var opts model.StudyOptions
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		return DefaultOptions()
	}
	return opts
}

// BuildRunList returns the cards for one run. Shuffled runs are a random
// permutation trimmed to the requested count; ordered runs use every card in
// reference order and ignore the count.
func BuildRunList(all []model.Kana, opts model.StudyOptions, gen *generator.Generator) []model.Kana {
	if opts.IsShuffled {
		return gen.Pick(all, opts.EffectiveCount(len(all)))
	}
	out := make([]model.Kana, len(all))
	copy(out, all)
	return out
}

var romajiAliases = map[string]string{
	"si": "shi",
	"ti": "chi",
	"tu": "tsu",
	"hu": "fu",
	"nn": "n",
}

// CheckAnswer reports whether input is an accepted romanization of k.
func CheckAnswer(k model.Kana, input string) bool {
	norm := strings.ToLower(strings.Join(strings.Fields(input), ""))
	if norm == "" {
		return false
	}
	if norm == k.Romaji {
		return true
	}
	return romajiAliases[norm] == k.Romaji
}

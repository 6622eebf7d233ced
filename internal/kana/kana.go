// Package kana holds the static hiragana and katakana reference data.
package kana

import "github.com/verte-zerg/kanaflash/internal/model"

// Hiragana returns the hiragana reference list in gojuon order.
func Hiragana() []model.Kana {
	return clone(hiragana)
}

// Katakana returns the katakana reference list in gojuon order.
func Katakana() []model.Kana {
	return clone(katakana)
}

// ForType returns the reference list for a script, or nil for unknown scripts.
func ForType(t model.KanaType) []model.Kana {
	switch t {
	case model.Hiragana:
		return Hiragana()
	case model.Katakana:
		return Katakana()
	default:
		return nil
	}
}

// All returns hiragana followed by katakana.
func All() []model.Kana {
	out := make([]model.Kana, 0, len(hiragana)+len(katakana))
	out = append(out, hiragana...)
	return append(out, katakana...)
}

// Lookup finds a character by id across both scripts.
func Lookup(id string) (model.Kana, bool) {
	k, ok := index[id]
	return k, ok
}

var index = buildIndex()

func buildIndex() map[string]model.Kana {
	m := make(map[string]model.Kana, len(hiragana)+len(katakana))
	for _, k := range hiragana {
		m[k.ID] = k
	}
	for _, k := range katakana {
		m[k.ID] = k
	}
	return m
}

func clone(in []model.Kana) []model.Kana {
	out := make([]model.Kana, len(in))
	copy(out, in)
	return out
}

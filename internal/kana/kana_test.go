package kana

import (
	"regexp"
	"testing"
	"unicode/utf8"

	"github.com/verte-zerg/kanaflash/internal/model"
)

var romajiPattern = regexp.MustCompile(`^[a-z]+$`)

func TestDatasetIntegrity(t *testing.T) {
	cases := []struct {
		kanaType model.KanaType
		list     []model.Kana
		lo, hi   rune
	}{
		{kanaType: model.Hiragana, list: Hiragana(), lo: 0x3040, hi: 0x309F},
		{kanaType: model.Katakana, list: Katakana(), lo: 0x30A0, hi: 0x30FF},
	}
	for _, tc := range cases {
		if len(tc.list) != 46 {
			t.Fatalf("%s: expected 46 characters, got %d", tc.kanaType, len(tc.list))
		}
		ids := map[string]struct{}{}
		chars := map[string]struct{}{}
		for _, k := range tc.list {
			if k.Type != tc.kanaType {
				t.Fatalf("%s: unexpected type %q for %s", tc.kanaType, k.Type, k.ID)
			}
			if _, dup := ids[k.ID]; dup {
				t.Fatalf("%s: duplicate id %s", tc.kanaType, k.ID)
			}
			ids[k.ID] = struct{}{}
			if _, dup := chars[k.Character]; dup {
				t.Fatalf("%s: duplicate character %s", tc.kanaType, k.Character)
			}
			chars[k.Character] = struct{}{}
			if utf8.RuneCountInString(k.Character) != 1 {
				t.Fatalf("%s: expected single glyph for %s", tc.kanaType, k.ID)
			}
			r, _ := utf8.DecodeRuneInString(k.Character)
			if r < tc.lo || r > tc.hi {
				t.Fatalf("%s: %q outside script range", tc.kanaType, k.Character)
			}
			if !romajiPattern.MatchString(k.Romaji) {
				t.Fatalf("%s: invalid romaji %q", tc.kanaType, k.Romaji)
			}
		}
	}
}

func TestBasicVowels(t *testing.T) {
	want := map[string]string{"あ": "a", "い": "i", "う": "u", "え": "e", "お": "o", "か": "ka", "し": "shi"}
	for _, k := range Hiragana() {
		if r, ok := want[k.Character]; ok && r != k.Romaji {
			t.Fatalf("expected %s for %s, got %s", r, k.Character, k.Romaji)
		}
	}
}

func TestLookupAndAll(t *testing.T) {
	k, ok := Lookup("k1")
	if !ok || k.Character != "ア" {
		t.Fatalf("unexpected lookup result: %+v %v", k, ok)
	}
	if _, ok := Lookup("1"); ok {
		t.Fatalf("expected legacy numeric id to be unknown")
	}
	all := All()
	if len(all) != 92 || all[0].ID != "h1" || all[46].ID != "k1" {
		t.Fatalf("unexpected combined dataset ordering")
	}
	if ForType("romaji") != nil {
		t.Fatalf("expected nil for unknown script")
	}
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	list := Hiragana()
	list[0].Romaji = "x"
	if Hiragana()[0].Romaji != "a" {
		t.Fatalf("reference data was mutated")
	}
}

package kana

import "github.com/verte-zerg/kanaflash/internal/model"

var hiragana = []model.Kana{
	{ID: "h1", Character: "あ", Romaji: "a", Type: model.Hiragana},
	{ID: "h2", Character: "い", Romaji: "i", Type: model.Hiragana},
	{ID: "h3", Character: "う", Romaji: "u", Type: model.Hiragana},
	{ID: "h4", Character: "え", Romaji: "e", Type: model.Hiragana},
	{ID: "h5", Character: "お", Romaji: "o", Type: model.Hiragana},
	{ID: "h6", Character: "か", Romaji: "ka", Type: model.Hiragana},
	{ID: "h7", Character: "き", Romaji: "ki", Type: model.Hiragana},
	{ID: "h8", Character: "く", Romaji: "ku", Type: model.Hiragana},
	{ID: "h9", Character: "け", Romaji: "ke", Type: model.Hiragana},
	{ID: "h10", Character: "こ", Romaji: "ko", Type: model.Hiragana},
	{ID: "h11", Character: "さ", Romaji: "sa", Type: model.Hiragana},
	{ID: "h12", Character: "し", Romaji: "shi", Type: model.Hiragana},
	{ID: "h13", Character: "す", Romaji: "su", Type: model.Hiragana},
	{ID: "h14", Character: "せ", Romaji: "se", Type: model.Hiragana},
	{ID: "h15", Character: "そ", Romaji: "so", Type: model.Hiragana},
	{ID: "h16", Character: "た", Romaji: "ta", Type: model.Hiragana},
	{ID: "h17", Character: "ち", Romaji: "chi", Type: model.Hiragana},
	{ID: "h18", Character: "つ", Romaji: "tsu", Type: model.Hiragana},
	{ID: "h19", Character: "て", Romaji: "te", Type: model.Hiragana},
	{ID: "h20", Character: "と", Romaji: "to", Type: model.Hiragana},
	{ID: "h21", Character: "な", Romaji: "na", Type: model.Hiragana},
	{ID: "h22", Character: "に", Romaji: "ni", Type: model.Hiragana},
	{ID: "h23", Character: "ぬ", Romaji: "nu", Type: model.Hiragana},
	{ID: "h24", Character: "ね", Romaji: "ne", Type: model.Hiragana},
	{ID: "h25", Character: "の", Romaji: "no", Type: model.Hiragana},
	{ID: "h26", Character: "は", Romaji: "ha", Type: model.Hiragana},
	{ID: "h27", Character: "ひ", Romaji: "hi", Type: model.Hiragana},
	{ID: "h28", Character: "ふ", Romaji: "fu", Type: model.Hiragana},
	{ID: "h29", Character: "へ", Romaji: "he", Type: model.Hiragana},
	{ID: "h30", Character: "ほ", Romaji: "ho", Type: model.Hiragana},
	{ID: "h31", Character: "ま", Romaji: "ma", Type: model.Hiragana},
	{ID: "h32", Character: "み", Romaji: "mi", Type: model.Hiragana},
	{ID: "h33", Character: "む", Romaji: "mu", Type: model.Hiragana},
	{ID: "h34", Character: "め", Romaji: "me", Type: model.Hiragana},
	{ID: "h35", Character: "も", Romaji: "mo", Type: model.Hiragana},
	{ID: "h36", Character: "や", Romaji: "ya", Type: model.Hiragana},
	{ID: "h37", Character: "ゆ", Romaji: "yu", Type: model.Hiragana},
	{ID: "h38", Character: "よ", Romaji: "yo", Type: model.Hiragana},
	{ID: "h39", Character: "ら", Romaji: "ra", Type: model.Hiragana},
	{ID: "h40", Character: "り", Romaji: "ri", Type: model.Hiragana},
	{ID: "h41", Character: "る", Romaji: "ru", Type: model.Hiragana},
	{ID: "h42", Character: "れ", Romaji: "re", Type: model.Hiragana},
	{ID: "h43", Character: "ろ", Romaji: "ro", Type: model.Hiragana},
	{ID: "h44", Character: "わ", Romaji: "wa", Type: model.Hiragana},
	{ID: "h45", Character: "を", Romaji: "wo", Type: model.Hiragana},
	{ID: "h46", Character: "ん", Romaji: "n", Type: model.Hiragana},
}

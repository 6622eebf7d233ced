package kana

import "github.com/verte-zerg/kanaflash/internal/model"

var katakana = []model.Kana{
	{ID: "k1", Character: "ア", Romaji: "a", Type: model.Katakana},
	{ID: "k2", Character: "イ", Romaji: "i", Type: model.Katakana},
	{ID: "k3", Character: "ウ", Romaji: "u", Type: model.Katakana},
	{ID: "k4", Character: "エ", Romaji: "e", Type: model.Katakana},
	{ID: "k5", Character: "オ", Romaji: "o", Type: model.Katakana},
	{ID: "k6", Character: "カ", Romaji: "ka", Type: model.Katakana},
	{ID: "k7", Character: "キ", Romaji: "ki", Type: model.Katakana},
	{ID: "k8", Character: "ク", Romaji: "ku", Type: model.Katakana},
	{ID: "k9", Character: "ケ", Romaji: "ke", Type: model.Katakana},
	{ID: "k10", Character: "コ", Romaji: "ko", Type: model.Katakana},
	{ID: "k11", Character: "サ", Romaji: "sa", Type: model.Katakana},
	{ID: "k12", Character: "シ", Romaji: "shi", Type: model.Katakana},
	{ID: "k13", Character: "ス", Romaji: "su", Type: model.Katakana},
	{ID: "k14", Character: "セ", Romaji: "se", Type: model.Katakana},
	{ID: "k15", Character: "ソ", Romaji: "so", Type: model.Katakana},
	{ID: "k16", Character: "タ", Romaji: "ta", Type: model.Katakana},
	{ID: "k17", Character: "チ", Romaji: "chi", Type: model.Katakana},
	{ID: "k18", Character: "ツ", Romaji: "tsu", Type: model.Katakana},
	{ID: "k19", Character: "テ", Romaji: "te", Type: model.Katakana},
	{ID: "k20", Character: "ト", Romaji: "to", Type: model.Katakana},
	{ID: "k21", Character: "ナ", Romaji: "na", Type: model.Katakana},
	{ID: "k22", Character: "ニ", Romaji: "ni", Type: model.Katakana},
	{ID: "k23", Character: "ヌ", Romaji: "nu", Type: model.Katakana},
	{ID: "k24", Character: "ネ", Romaji: "ne", Type: model.Katakana},
	{ID: "k25", Character: "ノ", Romaji: "no", Type: model.Katakana},
	{ID: "k26", Character: "ハ", Romaji: "ha", Type: model.Katakana},
	{ID: "k27", Character: "ヒ", Romaji: "hi", Type: model.Katakana},
	{ID: "k28", Character: "フ", Romaji: "fu", Type: model.Katakana},
	{ID: "k29", Character: "ヘ", Romaji: "he", Type: model.Katakana},
	{ID: "k30", Character: "ホ", Romaji: "ho", Type: model.Katakana},
	{ID: "k31", Character: "マ", Romaji: "ma", Type: model.Katakana},
	{ID: "k32", Character: "ミ", Romaji: "mi", Type: model.Katakana},
	{ID: "k33", Character: "ム", Romaji: "mu", Type: model.Katakana},
	{ID: "k34", Character: "メ", Romaji: "me", Type: model.Katakana},
	{ID: "k35", Character: "モ", Romaji: "mo", Type: model.Katakana},
	{ID: "k36", Character: "ヤ", Romaji: "ya", Type: model.Katakana},
	{ID: "k37", Character: "ユ", Romaji: "yu", Type: model.Katakana},
	{ID: "k38", Character: "ヨ", Romaji: "yo", Type: model.Katakana},
	{ID: "k39", Character: "ラ", Romaji: "ra", Type: model.Katakana},
	{ID: "k40", Character: "リ", Romaji: "ri", Type: model.Katakana},
	{ID: "k41", Character: "ル", Romaji: "ru", Type: model.Katakana},
	{ID: "k42", Character: "レ", Romaji: "re", Type: model.Katakana},
	{ID: "k43", Character: "ロ", Romaji: "ro", Type: model.Katakana},
	{ID: "k44", Character: "ワ", Romaji: "wa", Type: model.Katakana},
	{ID: "k45", Character: "ヲ", Romaji: "wo", Type: model.Katakana},
	{ID: "k46", Character: "ン", Romaji: "n", Type: model.Katakana},
}

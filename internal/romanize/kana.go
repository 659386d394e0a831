package romanize

import "strings"

// Katakana to Hepburn romaji. Two-kana combinations (yōon, and the foreign
// sound extensions katakana uses for loanwords) are matched before single
// kana. The sokuon ッ doubles the following consonant; the chōonpu ー repeats
// the previous vowel, which the long-vowel pass later collapses to a macron.

var kataDigraphs = map[string]string{
	"キャ": "kya", "キュ": "kyu", "キョ": "kyo",
	"シャ": "sha", "シュ": "shu", "ショ": "sho",
	"チャ": "cha", "チュ": "chu", "チョ": "cho",
	"ニャ": "nya", "ニュ": "nyu", "ニョ": "nyo",
	"ヒャ": "hya", "ヒュ": "hyu", "ヒョ": "hyo",
	"ミャ": "mya", "ミュ": "myu", "ミョ": "myo",
	"リャ": "rya", "リュ": "ryu", "リョ": "ryo",
	"ギャ": "gya", "ギュ": "gyu", "ギョ": "gyo",
	"ジャ": "ja", "ジュ": "ju", "ジョ": "jo",
	"ヂャ": "ja", "ヂュ": "ju", "ヂョ": "jo",
	"ビャ": "bya", "ビュ": "byu", "ビョ": "byo",
	"ピャ": "pya", "ピュ": "pyu", "ピョ": "pyo",
	"シェ": "she", "チェ": "che", "ジェ": "je",
	"ティ": "ti", "ディ": "di", "トゥ": "tu", "ドゥ": "du",
	"ファ": "fa", "フィ": "fi", "フェ": "fe", "フォ": "fo",
	"ウィ": "wi", "ウェ": "we", "ウォ": "wo",
	"ヴァ": "va", "ヴィ": "vi", "ヴェ": "ve", "ヴォ": "vo",
}

var kataSingles = map[rune]string{
	'ア': "a", 'イ': "i", 'ウ': "u", 'エ': "e", 'オ': "o",
	'カ': "ka", 'キ': "ki", 'ク': "ku", 'ケ': "ke", 'コ': "ko",
	'サ': "sa", 'シ': "shi", 'ス': "su", 'セ': "se", 'ソ': "so",
	'タ': "ta", 'チ': "chi", 'ツ': "tsu", 'テ': "te", 'ト': "to",
	'ナ': "na", 'ニ': "ni", 'ヌ': "nu", 'ネ': "ne", 'ノ': "no",
	'ハ': "ha", 'ヒ': "hi", 'フ': "fu", 'ヘ': "he", 'ホ': "ho",
	'マ': "ma", 'ミ': "mi", 'ム': "mu", 'メ': "me", 'モ': "mo",
	'ヤ': "ya", 'ユ': "yu", 'ヨ': "yo",
	'ラ': "ra", 'リ': "ri", 'ル': "ru", 'レ': "re", 'ロ': "ro",
	'ワ': "wa", 'ヰ': "i", 'ヱ': "e", 'ヲ': "o", 'ン': "n",
	'ガ': "ga", 'ギ': "gi", 'グ': "gu", 'ゲ': "ge", 'ゴ': "go",
	'ザ': "za", 'ジ': "ji", 'ズ': "zu", 'ゼ': "ze", 'ゾ': "zo",
	'ダ': "da", 'ヂ': "ji", 'ヅ': "zu", 'デ': "de", 'ド': "do",
	'バ': "ba", 'ビ': "bi", 'ブ': "bu", 'ベ': "be", 'ボ': "bo",
	'パ': "pa", 'ピ': "pi", 'プ': "pu", 'ペ': "pe", 'ポ': "po",
	'ヴ': "vu",
	'ァ': "a", 'ィ': "i", 'ゥ': "u", 'ェ': "e", 'ォ': "o",
	'ャ': "ya", 'ュ': "yu", 'ョ': "yo",
}

var vowels = "aeiou"

// hiraganaToKatakana shifts hiragana runes into the katakana block so one
// conversion table serves both scripts.
func hiraganaToKatakana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x3041 && r <= 0x3096 {
			runes[i] = r + 0x60
		}
	}
	return string(runes)
}

// kanaToRomaji converts a katakana (or hiragana) string to Hepburn romaji.
// Runes with no mapping (kanji that slipped through without a reading,
// Latin text) pass through unchanged.
func kanaToRomaji(kana string) string {
	runes := []rune(hiraganaToKatakana(kana))
	var b strings.Builder
	doubleNext := false
	for i := 0; i < len(runes); {
		r := runes[i]

		if r == 'ッ' {
			doubleNext = true
			i++
			continue
		}
		if r == 'ー' {
			// Long-vowel mark: repeat the previous vowel if there is one.
			out := b.String()
			if len(out) > 0 {
				last := out[len(out)-1]
				if strings.IndexByte(vowels, last) >= 0 {
					b.WriteByte(last)
				}
			}
			i++
			continue
		}

		var piece string
		if i+1 < len(runes) {
			if p, ok := kataDigraphs[string(runes[i:i+2])]; ok {
				piece = p
				i += 2
			}
		}
		if piece == "" {
			if p, ok := kataSingles[r]; ok {
				piece = p
			} else {
				piece = string(r)
			}
			i++
		}

		if doubleNext && piece != "" {
			first := piece[0]
			if strings.IndexByte(vowels, first) < 0 {
				// Hepburn writes っち as tchi, not cchi.
				if strings.HasPrefix(piece, "ch") {
					b.WriteByte('t')
				} else {
					b.WriteByte(first)
				}
			}
			doubleNext = false
		}
		b.WriteString(piece)
	}
	return b.String()
}

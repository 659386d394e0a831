package romanize

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

var pinyinArgs = func() pinyin.Args {
	a := pinyin.NewArgs()
	a.Style = pinyin.Tone
	return a
}()

// Chinese converts Han runes to pinyin with tone marks. Syllables are joined
// with single spaces; non-Han runes are kept inline so mixed text such as
// "wifi密碼" stays legible.
func Chinese(text string) string {
	var parts []string
	var pending strings.Builder
	flush := func() {
		if pending.Len() > 0 {
			parts = append(parts, pending.String())
			pending.Reset()
		}
	}
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			flush()
			if py := pinyin.SinglePinyin(r, pinyinArgs); len(py) > 0 {
				parts = append(parts, py[0])
			} else {
				parts = append(parts, string(r))
			}
			continue
		}
		if unicode.IsSpace(r) {
			flush()
			continue
		}
		pending.WriteRune(r)
	}
	flush()
	return strings.Join(parts, " ")
}

package fuzzy

import (
	"testing"
)

func TestPinyinKeys(t *testing.T) {
	ix := NewIndex(2, []string{
		"xue xi",
		"lian xi",
		"zhong guo ren",
	})

	ix.Search("xuexi", func(index int, score, low, high uint8) {
		if index == 0 && (score != high || score < 3) {
			t.Error("exact-ish match did not score highest")
		}
		if index == 2 && score == high {
			t.Error("unrelated item scored highest")
		}
	})

	ix.Search("lianxi", func(index int, score, low, high uint8) {
		if index == 1 && score != high {
			t.Error("lian xi should win for lianxi")
		}
	})
}

func TestShortQuery(t *testing.T) {
	ix := NewIndex(2, []string{"ma", "men"})

	ix.Search("ma", func(index int, score, low, high uint8) {
		if index == 0 && score != high {
			t.Error("two-rune query should match its own entry")
		}
		if index == 1 && score != 0 {
			t.Error("no shared bigram, score should be 0")
		}
	})
}

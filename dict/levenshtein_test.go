package dict

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		d    int
	}{
		{"xue xi", "xue xi", 0},
		{"xue xi", "xuexi", 1},
		{"lian xi", "lian x", 1},
		{"hao", "hen hao", 4},
		{"", "ni", 2},
		{"shi", "", 3},
	}

	for _, c := range tests {
		got := Levenshtein([]rune(c.a), []rune(c.b))
		if got != c.d {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.d)
		}
	}
}

var benchS = []rune("学习")
var benchT = []rune("练习")

func BenchmarkLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Levenshtein(benchS, benchT)
	}
}

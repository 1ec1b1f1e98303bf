package dict

import (
	"testing"

	"github.com/frizinak/gohan/hsk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func word(form, pinyin string, level hsk.Level, glosses ...string) *hsk.Word {
	return &hsk.Word{
		Simplified:  form,
		Traditional: form,
		Form:        form,
		Pinyin:      pinyin,
		Key:         hsk.Key(pinyin),
		Gloss:       glosses[0],
		Glosses:     glosses,
		Symbols:     hsk.SplitSymbols(form),
		Level:       level,
	}
}

func testWords() hsk.Words {
	return hsk.Words{
		word("学习", "xué xí", 1, "to study"),
		word("学", "xué", 1, "to learn; school"),
		word("练习", "liàn xí", 2, "to practice"),
	}
}

func TestSymbolIndex(t *testing.T) {
	d := New(testWords(), hsk.Simplified)

	xue, ok := d.Symbol("学")
	require.True(t, ok)
	assert.True(t, xue.Standalone)
	assert.Equal(t, "学 (xué), xue.md", xue.Filename)
	assert.ElementsMatch(t, []string{"to study", "to learn; school"}, xue.Glosses)
	assert.Equal(t, []hsk.Level{1}, xue.Levels)
	assert.Equal(t, []string{"学习", "学"}, xue.Compounds)

	xi, ok := d.Symbol("习")
	require.True(t, ok)
	assert.False(t, xi.Standalone)
	assert.Equal(t, "习.md", xi.Filename)
	assert.ElementsMatch(t, []string{"to study", "to practice"}, xi.Glosses)
	assert.Equal(t, []hsk.Level{1, 2}, xi.Levels)
	assert.Equal(t, []string{"学习", "练习"}, xi.Compounds)

	lian, ok := d.Symbol("练")
	require.True(t, ok)
	assert.False(t, lian.Standalone)
}

func TestSymbolIndexNoDuplicates(t *testing.T) {
	d := New(testWords(), hsk.Simplified)

	seen := make(map[string]int)
	for _, si := range d.Symbols() {
		seen[si.Symbol]++
	}
	for sym, n := range seen {
		assert.Equal(t, 1, n, "symbol %q has %d entries", sym, n)
	}
	assert.Len(t, seen, 3)
}

// The final index must not depend on whether a symbol's defining word
// is seen before or after the words using it.
func TestUpgradeOrderIndependence(t *testing.T) {
	words := testWords()
	reversed := make(hsk.Words, len(words))
	for i := range words {
		reversed[len(words)-1-i] = words[i]
	}

	a := New(words, hsk.Simplified)
	b := New(reversed, hsk.Simplified)

	for _, sa := range a.Symbols() {
		sb, ok := b.Symbol(sa.Symbol)
		require.True(t, ok, "symbol %q missing after reorder", sa.Symbol)
		assert.Equal(t, sa.Standalone, sb.Standalone, "symbol %q", sa.Symbol)
		assert.Equal(t, sa.Filename, sb.Filename, "symbol %q", sa.Symbol)
		assert.ElementsMatch(t, sa.Glosses, sb.Glosses, "symbol %q", sa.Symbol)
		assert.Equal(t, sa.Levels, sb.Levels, "symbol %q", sa.Symbol)
		assert.ElementsMatch(t, sa.Compounds, sb.Compounds, "symbol %q", sa.Symbol)
	}
	assert.Len(t, b.Symbols(), len(a.Symbols()))
}

// Every word touching a symbol must contribute all its glosses.
func TestGlossUnion(t *testing.T) {
	words := testWords()
	d := New(words, hsk.Simplified)

	for _, w := range words {
		for _, sym := range w.Symbols {
			si, ok := d.Symbol(sym)
			require.True(t, ok)
			for _, g := range w.Glosses {
				assert.Contains(t, si.Glosses, g, "symbol %q misses gloss of %q", sym, w.Form)
			}
		}
	}
}

func TestSingleSymbolWord(t *testing.T) {
	d := New(hsk.Words{word("好", "hǎo", 1, "good")}, hsk.Simplified)

	si, ok := d.Symbol("好")
	require.True(t, ok)
	assert.True(t, si.Standalone)
	assert.Equal(t, []string{"好"}, si.Compounds, "a single-symbol word uses itself")
}

func TestResolve(t *testing.T) {
	d := New(testWords(), hsk.Simplified)

	assert.Equal(t, "学 (xué), xue", d.Resolve("学"))
	assert.Equal(t, "习", d.Resolve("习"))
	assert.Equal(t, "某", d.Resolve("某"), "unknown symbols resolve to themselves")
}

func TestDuplicateFormLastWins(t *testing.T) {
	words := hsk.Words{
		word("学", "xué", 1, "first"),
		word("学", "xué", 2, "second"),
	}
	d := New(words, hsk.Simplified)

	w, ok := d.WordByForm("学")
	require.True(t, ok)
	assert.Equal(t, "second", w.Gloss)
}

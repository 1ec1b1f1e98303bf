package dict

import (
	"strings"
	"testing"

	"github.com/frizinak/gohan/hsk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPinyinFuzzy(t *testing.T) {
	d := New(testWords(), hsk.Simplified)

	res := d.SearchPinyinFuzzy("xuexi", 10)
	require.NotEmpty(t, res)
	assert.Equal(t, "学习", res[0].Form)
}

func TestSearchGlossFuzzy(t *testing.T) {
	d := New(testWords(), hsk.Simplified)

	res := d.SearchGlossFuzzy("practise", 10)
	require.NotEmpty(t, res)
	assert.Equal(t, "练习", res[0].Form)
}

// The score floor is derived from the query length; an overlong query
// must not wrap it around to near zero and let one-bigram matches
// through.
func TestSearchFuzzyLongQuery(t *testing.T) {
	d := New(hsk.Words{word("吗", "ma", 1, "question particle")}, hsk.Simplified)

	qry := strings.Repeat("z", 1283) + "ma"
	assert.Empty(t, d.SearchPinyinFuzzy(qry, 10))
	assert.Empty(t, d.SearchGlossFuzzy(qry, 10))
}

package dict

import (
	"sort"
	"strings"
	"unicode"

	"github.com/frizinak/gohan/hsk"
)

const inverseScore = 1<<31 - 1

type Result struct {
	*hsk.Word
	Score int
}

type Results []*Result

func (r Results) Len() int { return len(r) }
func (r Results) Less(i, j int) bool {
	if r[i].Score == r[j].Score {
		if r[i].Level == r[j].Level {
			return r[i].Word.Form < r[j].Word.Form
		}

		return r[i].Level < r[j].Level
	}

	return r[i].Score > r[j].Score
}

func (r Results) Swap(i, j int) { r[i], r[j] = r[j], r[i] }

func (r *Result) Levenshtein(qry string) {
	r.Score = inverseScore - Levenshtein([]rune(r.Word.Form), []rune(qry))
}

func results2words(r []*Result, max int) []*hsk.Word {
	if max == 0 {
		max = 1000
	}
	if max > len(r) {
		max = len(r)
	}
	r = r[:max]
	w := make([]*hsk.Word, len(r))
	for i, r := range r {
		w[i] = r.Word
	}
	return w
}

func (d *Dict) SearchGloss(qry string, max int) []*hsk.Word {
	qry = strings.ToLower(qry)
	results := make(Results, 0)
	for _, w := range d.words {
		if found, ix := w.HasGloss(qry); found {
			results = append(results, &Result{Word: w, Score: inverseScore - ix})
		}
	}

	sort.Sort(results)
	return results2words(results, max)
}

func (d *Dict) SearchHanzi(qry string, max int) []*hsk.Word {
	results := make(Results, 0)
	for _, w := range d.words {
		if strings.Contains(w.Form, qry) || strings.Contains(w.Pinyin, qry) {
			r := &Result{Word: w}
			r.Levenshtein(qry)
			results = append(results, r)
		}
	}

	sort.Sort(results)
	return results2words(results, max)
}

// Search picks hanzi or gloss search based on the script of the query.
// The second return value reports whether the query was treated as
// hanzi.
func (d *Dict) Search(qry string, max int) ([]*hsk.Word, bool) {
	han := 0
	runes := 0
	for _, c := range qry {
		runes++
		if unicode.Is(unicode.Han, c) {
			han++
		}
	}

	if han == 0 || han < runes/2 {
		return d.SearchGloss(qry, max), false
	}

	return d.SearchHanzi(qry, max), true
}

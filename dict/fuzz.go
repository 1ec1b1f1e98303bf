package dict

import (
	"sort"
	"strings"

	"github.com/frizinak/gohan/fuzzy"
	"github.com/frizinak/gohan/hsk"
)

func (d *Dict) InitPinyinFuzzIndex() {
	if d.pfuzz.index != nil {
		return
	}
	d.pfuzz.l.Lock()
	if d.pfuzz.index != nil {
		d.pfuzz.l.Unlock()
		return
	}

	words := make([]*hsk.Word, 0, len(d.words))
	l := make([]string, 0, len(d.words))
	for _, w := range d.words {
		words = append(words, w)
		l = append(l, w.Key)
	}
	d.pfuzz.words = words
	d.pfuzz.index = fuzzy.NewIndex(2, l)
	d.pfuzz.l.Unlock()
}

func (d *Dict) InitGlossFuzzIndex() {
	if d.gfuzz.index != nil {
		return
	}
	d.gfuzz.l.Lock()
	if d.gfuzz.index != nil {
		d.gfuzz.l.Unlock()
		return
	}

	words := make([]*hsk.Word, 0, len(d.words))
	l := make([]string, 0, len(d.words))
	for _, w := range d.words {
		for _, g := range w.Glosses {
			words = append(words, w)
			l = append(l, strings.ToLower(g))
		}
	}
	d.gfuzz.words = words
	d.gfuzz.index = fuzzy.NewIndex(2, l)
	d.gfuzz.l.Unlock()
}

func (d *Dict) GetPinyinFuzz() *fuzzy.Index {
	d.InitPinyinFuzzIndex()
	return d.pfuzz.index
}

func (d *Dict) GetGlossFuzz() *fuzzy.Index {
	d.InitGlossFuzzIndex()
	return d.gfuzz.index
}

func (d *Dict) searchFuzz(f *fuzz, qry string, max int) []*hsk.Word {
	qry = strings.ToLower(qry)
	if len(qry) > 1<<8-1 {
		qry = qry[:1<<8-1]
	}
	minScore := uint8(len(qry) / 5)
	if minScore == 0 {
		minScore = 1
	}

	results := make(Results, 0, max)
	seen := make(map[*hsk.Word]struct{})
	f.index.Search(qry, func(index int, score, low, high uint8) {
		if score < minScore || score != high {
			return
		}
		w := f.words[index]
		if _, ok := seen[w]; ok {
			return
		}
		seen[w] = struct{}{}
		results = append(results, &Result{Word: w, Score: int(score)})
	})

	sort.Sort(results)
	return results2words(results, max)
}

// SearchPinyinFuzzy matches the query against transcription keys with
// the trigram index, e.g. "xuexi" finds 学习.
func (d *Dict) SearchPinyinFuzzy(qry string, max int) []*hsk.Word {
	d.InitPinyinFuzzIndex()
	return d.searchFuzz(&d.pfuzz, hsk.Key(qry), max)
}

// SearchGlossFuzzy matches the query against glosses with the trigram
// index.
func (d *Dict) SearchGlossFuzzy(qry string, max int) []*hsk.Word {
	d.InitGlossFuzzIndex()
	return d.searchFuzz(&d.gfuzz, qry, max)
}

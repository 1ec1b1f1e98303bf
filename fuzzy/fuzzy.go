package fuzzy

import (
	"strings"
)

// Index is an n-gram lookup over a fixed list of strings, used for
// approximate transcription and gloss matching.
type Index struct {
	ngram int
	n     int
	data  map[string][]int
}

func NewIndex(ngram int, items []string) *Index {
	if ngram < 2 {
		ngram = 2
	}
	ix := &Index{
		ngram: ngram,
		n:     len(items),
		data:  make(map[string][]int, len(items)),
	}

	for i, v := range items {
		for _, p := range ix.parts(v) {
			ix.data[p] = append(ix.data[p], i)
		}
	}

	return ix
}

type Include func(index int, score, low, high uint8)

const maxuint8 = 1<<8 - 1

// Search scores every indexed item against q and calls include for each
// with its score and the lowest and highest score of this search.
func (index *Index) Search(q string, include Include) {
	scores := make([]uint8, index.n)
	var min, max uint8 = maxuint8, 0

	for _, part := range index.parts(q) {
		b, ok := index.data[part]
		if !ok {
			continue
		}
		for _, ix := range b {
			v := scores[ix]
			if v != maxuint8 {
				v++
			}
			scores[ix] = v
		}
	}

	for _, score := range scores {
		if score < min || min == maxuint8 {
			min = score
		}
		if score > max {
			max = score
		}
	}

	for i, score := range scores {
		include(i, score, min, max)
	}
}

func (index *Index) parts(q string) []string {
	qs := make([]string, 0, len(q))
	p := strings.Fields(strings.ToLower(strings.TrimSpace(q)))
	for i := range p {
		v := []rune(p[i])
		if len(v) < 2 {
			continue
		}
		if len(v) <= index.ngram {
			qs = append(qs, p[i])
			continue
		}
		for j := 0; j < len(v)-index.ngram+1; j++ {
			qs = append(qs, string(v[j:j+index.ngram]))
		}
	}

	return qs
}

package dict

import (
	"sort"
	"strings"
	"sync"

	"github.com/frizinak/gohan/fuzzy"
	"github.com/frizinak/gohan/hsk"
)

// SymbolInfo aggregates everything known about one distinct hanzi
// across the loaded word set.
type SymbolInfo struct {
	Symbol string

	// Standalone is true iff the symbol equals some word's active form.
	// Once true it never reverts within a run.
	Standalone bool

	// Filename is the owning word's filename when standalone, else the
	// bare-symbol placeholder filename.
	Filename string

	// Glosses is the ordered union of glosses from every word that
	// touches this symbol.
	Glosses []string

	// Levels is the ascending union of levels of those words.
	Levels []hsk.Level

	// Compounds lists every distinct active form containing this
	// symbol, in load order.
	Compounds []string
}

// Note is the link target: the filename minus its extension.
func (s *SymbolInfo) Note() string { return strings.TrimSuffix(s.Filename, ".md") }

type fuzz struct {
	l     sync.Mutex
	words []*hsk.Word
	index *fuzzy.Index
}

type Dict struct {
	words  hsk.Words
	mode   hsk.FormMode
	byForm map[string]*hsk.Word

	symbols map[string]*SymbolInfo
	order   []string

	pfuzz fuzz
	gfuzz fuzz
}

// New builds the dictionary and its symbol index. The index is complete
// when New returns; a Dict is read-only afterwards.
func New(words hsk.Words, mode hsk.FormMode) *Dict {
	d := &Dict{
		words:   words,
		mode:    mode,
		byForm:  make(map[string]*hsk.Word, len(words)),
		symbols: make(map[string]*SymbolInfo),
	}
	d.build()
	return d
}

func (d *Dict) build() {
	// Later duplicates overwrite earlier ones, so the last loaded word
	// owns a shared active form.
	for _, w := range d.words {
		d.byForm[w.Form] = w
	}

	glossSeen := make(map[string]map[string]struct{})
	levelSeen := make(map[string]map[hsk.Level]struct{})
	compSeen := make(map[string]map[string]struct{})

	addGlosses := func(si *SymbolInfo, glosses []string) {
		seen := glossSeen[si.Symbol]
		for _, g := range glosses {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			si.Glosses = append(si.Glosses, g)
		}
	}

	for _, w := range d.words {
		for _, sym := range w.Symbols {
			owner, standalone := d.byForm[sym]

			si, ok := d.symbols[sym]
			if !ok {
				si = &SymbolInfo{Symbol: sym, Filename: sym + ".md"}
				d.symbols[sym] = si
				d.order = append(d.order, sym)
				glossSeen[sym] = make(map[string]struct{})
				levelSeen[sym] = make(map[hsk.Level]struct{})
				compSeen[sym] = make(map[string]struct{})
			}

			if standalone && !si.Standalone {
				si.Standalone = true
				si.Filename = owner.Filename()
				addGlosses(si, owner.Glosses)
			}

			addGlosses(si, w.Glosses)

			if _, ok := levelSeen[sym][w.Level]; !ok {
				levelSeen[sym][w.Level] = struct{}{}
				si.Levels = append(si.Levels, w.Level)
			}
			if _, ok := compSeen[sym][w.Form]; !ok {
				compSeen[sym][w.Form] = struct{}{}
				si.Compounds = append(si.Compounds, w.Form)
			}
		}
	}

	for _, sym := range d.order {
		si := d.symbols[sym]
		sort.Slice(si.Levels, func(i, j int) bool { return si.Levels[i] < si.Levels[j] })
	}
}

// Resolve returns the link target for a symbol: the standalone word's
// note when the symbol is itself a word, else the placeholder note.
// An unknown symbol resolves to itself.
func (d *Dict) Resolve(symbol string) string {
	si, ok := d.symbols[symbol]
	if !ok {
		return symbol
	}
	return si.Note()
}

func (d *Dict) Words() hsk.Words { return d.words }

func (d *Dict) Mode() hsk.FormMode { return d.mode }

func (d *Dict) Symbol(symbol string) (*SymbolInfo, bool) {
	si, ok := d.symbols[symbol]
	return si, ok
}

// Symbols returns every SymbolInfo in first-encounter order.
func (d *Dict) Symbols() []*SymbolInfo {
	l := make([]*SymbolInfo, len(d.order))
	for i, sym := range d.order {
		l[i] = d.symbols[sym]
	}
	return l
}

// WordByForm returns the word owning the given active form.
func (d *Dict) WordByForm(form string) (*hsk.Word, bool) {
	w, ok := d.byForm[form]
	return w, ok
}

// NoteFor returns the note link target for an active form, the form
// itself when unknown.
func (d *Dict) NoteFor(form string) string {
	if w, ok := d.byForm[form]; ok {
		return w.Note()
	}
	return form
}

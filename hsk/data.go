package hsk

import (
	"fmt"
	"strings"
	"unicode"
)

type Level uint8

func (l Level) String() string { return fmt.Sprintf("%d", uint8(l)) }

// Tag is the note tag token for a level, e.g. "#hsk3".
// Level 7 covers the HSK 7-9 band.
func (l Level) Tag() string { return fmt.Sprintf("#hsk%d", uint8(l)) }

const (
	MinLevel Level = 1
	MaxLevel Level = 7
)

func (l Level) Valid() bool { return l >= MinLevel && l <= MaxLevel }

// AllLevels returns 1 through 7 ascending.
func AllLevels() []Level {
	l := make([]Level, 0, MaxLevel-MinLevel+1)
	for i := MinLevel; i <= MaxLevel; i++ {
		l = append(l, i)
	}
	return l
}

type FormMode uint8

const (
	Simplified FormMode = iota
	Traditional
)

func (m FormMode) String() string {
	if m == Traditional {
		return "traditional"
	}
	return "simplified"
}

func ParseForm(s string) (FormMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "simplified", "s":
		return Simplified, nil
	case "traditional", "t":
		return Traditional, nil
	}
	return Simplified, fmt.Errorf("unknown form %q", s)
}

type Words []*Word

type Word struct {
	Simplified  string
	Traditional string

	// Form is the active orthographic variant for this run, chosen
	// at load time per FormMode.
	Form string

	Pinyin string
	Key    string

	Gloss   string
	Glosses []string

	// Symbols is Form split into single hanzi, whitespace dropped.
	Symbols []string

	Level Level

	glossMap map[string]int
}

func (w *Word) Filename() string {
	return fmt.Sprintf("%s (%s), %s.md", w.Form, w.Pinyin, w.Key)
}

// Note is the link target for this word: its filename minus the extension.
func (w *Word) Note() string {
	return fmt.Sprintf("%s (%s), %s", w.Form, w.Pinyin, w.Key)
}

func (w *Word) HasGloss(qry string) (bool, int) {
	if w.glossMap == nil {
		w.glossMap = make(map[string]int)
		for i, g := range w.Glosses {
			for _, part := range strings.Split(g, ";") {
				k := strings.ToLower(strings.TrimSpace(part))
				if k == "" {
					continue
				}
				if _, ok := w.glossMap[k]; ok {
					continue
				}
				w.glossMap[k] = i
			}
		}
	}
	n, ok := w.glossMap[qry]
	return ok, n
}

func (w *Word) String() string {
	return fmt.Sprintf("%s (%s) %s", w.Form, w.Pinyin, w.Gloss)
}

// SplitSymbols splits a written form into its atomic symbols,
// dropping whitespace.
func SplitSymbols(form string) []string {
	s := make([]string, 0, len(form)/3)
	for _, r := range form {
		if unicode.IsSpace(r) {
			continue
		}
		s = append(s, string(r))
	}
	return s
}

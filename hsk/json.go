package hsk

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

type rawForm struct {
	Traditional    string `json:"traditional"`
	Transcriptions struct {
		Pinyin  string `json:"pinyin"`
		Numeric string `json:"numeric"`
	} `json:"transcriptions"`
	Meanings []string `json:"meanings"`
}

type rawWord struct {
	Simplified string    `json:"simplified"`
	POS        []string  `json:"pos"`
	Frequency  uint64    `json:"frequency"`
	Forms      []rawForm `json:"forms"`
}

// DecodeWords parses one level's JSON word list. Records without forms,
// or whose first form carries no meanings, are skipped and counted, not
// fatal.
func DecodeWords(r io.Reader, level Level, mode FormMode) (Words, int, error) {
	var raw []rawWord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, 0, fmt.Errorf("hsk level %s: %w", level, err)
	}

	words := make(Words, 0, len(raw))
	skipped := 0
	for _, rw := range raw {
		w, ok := newWord(rw, level, mode)
		if !ok {
			skipped++
			continue
		}
		words = append(words, w)
	}

	return words, skipped, nil
}

func newWord(rw rawWord, level Level, mode FormMode) (*Word, bool) {
	if rw.Simplified == "" || len(rw.Forms) == 0 {
		return nil, false
	}
	first := rw.Forms[0]
	if len(first.Meanings) == 0 {
		return nil, false
	}

	trad := first.Traditional
	if trad == "" {
		trad = rw.Simplified
	}

	glosses := make([]string, 0, len(first.Meanings))
	seen := make(map[string]struct{}, len(first.Meanings))
	for _, f := range rw.Forms {
		for _, m := range f.Meanings {
			if m == "" {
				continue
			}
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			glosses = append(glosses, m)
		}
	}

	w := &Word{
		Simplified:  rw.Simplified,
		Traditional: trad,
		Pinyin:      first.Transcriptions.Pinyin,
		Key:         Key(first.Transcriptions.Pinyin),
		Gloss:       glosses[0],
		Glosses:     glosses,
		Level:       level,
	}

	w.Form = w.Simplified
	if mode == Traditional {
		w.Form = w.Traditional
	}
	w.Symbols = SplitSymbols(w.Form)

	return w, true
}

// Filename of one level's dataset, e.g. "hsk3.json".
func LevelFile(dir string, level Level) string {
	return filepath.Join(dir, fmt.Sprintf("hsk%s.json", level))
}

// Load reads every requested level from dir in ascending level order.
// A level whose file is missing or corrupt is skipped with a warning;
// only all levels failing is an error. The returned word order is load
// order, the second value the total skipped-record count.
func Load(log *slog.Logger, dir string, levels []Level, mode FormMode) (Words, int, error) {
	var words Words
	skipped := 0
	loaded := 0

	for _, lvl := range levels {
		f, err := os.Open(LevelFile(dir, lvl))
		if err != nil {
			log.Warn("skipping level", "level", lvl.String(), "err", err)
			continue
		}
		w, s, err := DecodeWords(f, lvl, mode)
		f.Close()
		if err != nil {
			log.Warn("skipping level", "level", lvl.String(), "err", err)
			continue
		}

		words = append(words, w...)
		skipped += s
		loaded++
	}

	if loaded == 0 {
		return nil, skipped, fmt.Errorf("no dataset could be loaded from %s", dir)
	}

	return words, skipped, nil
}

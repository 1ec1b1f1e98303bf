package vault

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/frizinak/gohan/dict"
	"github.com/frizinak/gohan/hsk"
	"github.com/frizinak/gohan/note"
)

const ext = ".md"

// Write materializes the vault: one note per word, one placeholder note
// per non-standalone symbol, then removes every other note file from
// dir so the directory matches the generated set exactly. A single
// failed write or delete is a warning, not an abort. Returns the number
// of files written and the number of stale notes removed.
func Write(log *slog.Logger, words hsk.Words, d *dict.Dict, dir string) (int, int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, 0, fmt.Errorf("create vault dir: %w", err)
	}

	r := note.New(d)
	valid := make(map[string]struct{}, len(words))
	written := 0

	for _, w := range words {
		name := w.Filename()
		if err := writeFile(filepath.Join(dir, name), r.Word(w)); err != nil {
			log.Warn("could not write word note", "file", name, "err", err)
			continue
		}
		valid[name] = struct{}{}
		written++
	}

	for _, si := range d.Symbols() {
		if si.Standalone {
			continue
		}
		name := si.Filename
		if err := writeFile(filepath.Join(dir, name), r.Symbol(si)); err != nil {
			log.Warn("could not write symbol note", "file", name, "err", err)
			continue
		}
		valid[name] = struct{}{}
		written++
	}

	removed, err := reconcile(log, dir, valid)
	if err != nil {
		return written, removed, err
	}

	return written, removed, nil
}

// reconcile deletes every note file in dir that this run did not
// produce, so placeholders from earlier runs cannot shadow notes whose
// symbol has since become a standalone word.
func reconcile(log *slog.Logger, dir string, valid map[string]struct{}) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("list vault dir: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		if _, ok := valid[e.Name()]; ok {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			log.Warn("could not remove stale note", "file", e.Name(), "err", err)
			continue
		}
		log.Debug("removed stale note", "file", e.Name())
		removed++
	}

	return removed, nil
}

func writeFile(path, body string) error {
	tmp := fmt.Sprintf("%s.%d.tmp", path, time.Now().UnixNano())
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(body); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	f.Close()
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

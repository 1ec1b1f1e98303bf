package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/frizinak/gohan/common"
	"github.com/frizinak/gohan/hsk"
)

func exit(err error) {
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// Precompiles the JSON dataset into a single words.gob so gohanweb
// starts without parsing JSON.
func main() {
	var confPath string
	var form string
	flag.StringVar(&confPath, "c", "", "config file")
	flag.StringVar(&form, "form", "", "written form: simplified or traditional")
	flag.Parse()

	cfg, err := common.LoadConfig(confPath)
	exit(err)
	if form != "" {
		cfg.Form = form
	}

	log := common.NewLogger(cfg.Log)

	mode, err := hsk.ParseForm(cfg.Form)
	exit(err)

	words, skipped, err := hsk.Load(log, cfg.DataDir, hsk.AllLevels(), mode)
	exit(err)

	os.MkdirAll(filepath.Dir(cfg.GOBPath), 0700)
	exit(hsk.StoreGOB(cfg.GOBPath, words))

	log.Info("compiled", "file", cfg.GOBPath, "words", len(words), "skipped", skipped)
}

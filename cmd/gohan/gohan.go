package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/frizinak/gohan/common"
	"github.com/frizinak/gohan/dict"
	"github.com/frizinak/gohan/hsk"
	"github.com/frizinak/gohan/vault"
	"github.com/mattn/go-isatty"
)

func exit(err error) {
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	var confPath string
	var dataDir string
	var vaultDir string
	var levels string
	var form string
	var noPrompt bool
	flag.StringVar(&confPath, "c", "", "config file")
	flag.StringVar(&dataDir, "data", "", "dataset directory (one hsk<level>.json per level)")
	flag.StringVar(&vaultDir, "out", "", "vault output directory")
	flag.StringVar(&levels, "levels", "", "level selection: 2-4, 1,3,5 or 6 (empty = all)")
	flag.StringVar(&form, "form", "", "written form: simplified or traditional")
	flag.BoolVar(&noPrompt, "ni", false, "never prompt, use flags/config/defaults")
	flag.Parse()

	cfg, err := common.LoadConfig(confPath)
	exit(err)
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if vaultDir != "" {
		cfg.VaultDir = vaultDir
	}
	if levels != "" {
		cfg.Levels = levels
	}
	if form != "" {
		cfg.Form = form
	}

	log := common.NewLogger(cfg.Log)

	interactive := !noPrompt && isatty.IsTerminal(os.Stdin.Fd())
	if levels == "" && cfg.Levels == "" && interactive {
		cfg.Levels, err = promptLevels()
		exit(err)
	}
	if form == "" && interactive {
		cfg.Form, err = promptForm(cfg.Form)
		exit(err)
	}

	mode, err := hsk.ParseForm(cfg.Form)
	exit(err)
	sel := hsk.ParseLevels(cfg.Levels)

	words, skipped, err := hsk.Load(log, cfg.DataDir, sel, mode)
	exit(err)
	if skipped != 0 {
		log.Warn("records skipped", "n", skipped)
	}

	d := dict.New(words, mode)

	written, removed, err := vault.Write(log, words, d, cfg.VaultDir)
	exit(err)

	log.Info(
		"vault generated",
		"dir", cfg.VaultDir,
		"form", mode.String(),
		"words", len(words),
		"symbols", len(d.Symbols()),
		"written", written,
		"removed", removed,
		"skipped", skipped,
	)
}

package main

import (
	"github.com/charmbracelet/huh"
)

// The prompts are a thin adapter: they only fill in config values, the
// pipeline itself never reads the terminal.

func promptLevels() (string, error) {
	var sel string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("HSK levels").
			Description("a range (2-4), a list (1,3,5) or a single level; empty for all").
			Value(&sel),
	))

	return sel, form.Run()
}

func promptForm(def string) (string, error) {
	sel := def
	if sel == "" {
		sel = "simplified"
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Written form").
			Options(huh.NewOptions("simplified", "traditional")...).
			Value(&sel),
	))

	return sel, form.Run()
}

package common

import (
	"github.com/frizinak/gohan/dict"
	"github.com/frizinak/gohan/hsk"
)

var dct *dict.Dict

// GetDict loads the precompiled word list once and keeps the built
// dictionary around for the web handlers.
func GetDict(gobPath string, mode hsk.FormMode) (*dict.Dict, error) {
	if dct != nil {
		return dct, nil
	}

	words, err := hsk.LoadGOB(gobPath)
	if err != nil {
		return nil, err
	}

	dct = dict.New(words, mode)
	return dct, nil
}

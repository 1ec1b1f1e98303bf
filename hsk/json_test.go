package hsk

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `[
	{
		"simplified": "学习",
		"forms": [
			{
				"traditional": "學習",
				"transcriptions": {"pinyin": "xué xí"},
				"meanings": ["to study", "to learn"]
			}
		]
	},
	{
		"simplified": "破",
		"forms": []
	},
	{
		"simplified": "累",
		"forms": [
			{
				"traditional": "累",
				"transcriptions": {"pinyin": "lèi"},
				"meanings": []
			}
		]
	},
	{
		"simplified": "学",
		"forms": [
			{
				"traditional": "學",
				"transcriptions": {"pinyin": "xué"},
				"meanings": ["to learn; school"]
			}
		]
	}
]`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDecodeWords(t *testing.T) {
	words, skipped, err := DecodeWords(strings.NewReader(sample), 1, Simplified)
	require.NoError(t, err)

	assert.Equal(t, 2, skipped, "formless and glossless records are skipped")
	require.Len(t, words, 2)

	w := words[0]
	assert.Equal(t, "学习", w.Form)
	assert.Equal(t, "學習", w.Traditional)
	assert.Equal(t, "xué xí", w.Pinyin)
	assert.Equal(t, "xue xi", w.Key)
	assert.Equal(t, "to study", w.Gloss)
	assert.Equal(t, []string{"to study", "to learn"}, w.Glosses)
	assert.Equal(t, []string{"学", "习"}, w.Symbols)
	assert.Equal(t, Level(1), w.Level)
	assert.Equal(t, "学习 (xué xí), xue xi.md", w.Filename())
}

func TestDecodeWordsTraditional(t *testing.T) {
	words, _, err := DecodeWords(strings.NewReader(sample), 2, Traditional)
	require.NoError(t, err)
	require.Len(t, words, 2)

	assert.Equal(t, "學習", words[0].Form)
	assert.Equal(t, []string{"學", "習"}, words[0].Symbols)
	assert.Equal(t, "學習 (xué xí), xue xi.md", words[0].Filename())
}

func TestDecodeWordsInvalidJSON(t *testing.T) {
	_, _, err := DecodeWords(strings.NewReader("{not json"), 1, Simplified)
	assert.Error(t, err)
}

func TestLoadSkipsBrokenLevels(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(LevelFile(dir, 1), []byte(sample), 0600))
	require.NoError(t, os.WriteFile(LevelFile(dir, 2), []byte("garbage"), 0600))

	words, skipped, err := Load(testLogger(), dir, []Level{1, 2, 3}, Simplified)
	require.NoError(t, err, "one loadable level is enough")
	assert.Len(t, words, 2)
	assert.Equal(t, 2, skipped)
}

func TestLoadAllLevelsMissing(t *testing.T) {
	_, _, err := Load(testLogger(), t.TempDir(), []Level{1, 2}, Simplified)
	assert.Error(t, err)
}

func TestGOBRoundtrip(t *testing.T) {
	words, _, err := DecodeWords(strings.NewReader(sample), 1, Simplified)
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "words.gob")
	require.NoError(t, StoreGOB(file, words))

	loaded, err := LoadGOB(file)
	require.NoError(t, err)
	require.Len(t, loaded, len(words))
	assert.Equal(t, words[0].Filename(), loaded[0].Filename())
	assert.Equal(t, words[0].Glosses, loaded[0].Glosses)
	assert.Equal(t, words[0].Symbols, loaded[0].Symbols)
}

package hsk

import (
	"strconv"
	"strings"
)

// ParseLevels interprets a level selection: a dash range ("2-4"), a
// comma list ("1,3,5") or a single level ("6"). Values are clamped to
// the valid domain; an empty or fully invalid selection yields all
// levels.
func ParseLevels(s string) []Level {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllLevels()
	}

	if from, to, ok := strings.Cut(s, "-"); ok {
		lo, err1 := strconv.Atoi(strings.TrimSpace(from))
		hi, err2 := strconv.Atoi(strings.TrimSpace(to))
		if err1 != nil || err2 != nil {
			return AllLevels()
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo < int(MinLevel) {
			lo = int(MinLevel)
		}
		if hi > int(MaxLevel) {
			hi = int(MaxLevel)
		}
		if lo > int(MaxLevel) || hi < int(MinLevel) {
			return AllLevels()
		}
		l := make([]Level, 0, hi-lo+1)
		for i := lo; i <= hi; i++ {
			l = append(l, Level(i))
		}
		return l
	}

	seen := make(map[Level]struct{}, MaxLevel)
	l := make([]Level, 0, MaxLevel)
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		lvl := Level(n)
		if !lvl.Valid() {
			continue
		}
		if _, ok := seen[lvl]; ok {
			continue
		}
		seen[lvl] = struct{}{}
		l = append(l, lvl)
	}

	if len(l) == 0 {
		return AllLevels()
	}
	return l
}

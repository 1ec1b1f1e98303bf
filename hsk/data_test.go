package hsk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSymbols(t *testing.T) {
	tests := []struct {
		in  string
		exp []string
	}{
		{"学习", []string{"学", "习"}},
		{"好", []string{"好"}},
		{"干 杯", []string{"干", "杯"}},
		{"干　杯", []string{"干", "杯"}},
		{"中\t国\n", []string{"中", "国"}},
		{"", []string{}},
	}

	for _, d := range tests {
		assert.Equal(t, d.exp, SplitSymbols(d.in), "form %q", d.in)
	}
}

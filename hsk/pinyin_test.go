package hsk

import "testing"

func TestKey(t *testing.T) {
	tests := []struct {
		in  string
		exp string
	}{
		{"xué xí", "xue xi"},
		{"XUÉ", "xue"},
		{"lǜ sè", "lu se"},
		{"nǚ'ér", "nuer"},
		{" hǎo,  ma ", "hao ma"},
		{"zhōng guó", "zhong guo"},
		{"", ""},
	}

	for _, d := range tests {
		if got := Key(d.in); got != d.exp {
			t.Errorf("Key(%q) = %q, expected %q", d.in, got, d.exp)
		}
	}
}

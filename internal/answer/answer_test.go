package answer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim and lower", "  Tokyo ", "tokyo"},
		{"upper", "TOKYO", "tokyo"},
		{"full-width latin folds", "Ｔｏｋｙｏ", "tokyo"},
		{"full-width digits fold", "４２", "42"},
		{"half-width katakana folds to full", "ｻﾙ", "サル"},
		{"hiragana unchanged", "さる", "さる"},
		{"katakana stays katakana", "サル", "サル"},
		{"ideographic space trimmed", "　答え　", "答え"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCheckCaseAndWhitespaceInsensitive(t *testing.T) {
	answers := []string{"Tokyo"}
	for _, in := range []string{"Tokyo", " tokyo ", "TOKYO", "ｔｏｋｙｏ"} {
		res := Check(answers, in)
		if !res.IsCorrect {
			t.Errorf("Check(%q): expected correct", in)
		}
		if res.MatchedAnswer != "Tokyo" {
			t.Errorf("Check(%q): matched %q, want %q", in, res.MatchedAnswer, "Tokyo")
		}
	}
}

func TestCheckKanaScriptsAreDistinct(t *testing.T) {
	answers := []string{"猿", "サル"}

	if res := Check(answers, "さる"); res.IsCorrect {
		t.Error("hiragana input must not match katakana answer")
	}
	res := Check(answers, "サル")
	if !res.IsCorrect || res.MatchedAnswer != "サル" {
		t.Errorf("katakana input: got %+v", res)
	}
}

func TestCheckFirstMatchWins(t *testing.T) {
	res := Check([]string{"42", "４２"}, "42")
	if !res.IsCorrect || res.MatchedAnswer != "42" {
		t.Errorf("got %+v", res)
	}
}

func TestCheckNoMatch(t *testing.T) {
	res := Check([]string{"Tokyo"}, "Osaka")
	if res.IsCorrect {
		t.Error("expected incorrect")
	}
	if res.MatchedAnswer != "" {
		t.Errorf("matched = %q, want empty", res.MatchedAnswer)
	}
	if res.NormalizedInput != "osaka" {
		t.Errorf("normalized = %q", res.NormalizedInput)
	}
}

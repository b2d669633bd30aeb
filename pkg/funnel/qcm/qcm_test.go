package qcm

import "testing"

var wealthOptions = []string{
	"moins de 100 000 euros",
	"entre 100 000 et 300 000 euros",
	"entre 300 000 et 1 million d'euros",
	"plus de 1 million d'euros",
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{
			name:   "exact option",
			answer: "moins de 100 000 euros",
			want:   "moins de 100 000 euros",
		},
		{
			name:   "option inside a sentence",
			answer: "je dirais entre 100 000 et 300 000 euros environ",
			want:   "entre 100 000 et 300 000 euros",
		},
		{
			name:   "case insensitive",
			answer: "MOINS DE 100 000 EUROS",
			want:   "moins de 100 000 euros",
		},
		{
			name:   "no option mentioned",
			answer: "je ne sais pas trop",
			want:   "",
		},
		{
			name:   "earliest mention wins",
			answer: "plus de 1 million d'euros, enfin non, moins de 100 000 euros",
			want:   "plus de 1 million d'euros",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.answer, wealthOptions); got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.answer, got, tt.want)
			}
		})
	}
}

func TestMatchAccentInsensitive(t *testing.T) {
	options := []string{"préparer ma retraite", "réduire mes impôts"}
	if got := Match("je veux preparer ma retraite", options); got != "préparer ma retraite" {
		t.Errorf("accent folding failed: got %q", got)
	}
}

func TestRecordFirstAnswerWins(t *testing.T) {
	p := NewProgress()
	p.Record("patrimoine_financier", "moins de 100 000 euros")
	p.Record("patrimoine_financier", "plus de 1 million d'euros")

	if p["patrimoine_financier"] != "moins de 100 000 euros" {
		t.Errorf("first answer overwritten: %q", p["patrimoine_financier"])
	}
}

func TestRecordIgnoresEmpty(t *testing.T) {
	p := NewProgress()
	p.Record("telephone", "")
	if p.Answered("telephone") {
		t.Error("empty answer should not mark the key answered")
	}
}

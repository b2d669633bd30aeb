package qcm

import (
	"strings"
	"unicode"
)

// Progress maps a question key to the recorded answer. A key that is absent
// (or empty) has not been answered; once a key holds a non-empty value it is
// never re-prompted.
type Progress map[string]string

func NewProgress() Progress {
	return Progress{}
}

func (p Progress) Answered(key string) bool {
	return p[key] != ""
}

// Record stores an answer for a key, first answer wins.
func (p Progress) Record(key, answer string) {
	if answer == "" || p.Answered(key) {
		return
	}
	p[key] = answer
}

// Match finds which option of a closed catalog the free-text answer refers
// to. Matching is case- and accent-insensitive substring search; when several
// options occur in the answer, the one found at the earliest position wins.
// An empty return means no option matched and the stage should be re-asked.
func Match(answer string, options []string) string {
	normalized := normalize(answer)

	best := ""
	bestPos := -1
	for _, option := range options {
		pos := strings.Index(normalized, normalize(option))
		if pos < 0 {
			continue
		}
		if bestPos < 0 || pos < bestPos {
			best = option
			bestPos = pos
		}
	}
	return best
}

// normalize lowercases and strips the accents that French answers
// inevitably vary on ("préparer" vs "preparer").
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'à', 'â', 'ä':
			r = 'a'
		case 'é', 'è', 'ê', 'ë':
			r = 'e'
		case 'î', 'ï':
			r = 'i'
		case 'ô', 'ö':
			r = 'o'
		case 'ù', 'û', 'ü':
			r = 'u'
		case 'ç':
			r = 'c'
		}
		if unicode.IsSpace(r) {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

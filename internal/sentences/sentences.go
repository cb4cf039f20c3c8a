// Package sentences supplies the demo program with random lines of text.
package sentences

import (
	_ "embed"
	"math/rand/v2"
	"regexp"
	"strings"
)

//go:embed corpus.txt
var corpus string

var lineBreaks = regexp.MustCompile(`\s*\n+\s*`)

type Picker struct {
	lines []string
	rnd   *rand.Rand
}

// NewPicker splits text into non-empty lines. An empty text uses the
// embedded corpus.
func NewPicker(text string, rnd *rand.Rand) *Picker {
	if text == "" {
		text = corpus
	}
	var lines []string
	for _, l := range lineBreaks.Split(text, -1) {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Picker{lines: lines, rnd: rnd}
}

func (p *Picker) Len() int {
	return len(p.lines)
}

// Pick returns a random line cut to at most maxLen runes. maxLen <= 0 means
// no limit.
func (p *Picker) Pick(maxLen int) string {
	if len(p.lines) == 0 {
		return ""
	}
	return Truncate(p.lines[p.rnd.IntN(len(p.lines))], maxLen)
}

func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

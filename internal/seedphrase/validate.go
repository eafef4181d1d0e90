// Package seedphrase validates mnemonic seed phrases against a word list
// and suggests corrections for likely typos. The word list is substitutable
// (WithWordlist); the suggestion heuristic is fixed Levenshtein distance.
// This package ships a bundled sample list alongside the validation contract.
package seedphrase

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty is returned for a phrase with no words.
var ErrEmpty = errors.New("seedphrase: empty seed phrase")

// ErrWordTooShort flags a word implausibly short to be a real BIP39 word.
var ErrWordTooShort = errors.New("seedphrase: word too short")

// standardLengths are the canonical BIP39 mnemonic word counts.
var standardLengths = map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}

// Validator checks seed phrases against an injected word list. New uses the
// bundled sampleWordlist; the zero Validator has an empty word list, so it
// reports every word as unknown and suggests nothing.
type Validator struct {
	words map[string]struct{}
	list  []string
}

// New constructs a Validator over the bundled sample word list.
func New() *Validator {
	return WithWordlist(sampleWordlist)
}

// WithWordlist constructs a Validator over a caller-supplied word list,
// letting a deployment substitute the full canonical BIP39 list.
func WithWordlist(words []string) *Validator {
	v := &Validator{words: make(map[string]struct{}, len(words)), list: words}
	for _, w := range words {
		v.words[w] = struct{}{}
	}
	return v
}

// Result reports the outcome of validating one seed phrase.
type Result struct {
	WordCount       int
	NonstandardLen  bool // true if WordCount isn't one of 12/15/18/21/24
	UnknownWords    []string
	Suggestions     map[string][]string // unknown word -> up to 3 nearest word-list matches
}

// Validate checks a phrase's words against the word list. It never fails
// for a nonstandard word count (that is only flagged via NonstandardLen,
// a warn-don't-reject behavior) but does fail for an empty phrase or an
// implausibly short word.
func (v *Validator) Validate(phrase string) (Result, error) {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return Result{}, ErrEmpty
	}

	res := Result{
		WordCount:      len(words),
		NonstandardLen: !standardLengths[len(words)],
		Suggestions:    map[string][]string{},
	}

	for _, w := range words {
		if len(w) < 2 {
			return Result{}, fmt.Errorf("%w: %q", ErrWordTooShort, w)
		}
		lower := strings.ToLower(w)
		if _, ok := v.words[lower]; !ok {
			res.UnknownWords = append(res.UnknownWords, w)
			res.Suggestions[w] = v.Suggest(lower, 3)
		}
	}

	return res, nil
}

// Suggest returns up to max word-list entries nearest to word by Levenshtein
// edit distance, closest first.
func (v *Validator) Suggest(word string, max int) []string {
	type scored struct {
		word string
		dist int
	}
	candidates := make([]scored, 0, len(v.list))
	for _, w := range v.list {
		candidates = append(candidates, scored{w, levenshtein(word, w)})
	}
	// Simple selection sort over a small list; the word list is at most a
	// few thousand entries and this runs once per unknown word.
	for i := 0; i < len(candidates) && i < max; i++ {
		minIdx := i
		for j := i + 1; j < len(candidates); j++ {
			if candidates[j].dist < candidates[minIdx].dist {
				minIdx = j
			}
		}
		candidates[i], candidates[minIdx] = candidates[minIdx], candidates[i]
	}
	n := max
	if n > len(candidates) {
		n = len(candidates)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = candidates[i].word
	}
	return out
}

// levenshtein computes the edit distance between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

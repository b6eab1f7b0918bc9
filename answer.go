package main

import (
	"bytes"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

type AnswerKind int

const (
	AnswerSingle AnswerKind = iota
	AnswerMultiple
)

// Answer is what a user picked for one question: one letter for a
// single-choice question, a set of letters for a multiple-choice one.
// On the wire a single answer is "A" and a multiple answer is ["A","D"].
type Answer struct {
	Kind    AnswerKind
	Letters []string
}

type Answers map[int]Answer

func Single(letter string) Answer {
	return Answer{Kind: AnswerSingle, Letters: []string{normalizeLetter(letter)}}
}

func Multiple(letters ...string) Answer {
	out := make([]string, 0, len(letters))
	for _, l := range letters {
		out = append(out, normalizeLetter(l))
	}
	return Answer{Kind: AnswerMultiple, Letters: out}
}

// Key returns the letters sorted and joined ("DA" -> "AD").
func (a Answer) Key() string {
	return sortedKey(a.Letters)
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Kind == AnswerSingle {
		letter := ""
		if len(a.Letters) > 0 {
			letter = a.Letters[0]
		}
		return json.Marshal(letter)
	}
	letters := a.Letters
	if letters == nil {
		letters = []string{}
	}
	return json.Marshal(letters)
}

func (a *Answer) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var letters []string
		if err := json.Unmarshal(b, &letters); err != nil {
			return err
		}
		*a = Multiple(letters...)
		return nil
	}
	var letter string
	if err := json.Unmarshal(b, &letter); err != nil {
		return err
	}
	*a = Single(letter)
	return nil
}

// Clone copies the answers so snapshots never alias live session state.
func (as Answers) Clone() Answers {
	out := make(Answers, len(as))
	for n, a := range as {
		out[n] = Answer{Kind: a.Kind, Letters: append([]string(nil), a.Letters...)}
	}
	return out
}

func normalizeLetter(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func sortedKey(letters []string) string {
	cp := make([]string, len(letters))
	for i, l := range letters {
		cp[i] = normalizeLetter(l)
	}
	sort.Strings(cp)
	return strings.Join(cp, "")
}

// splitLetters turns a canonical answer such as "AD" into ["A","D"].
func splitLetters(answer string) []string {
	answer = normalizeLetter(answer)
	out := make([]string, 0, len(answer))
	for _, r := range answer {
		out = append(out, string(r))
	}
	return out
}

// Package parser tokenises monkeyislang source lines into Commands and
// streams them from either a file/REPL line source or a previously
// captured command slice (the latter is how ProgramBlock bodies replay).
package parser

import (
	"strings"

	"github.com/cthulahoops/monkeyislang/diag"
)

// Command is the result of parsing one source line: {verb, direct,
// indirect}. HasIndirect distinguishes "no preposition supplied" from "the
// indirect object happens to be the empty string", which never occurs in
// practice but keeps the zero value honest.
type Command struct {
	Verb        string
	Direct      string
	Indirect    string
	HasIndirect bool
}

// Verbs is the fixed vocabulary the language recognises. Only "use" and
// "look at" carry runtime behaviour; "open" and "close" are handled at the
// dispatcher level; the rest parse but are no-ops (§4.1, §9 "Unused verbs").
var Verbs = map[string]bool{
	"open": true, "close": true, "push": true, "pull": true,
	"walk to": true, "pick up": true, "talk to": true, "give": true,
	"use": true, "look at": true, "turn on": true, "turn off": true,
}

// prepositions maps a verb to the word that splits its remainder into
// direct and indirect objects.
var prepositions = map[string]string{
	"give": "to",
	"use":  "with",
}

// ParseLine tokenises a single non-empty, non-comment line.
func ParseLine(line string) (Command, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return Command{}, diag.Parse("Invalid action %q", line)
	}

	verb, rest, ok := resolveVerb(words)
	if !ok {
		return Command{}, diag.Parse("Invalid action %v", words)
	}

	preposition, split := prepositions[verb]
	if !split || len(rest) == 0 {
		return Command{Verb: verb, Direct: strings.Join(rest, " ")}, nil
	}

	index := indexOf(rest, preposition)
	if index < 0 {
		return Command{Verb: verb, Direct: strings.Join(rest, " ")}, nil
	}

	return Command{
		Verb:        verb,
		Direct:      strings.Join(rest[:index], " "),
		Indirect:    strings.Join(rest[index+1:], " "),
		HasIndirect: true,
	}, nil
}

// resolveVerb takes a single word verb if known, else the first two words
// joined by a space if that's known, per §4.1 step 2.
func resolveVerb(words []string) (verb string, rest []string, ok bool) {
	if Verbs[words[0]] {
		return words[0], words[1:], true
	}
	if len(words) >= 2 {
		two := words[0] + " " + words[1]
		if Verbs[two] {
			return two, words[2:], true
		}
	}
	return "", nil, false
}

func indexOf(words []string, target string) int {
	for i, w := range words {
		if w == target {
			return i
		}
	}
	return -1
}

// IsComment reports whether a raw (untrimmed) source line should be skipped:
// blank, or starting with '#' once leading whitespace is stripped.
func IsComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

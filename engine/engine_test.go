package engine

import (
	"strings"
	"testing"
)

func runScript(t *testing.T, script string) string {
	t.Helper()
	var out strings.Builder
	if err := RunFile(strings.NewReader(script), &out, nil); err != nil {
		t.Fatalf("RunFile: %v\noutput so far:\n%s", err, out.String())
	}
	return out.String()
}

func TestConditionalBlockRunsOnTruthyScales(t *testing.T) {
	script := `
open true_branch
look at pieces o' eight
close true_branch
use scales with pieces o' eight
use true_branch with scales
`
	want := "It's a 1 pieces o' eight\n"
	if got := runScript(t, script); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestChromaticTriplicationProducesThreeColors(t *testing.T) {
	script := `
use chromatic triplicator with pieces o' eight
look at red pieces o' eight
look at green pieces o' eight
look at blue pieces o' eight
`
	want := "It's a red 1 pieces o' eight\n" +
		"It's a green 1 pieces o' eight\n" +
		"It's a blue 1 pieces o' eight\n"
	if got := runScript(t, script); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCallModeClosesOverTheDefiningScopeEndToEnd(t *testing.T) {
	script := `
use chromatic triplicator with pieces o' eight
open stash
use green pieces o' eight with shovel
close stash
use bottles o' grog with stash
look at green pieces o' eight
`
	want := "It's a green 1 pieces o' eight\n"
	if got := runScript(t, script); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRecursiveFactorialOfThree(t *testing.T) {
	script := `
open factorial
use n-licator creator with mysterious object
use mysterious object with bottles o' grog
use scales with mysterious object
open recursive_case
use chromatic triplicator with pieces o' eight
use factorial with mysterious object
use n-licator with mysterious object
use mysterious object with shovel
close recursive_case
open base_case
use pieces o' eight with shovel
close base_case
use recursive_case with scales
use dishonest shopkeeper with scales
use base_case with scales
close factorial
use chromatic triplicator with pieces o' eight
use red pieces o' eight with green pieces o' eight
use red pieces o' eight with blue pieces o' eight
use factorial with red pieces o' eight
look at red pieces o' eight
`
	want := "It's a red 6 pieces o' eight\n"
	if got := runScript(t, script); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

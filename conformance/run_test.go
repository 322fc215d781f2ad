package conformance

import (
	"strings"
	"testing"

	"github.com/cthulahoops/monkeyislang/engine"
)

func TestScenarios(t *testing.T) {
	scenarios, err := Load("../testdata/conformance")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(scenarios) == 0 {
		t.Fatalf("no scenarios found")
	}

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			var out strings.Builder
			if err := engine.RunFile(strings.NewReader(sc.Script), &out, nil); err != nil {
				t.Fatalf("RunFile: %v\noutput so far:\n%s", err, out.String())
			}
			if got := out.String(); got != sc.ExpectStdout {
				t.Errorf("stdout mismatch for %q\n got: %q\nwant: %q", sc.Name, got, sc.ExpectStdout)
			}
		})
	}
}

package parser

import "testing"

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantCmd  Command
		wantErr  bool
	}{
		{
			name: "single word verb no preposition",
			line: "open factorial",
			wantCmd: Command{Verb: "open", Direct: "factorial"},
		},
		{
			name: "two word verb",
			line: "look at pieces o' eight",
			wantCmd: Command{Verb: "look at", Direct: "pieces o' eight"},
		},
		{
			name: "use splits on with",
			line: "use chromatic triplicator with pieces o' eight",
			wantCmd: Command{
				Verb: "use", Direct: "chromatic triplicator",
				Indirect: "pieces o' eight", HasIndirect: true,
			},
		},
		{
			name: "give splits on to",
			line: "give coin to shopkeeper",
			wantCmd: Command{
				Verb: "give", Direct: "coin", Indirect: "shopkeeper",
				HasIndirect: true,
			},
		},
		{
			name: "names preserve apostrophes and hyphens",
			line: "use n-licator with pieces o' eight",
			wantCmd: Command{
				Verb: "use", Direct: "n-licator", Indirect: "pieces o' eight",
				HasIndirect: true,
			},
		},
		{
			name: "no-op verb still parses",
			line: "walk to door",
			wantCmd: Command{Verb: "walk to", Direct: "door"},
		},
		{
			name:    "unknown verb fails",
			line:    "juggle knives",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseLine(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", cmd)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd != tt.wantCmd {
				t.Errorf("got %+v, want %+v", cmd, tt.wantCmd)
			}
		})
	}
}

func TestIsComment(t *testing.T) {
	cases := map[string]bool{
		"":                true,
		"   ":              true,
		"# a comment":      true,
		"  # indented too":  true,
		"use x with y":      false,
	}
	for line, want := range cases {
		if got := IsComment(line); got != want {
			t.Errorf("IsComment(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestSliceReader(t *testing.T) {
	cmds := []Command{{Verb: "open", Direct: "a"}, {Verb: "close", Direct: "a"}}
	r := NewSliceReader(cmds)

	got, ok, err := r.Next()
	if !ok || err != nil || got != cmds[0] {
		t.Fatalf("first Next() = %+v, %v, %v", got, ok, err)
	}
	got, ok, err = r.Next()
	if !ok || err != nil || got != cmds[1] {
		t.Fatalf("second Next() = %+v, %v, %v", got, ok, err)
	}
	_, ok, _ = r.Next()
	if ok {
		t.Fatalf("expected exhausted reader")
	}
}

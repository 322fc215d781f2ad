package parser

import "bufio"

// Reader is a cursor over a stream of parsed commands. The dispatcher's
// `open` handling consumes directly from whatever Reader is driving the
// current loop, so block definitions and top-level scripts share the same
// cursor abstraction (§4.3, §5 "command stream and open").
type Reader interface {
	// Next returns the next command. ok is false at end of stream; err is
	// non-nil if the next line failed to parse.
	Next() (cmd Command, ok bool, err error)
}

// LineReader adapts a line-oriented source (a file or stdin) into a
// Reader, skipping blank and comment lines per §4.1 and §6.3.
type LineReader struct {
	scanner *bufio.Scanner
}

func NewLineReader(scanner *bufio.Scanner) *LineReader {
	return &LineReader{scanner: scanner}
}

func (r *LineReader) Next() (Command, bool, error) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if IsComment(line) {
			continue
		}
		cmd, err := ParseLine(line)
		return cmd, true, err
	}
	return Command{}, false, nil
}

// SliceReader replays a fixed, already-parsed command sequence. A
// ProgramBlock executes its captured body through a SliceReader so that a
// nested `open` inside the block consumes from the block's own slice
// rather than from whatever stream originally defined the block (§4.7).
type SliceReader struct {
	commands []Command
	pos      int
}

func NewSliceReader(commands []Command) *SliceReader {
	return &SliceReader{commands: commands}
}

func (r *SliceReader) Next() (Command, bool, error) {
	if r.pos >= len(r.commands) {
		return Command{}, false, nil
	}
	cmd := r.commands[r.pos]
	r.pos++
	return cmd, true, nil
}

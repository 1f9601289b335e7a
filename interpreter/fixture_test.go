package interpreter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/loxgm/loxgm/lexer"
	"github.com/loxgm/loxgm/parser"
)

// TestFixtures runs every .lox program under testdata/fixtures through
// the full tokenize/parse/interpret pipeline and snapshots its stdout,
// following the fixture-driven snapshot pattern the pack's other
// interpreter uses for its own language test suite.
func TestFixtures(t *testing.T) {
	matches, err := filepath.Glob("../testdata/fixtures/*.lox")
	if err != nil {
		t.Fatalf("failed to list fixtures: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}

	for _, path := range matches {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read fixture %s: %v", path, err)
			}

			tokens, lexErr := lexer.Tokenize(string(src))
			if lexErr != nil {
				t.Fatalf("fixture %s: unexpected lex error: %v", name, lexErr)
			}
			program, parseErr := parser.Parse(tokens)
			if parseErr != nil {
				t.Fatalf("fixture %s: unexpected parse error: %v", name, parseErr)
			}

			var out bytes.Buffer
			in := New(&out)
			if runErr := in.Interpret(program); runErr != nil {
				t.Fatalf("fixture %s: unexpected runtime error: %v", name, runErr)
			}

			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", name), out.String())
		})
	}
}

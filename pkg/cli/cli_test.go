package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/lettertrie/pkg/dictionary"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses args with the real grammar and runs the selected command, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string) {
	t.Helper()
	var grammar CLI
	parser, err := kong.New(&grammar,
		kong.Name("lettertrie"),
		kong.Exit(func(int) { t.Fatalf("unexpected exit for args %v", args) }),
	)
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	ctx, err := grammar.NewContext(strings.NewReader(stdin), out, errOut)
	require.NoError(t, err)
	require.NoError(t, kctx.Run(ctx))
	return out.String(), errOut.String()
}

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestDemoCommand verifies the demo prints the sample probes before and after deleting "the".
func TestDemoCommand(t *testing.T) {
	expected := strings.Join([]string{
		`insert "the world": error: trie: invalid character ' ' at position 3 in key "the world" (only a-z allowed)`,
		`word = "the" ---> 1`,
		`word = "these" ---> 0`,
		`word = "their" ---> 1`,
		`word = "thaw" ---> 1`,
		`-------after deleting "the"---------------`,
		`word = "the" ---> 0`,
		`word = "these" ---> 0`,
		`word = "their" ---> 1`,
		`word = "thaw" ---> 1`,
	}, "\n") + "\n"

	out, _ := run(t, "", "demo")
	assert.Equal(t, expected, out)

	// demo is the default command
	out, _ = run(t, "")
	assert.Equal(t, expected, out)
}

// TestCheckCommand loads a word list, deletes a word and reports the probes as JSON.
func TestCheckCommand(t *testing.T) {
	words := writeFile(t, "words.txt", "the\nthere\n# comment\n\nThe\nthey\n")

	out, _ := run(t, "", "--format=json", "check", words, "--delete=there,nope", "--probe=the,there,they,th")

	var records []record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 7)

	assert.Equal(t, record{Op: "insert", Word: "The", Error: records[0].Error}, records[0])
	assert.Contains(t, records[0].Error, "invalid character")
	assert.Equal(t, record{Op: "delete", Word: "there", Found: true}, records[1])
	assert.Equal(t, record{Op: "delete", Word: "nope", Found: false}, records[2])
	assert.Equal(t, record{Op: "search", Word: "the", Found: true}, records[3])
	assert.Equal(t, record{Op: "search", Word: "there", Found: false}, records[4])
	assert.Equal(t, record{Op: "search", Word: "they", Found: true}, records[5])
	assert.Equal(t, record{Op: "search", Word: "th", Found: false}, records[6])
}

// TestCheckCommandFolding checks that --fold accepts mixed case input.
func TestCheckCommandFolding(t *testing.T) {
	words := writeFile(t, "words.csv", "id,word\n1,The\n2,Café\n")

	out, _ := run(t, "", "--fold", "--format=csv", "check", words, "--probe=THE,cafe")
	assert.Equal(t, "op,word,found,error\nsearch,the,true,\nsearch,cafe,true,\n", out)
}

// TestWordsCommand verifies stored words are listed in order across several files.
func TestWordsCommand(t *testing.T) {
	first := writeFile(t, "first.json", `["bye", "by", {"word": "answer"}]`)
	second := writeFile(t, "second.txt", "any\na\nby\n")

	out, _ := run(t, "", "words", first, second)
	assert.Equal(t, "a\nanswer\nany\nby\nbye\n", out)
}

// TestPreloadFromConfig checks that words listed in the config are loaded before the command runs.
func TestPreloadFromConfig(t *testing.T) {
	words := writeFile(t, "words.txt", "thaw\nthe\n")
	cfg := writeFile(t, "lettertrie.yaml", "log:\n  level: error\ninput:\n  preload:\n    - "+words+"\n")

	out, _ := run(t, "", "--config="+cfg, "words")
	assert.Equal(t, "thaw\nthe\n", out)
}

// TestReplCommand drives the repl through stdin.
func TestReplCommand(t *testing.T) {
	stdin := strings.Join([]string{
		"insert the their",
		"search the",
		"delete the",
		"search the their",
		"",
		"insert",
		"count",
		"words",
		"bogus",
		"quit",
		"search their",
	}, "\n")

	out, _ := run(t, stdin, "repl", "--prompt=")
	expected := strings.Join([]string{
		`insert "the": ok`,
		`insert "their": ok`,
		`word = "the" ---> 1`,
		`delete "the": removed`,
		`word = "the" ---> 0`,
		`word = "their" ---> 1`,
		`insert needs a word`,
		`words: 1, nodes: 5`,
		`their`,
		`unknown command "bogus", ` + replHelp,
	}, "\n") + "\n"
	assert.Equal(t, expected, out)
}

// TestInvalidFormat verifies the context refuses unknown output formats.
func TestInvalidFormat(t *testing.T) {
	grammar := CLI{Format: "xml"}
	_, err := grammar.NewContext(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)
}

// TestDebugLogging checks that the configured level reaches the dictionary logger.
func TestDebugLogging(t *testing.T) {
	cfg := writeFile(t, "lettertrie.yaml", "log:\n  level: debug\n  pretty: false\n")

	_, errOut := run(t, "insert any\n", "--config="+cfg, "repl", "--prompt=")
	assert.Contains(t, errOut, `"message":"inserted"`)
	assert.Contains(t, errOut, `"word":"any"`)
}

// TestCheckCommandTsv checks the tsv output format is reachable from the command line.
func TestCheckCommandTsv(t *testing.T) {
	words := writeFile(t, "words.txt", "the\nthaw\n")

	out, _ := run(t, "", "--format=tsv", "check", words, "--probe=the,these")
	assert.Equal(t, "op\tword\tfound\terror\nsearch\tthe\ttrue\t\nsearch\tthese\tfalse\t\n", out)
}

// TestReplCsvHeaderOnce verifies the csv header is printed once for a whole repl session.
func TestReplCsvHeaderOnce(t *testing.T) {
	out, _ := run(t, "insert by\nsearch by\ndelete by\n", "--format=csv", "repl", "--prompt=")

	assert.Equal(t, "op,word,found,error\ninsert,by,true,\nsearch,by,true,\ndelete,by,true,\n\n", out)
}

// TestReplWriteError checks that a broken output ends the repl with the write error.
func TestReplWriteError(t *testing.T) {
	testCases := []struct {
		name   string
		prompt string
		input  string
	}{
		{"prompt", "> ", "help\n"},
		{"help", "", "help\n"},
		{"count", "", "count\n"},
		{"missing word", "", "insert\n"},
		{"unknown", "", "bogus\n"},
		{"result", "", "search the\n"},
		{"eof", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := failingWriter{}
			ctx := &Context{
				dict:   dictionary.NewDictionary(),
				logger: zerolog.Nop(),
				stats:  &Stats{},
				in:     strings.NewReader(tc.input),
				out:    out,
			}
			ctx.writer = newWriter("text", out, ctx.stats)

			err := (&ReplCmd{Prompt: tc.prompt}).Run(ctx)
			assert.ErrorIs(t, err, errClosed)
		})
	}
}

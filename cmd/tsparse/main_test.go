package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/tsparse/cache"
)

func newTestApp(t *testing.T, files map[string]string) *app {
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
	return &app{fs: fs, stdin: strings.NewReader("")}
}

func run(a *app, args ...string) (string, error) {
	out := &bytes.Buffer{}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCmd(t *testing.T) {
	a := newTestApp(t, map[string]string{"/src/a.js": "a + 1"})
	out, err := run(a, "parse", "--format", "sexpr", "/src/a.js")
	require.NoError(t, err)
	require.Equal(t, "(Stmt (+ a 1))\n", out)

	out, err = run(a, "parse", "--positions=false", "/src/a.js")
	require.NoError(t, err)
	v := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Equal(t, "Program", v["type"])
	require.NotContains(t, v, "start")

	out, err = run(a, "parse", "-f", "pretty", "/src/a.js")
	require.NoError(t, err)
	require.Contains(t, out, "js.Program")

	_, err = run(a, "parse", "-f", "yaml", "/src/a.js")
	require.Error(t, err)
}

func TestParseCmdStdin(t *testing.T) {
	a := newTestApp(t, nil)
	a.stdin = strings.NewReader("let x: number = 1")
	out, err := run(a, "parse", "--ts", "-f", "sexpr", "-")
	require.NoError(t, err)
	require.Equal(t, "(Decl let [(= (Id x :number) 1)])\n", out)
}

func TestParseCmdErrors(t *testing.T) {
	a := newTestApp(t, map[string]string{"/src/a.js": "let a;\nlet a;"})
	out, err := run(a, "parse", "/src/a.js")
	require.Error(t, err)
	require.Equal(t, "/src/a.js: Identifier 'a' has already been declared. on line 2 and column 5\n    2: let a;\n           ^\n", out)
}

func TestParseCmdConfig(t *testing.T) {
	a := newTestApp(t, map[string]string{
		"/project/.tsparse.yaml": "overrides:\n  - files: \"*.js\"\n    typescript: true\n",
		"/project/src/a.js":      "let x: number = 1",
	})
	_, err := run(a, "parse", "/project/src/a.js")
	require.NoError(t, err)

	_, err = run(a, "parse", "--ts=false", "/project/src/a.js")
	require.Error(t, err)

	_, err = run(a, "parse", "--config", "/missing.yaml", "/project/src/a.js")
	require.Error(t, err)
}

func TestCheckCmd(t *testing.T) {
	a := newTestApp(t, map[string]string{
		"/src/ok.js":                "let a = 1",
		"/src/bad.ts":               "let x = ;\nlet y = ;",
		"/src/readme.md":            "let x = ;",
		"/src/node_modules/dep.js":  "let x = ;",
		"/src/.hidden/generated.js": "let x = ;",
	})
	out, err := run(a, "check", "/src")
	require.Error(t, err)
	require.Equal(t, "1 of 2 files have syntax errors", err.Error())
	require.Equal(t, 2, strings.Count(out, "/src/bad.ts: "))

	_, err = run(a, "check", "/src/ok.js")
	require.NoError(t, err)

	_, err = run(a, "check", "/src/missing.js")
	require.Error(t, err)
}

func TestTokensCmd(t *testing.T) {
	a := newTestApp(t, map[string]string{"/a.js": "x = /re/g // c\n`a${b}c`"})
	out, err := run(a, "tokens", "--comments", "/a.js")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	require.True(t, strings.HasPrefix(lines[0], "1:0\t"))
	require.True(t, strings.HasSuffix(lines[2], "\"/re/g\""))
	require.Equal(t, "1:10\tComment\t\"// c\"", lines[6])
}

func TestWatchLoop(t *testing.T) {
	a := newTestApp(t, map[string]string{"/src/a.js": "let x = ;"})
	c, err := cache.New(4)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	cmd := newRootCmd(a)
	cmd.SetOut(out)

	events := make(chan fsnotify.Event, 3)
	errs := make(chan error)
	events <- fsnotify.Event{Name: "/src/a.js", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "/src/a.md", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "/src/a.js", Op: fsnotify.Remove}
	close(events)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	add := func(string) error { return nil }
	require.NoError(t, a.watchLoop(ctx, cmd, c, add, events, errs))
	require.Equal(t, 1, strings.Count(out.String(), "/src/a.js: "))
	_, misses := c.Stats()
	require.Equal(t, uint64(1), misses)
}

func TestWatchLoopCreateDir(t *testing.T) {
	a := newTestApp(t, map[string]string{
		"/src/a.js":                  "let a = 1",
		"/src/sub/b.js":              "let x = ;",
		"/src/sub/deep/c.ts":         "let y = ;",
		"/src/sub/node_modules/d.js": "let z = ;",
	})
	c, err := cache.New(4)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	cmd := newRootCmd(a)
	cmd.SetOut(out)

	added := []string{}
	add := func(name string) error {
		added = append(added, name)
		return nil
	}
	events := make(chan fsnotify.Event, 2)
	events <- fsnotify.Event{Name: "/src/sub", Op: fsnotify.Create}
	events <- fsnotify.Event{Name: "/src/sub/node_modules", Op: fsnotify.Create}
	close(events)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, a.watchLoop(ctx, cmd, c, add, events, make(chan error)))
	require.Equal(t, []string{"/src/sub", "/src/sub/deep"}, added)
	require.Contains(t, out.String(), "/src/sub/b.js: ")
	require.Contains(t, out.String(), "/src/sub/deep/c.ts: ")
	require.NotContains(t, out.String(), "d.js")
}

func TestWalkSources(t *testing.T) {
	a := newTestApp(t, map[string]string{
		"/src/a.js":              "",
		"/src/lib/b.ts":          "",
		"/src/lib/deep/c.mjs":    "",
		"/src/lib/readme.md":     "",
		"/src/node_modules/d.js": "",
		"/src/.git/hooks/e.js":   "",
		"/other/f.cts":           "",
	})
	filenames, dirs, err := a.walkSources([]string{"/src", "/other/f.cts"})
	require.NoError(t, err)
	require.Equal(t, []string{"/src/a.js", "/src/lib/b.ts", "/src/lib/deep/c.mjs", "/other/f.cts"}, filenames)
	require.Equal(t, []string{"/src", "/src/lib", "/src/lib/deep"}, dirs)
}

func TestIsSource(t *testing.T) {
	require.True(t, isSource("a.js"))
	require.True(t, isSource("dir/a.mts"))
	require.False(t, isSource("a.json"))
	require.False(t, isSource("a.d"))
}

func TestDiffCmd(t *testing.T) {
	a := newTestApp(t, map[string]string{
		"/a.js": "let x=1;f(x)",
		"/b.js": "let /* c */ x = 1 ;\n\n f( x ) // d",
		"/c.js": "let x=2;f(x)",
	})
	out, err := run(a, "diff", "/a.js", "/b.js")
	require.NoError(t, err)
	require.Equal(t, "", out)

	out, err = run(a, "diff", "/a.js", "/c.js")
	require.Error(t, err)
	require.Contains(t, out, "-")
	require.Contains(t, out, "\"raw\": \"2\"")
}

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/marcus/codenest/internal/config"
	"github.com/marcus/codenest/internal/content"
)

func testCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	cat, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	return cat
}

func titles(paths []content.Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.Title
	}
	return out
}

func TestFilterPaths(t *testing.T) {
	cat := testCatalog(t)

	tests := []struct {
		name      string
		query     string
		level     content.Level
		wantFirst string
		wantLen   int
		wantErr   bool
	}{
		{name: "no filter", wantFirst: "Arrays", wantLen: len(cat.Paths)},
		{name: "fuzzy title", query: "tre", wantFirst: "Trees", wantLen: -1},
		{name: "level only", level: content.LevelBeginner, wantFirst: "Arrays", wantLen: 2},
		{name: "level and query", query: "q", level: content.LevelBeginner, wantFirst: "Stacks & Queues", wantLen: 1},
		{name: "no match", query: "zzz", wantLen: 0},
		{name: "invalid level", level: "Expert", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := filterPaths(cat, tt.query, tt.level)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("filterPaths: %v", err)
			}
			if tt.wantLen >= 0 && len(got) != tt.wantLen {
				t.Errorf("got %v, want %d paths", titles(got), tt.wantLen)
			}
			if tt.wantFirst != "" && (len(got) == 0 || got[0].Title != tt.wantFirst) {
				t.Errorf("got %v, want %q first", titles(got), tt.wantFirst)
			}
		})
	}
}

func TestRenderPathsTree(t *testing.T) {
	cat := testCatalog(t)
	var buf bytes.Buffer

	renderPathsTree(&buf, cat.Brand, cat.ByLevel(content.LevelAdvanced))

	out := buf.String()
	for _, want := range []string{"Code Nest learning paths", "Advanced", "Trees", "Heaps", "2 path(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Arrays") {
		t.Errorf("output should only list advanced paths:\n%s", out)
	}
}

func TestRenderPathsLong(t *testing.T) {
	cat := testCatalog(t)
	p, _ := cat.Lookup("Hashing")
	var buf bytes.Buffer

	if err := renderPathsLong(&buf, []content.Path{p}, 60); err != nil {
		t.Fatalf("renderPathsLong: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Hashing") || !strings.Contains(out, string(p.Level)) {
		t.Errorf("markdown output missing title or level:\n%s", out)
	}
}

func TestIsTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if isTerminal(f) {
		t.Error("regular file reported as a terminal")
	}
	if isTerminal(nil) {
		t.Error("nil file reported as a terminal")
	}
}

func TestTerminalOptions(t *testing.T) {
	off := false
	tests := []struct {
		name      string
		cfg       config.Config
		args      []string
		wantMouse bool
		wantPx    int
	}{
		{"defaults", config.Config{Terminal: config.TerminalConfig{RowPixels: 16}}, nil, true, 16},
		{"config disables mouse", config.Config{Terminal: config.TerminalConfig{Mouse: &off, RowPixels: 16}}, nil, false, 16},
		{"flag disables mouse", config.Config{Terminal: config.TerminalConfig{RowPixels: 16}}, []string{"--no-mouse"}, false, 16},
		{"flag overrides row pixels", config.Config{Terminal: config.TerminalConfig{RowPixels: 16}}, []string{"--row-pixels", "8"}, true, 8},
		{"zero row pixels flag ignored", config.Config{Terminal: config.TerminalConfig{RowPixels: 16}}, []string{"--row-pixels", "0"}, true, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			addTerminalFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}

			opts := terminalOptions(fs, &tt.cfg)
			if opts.Mouse != tt.wantMouse {
				t.Errorf("Mouse = %v, want %v", opts.Mouse, tt.wantMouse)
			}
			if opts.RowPixels != tt.wantPx {
				t.Errorf("RowPixels = %d, want %d", opts.RowPixels, tt.wantPx)
			}
			if opts.Copy == nil {
				t.Error("Copy should be wired to the clipboard")
			}
		})
	}
}

func TestServeConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	for _, k := range []string{config.EnvAddr, config.EnvPort} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	if err := config.Save(dir, &config.Config{Serve: config.ServeConfig{Addr: "127.0.0.1", Port: 8000}}); err != nil {
		t.Fatalf("save config: %v", err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addServeFlags(fs)
	sc, err := serveConfig(fs, dir)
	if err != nil {
		t.Fatalf("serveConfig: %v", err)
	}
	if sc.Addr != "127.0.0.1" || sc.Port != 8000 {
		t.Errorf("file config = %+v", sc)
	}

	t.Setenv(config.EnvPort, "9000")
	sc, err = serveConfig(fs, dir)
	if err != nil {
		t.Fatalf("serveConfig: %v", err)
	}
	if sc.Port != 9000 {
		t.Errorf("env should override file port, got %d", sc.Port)
	}

	if err := fs.Parse([]string{"--port", "9100", "--addr", "0.0.0.0"}); err != nil {
		t.Fatal(err)
	}
	sc, err = serveConfig(fs, dir)
	if err != nil {
		t.Fatalf("serveConfig: %v", err)
	}
	if sc.Port != 9100 || sc.Addr != "0.0.0.0" {
		t.Errorf("flags should win, got %+v", sc)
	}
}

func TestServeConfigBadEnvPort(t *testing.T) {
	t.Setenv(config.EnvPort, "http")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addServeFlags(fs)
	if _, err := serveConfig(fs, t.TempDir()); err == nil {
		t.Error("expected error for non-numeric port")
	}
}

func TestVersionCommand(t *testing.T) {
	SetVersion("v1.2.3")
	t.Cleanup(func() { SetVersion("") })

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)

	if !strings.HasPrefix(buf.String(), "codenest v1.2.3 (") {
		t.Errorf("version output = %q", buf.String())
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "paths", "version"} {
		c, _, err := rootCmd.Find([]string{name})
		if err != nil || c.Name() != name {
			t.Errorf("command %q not registered: %v", name, err)
		}
	}
}

package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("view.pug", []byte("div hello"), 0)
	id2 := fs.Add("view.pug", []byte("div universe"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}

	latest, ok := fs.GetByPath("view.pug")
	if !ok {
		t.Fatal("expected file to be found by path")
	}
	if latest.ID != id2 {
		t.Errorf("expected latest id %d, got %d", id2, latest.ID)
	}
	if got := string(fs.Get(id1).Content); got != "div hello" {
		t.Errorf("old version content = %q", got)
	}
	if fs.Get(FileID(42)) != nil {
		t.Error("expected nil for out-of-range id")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.pug", []byte("html\n  body\n    p text"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
		ok   bool
	}{
		{1, "html", true},
		{2, "  body", true},
		{3, "    p text", true},
		{0, "", false},
		{4, "", false},
	}
	for _, tt := range tests {
		got, ok := f.GetLine(tt.line)
		if got != tt.want || ok != tt.ok {
			t.Errorf("GetLine(%d) = %q, %v; want %q, %v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLineByPos(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("views/index.pug", []byte("div\n  script(src='x.js')\n"))

	got, ok := fs.Line(Pos{File: "views/index.pug", Line: 2, Column: 3})
	if !ok || got != "  script(src='x.js')" {
		t.Fatalf("Line = %q, %v", got, ok)
	}
	if _, ok := fs.Line(Pos{File: "missing.pug", Line: 1}); ok {
		t.Error("expected miss for unknown file")
	}
	if _, ok := fs.Line(Pos{File: "views/index.pug"}); ok {
		t.Error("expected miss for unknown line")
	}
}

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.pug")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\r\n")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
}

func TestPosString(t *testing.T) {
	tests := []struct {
		pos  Pos
		want string
	}{
		{Pos{File: "a.pug", Line: 3, Column: 5}, "a.pug:3:5"},
		{Pos{File: "a.pug", Line: 3}, "a.pug:3"},
		{Pos{File: "a.pug"}, "a.pug"},
		{Pos{Line: 1, Column: 1}, "<template>:1:1"},
	}
	for _, tt := range tests {
		if got := tt.pos.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.pos, got, tt.want)
		}
	}
}

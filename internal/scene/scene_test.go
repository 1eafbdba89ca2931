package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `
images:
  - path: a.bmp
    width: 3
    height: 2
    fill: "#ffffff"
    rows:
      - {row: 1, color: "#ff0000"}
    pixels:
      - {x: 2, y: 0, color: "00f"}
  - path: b.bmp
    width: 5
    height: 5
    layout: bottom-up
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cfg.Images) != 2 {
		t.Fatalf("len(Images) = %d, want 2", len(cfg.Images))
	}

	a := cfg.Images[0]
	if a.Path != "a.bmp" || a.Width != 3 || a.Height != 2 || a.Fill != "#ffffff" {
		t.Errorf("image 0 = %+v", a)
	}
	if len(a.Rows) != 1 || a.Rows[0] != (RowSpec{Row: 1, Color: "#ff0000"}) {
		t.Errorf("image 0 rows = %+v", a.Rows)
	}
	if len(a.Pixels) != 1 || a.Pixels[0] != (PixelSpec{X: 2, Y: 0, Color: "00f"}) {
		t.Errorf("image 0 pixels = %+v", a.Pixels)
	}
	if cfg.Images[1].Layout != "bottom-up" {
		t.Errorf("image 1 layout = %q, want bottom-up", cfg.Images[1].Layout)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool // matches ErrInvalidScene
	}{
		{"empty", ``, true},
		{"no path", "images:\n  - {width: 1, height: 1}\n", true},
		{"duplicate path", "images:\n  - {path: a.bmp, width: 1, height: 1}\n  - {path: ./a.bmp, width: 1, height: 1}\n", true},
		{"bad layout", "images:\n  - {path: a.bmp, width: 1, height: 1, layout: diagonal}\n", true},
		{"bad fill", "images:\n  - {path: a.bmp, width: 1, height: 1, fill: red}\n", true},
		{"bad row color", "images:\n  - path: a.bmp\n    width: 1\n    height: 1\n    rows: [{row: 0, color: '#12'}]\n", true},
		{"bad pixel color", "images:\n  - path: a.bmp\n    width: 1\n    height: 1\n    pixels: [{x: 0, y: 0, color: zzzzzz}]\n", true},
		{"unknown key", "images:\n  - {path: a.bmp, width: 1, height: 1, depth: 8}\n", false},
		{"wrong type", "images:\n  - {path: a.bmp, width: wide, height: 1}\n", false},
		{"not yaml", "images: [", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if got := errors.Is(err, ErrInvalidScene); got != tt.invalid {
				t.Errorf("errors.Is(%v, ErrInvalidScene) = %v, want %v", err, got, tt.invalid)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Images) != 2 {
		t.Errorf("len(Images) = %d, want 2", len(cfg.Images))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("images: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	if !errors.Is(err, ErrInvalidScene) || !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("Load(bad) error = %v, want ErrInvalidScene naming the file", err)
	}
}

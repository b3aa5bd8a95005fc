package gamedata

import (
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
)

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	for _, id := range RequiredTiles {
		def := p.Get(id)
		if def == nil || def.ID != id {
			t.Errorf("tile %q not found", id)
		}
	}
	if p.Get("player").GlyphRune() != 'P' {
		t.Errorf("player glyph = %c, want P", p.Get("player").GlyphRune())
	}
	if p.Get("no-such-tile").ID != "unknown" {
		t.Error("missing IDs should fall back to the fog tile")
	}
}

func TestNewPaletteValidation(t *testing.T) {
	full := func() []TileDef {
		defs := make([]TileDef, 0, len(RequiredTiles))
		for _, id := range RequiredTiles {
			defs = append(defs, TileDef{ID: id, Glyph: "x", FG: "#FFFFFF", BG: "#000000"})
		}
		return defs
	}

	if _, err := NewPalette(full()); err != nil {
		t.Errorf("complete palette should load: %v", err)
	}

	missing := full()[1:]
	if _, err := NewPalette(missing); err == nil {
		t.Error("palette missing a tile should fail")
	}

	badColor := full()
	badColor[0].FG = "#FFF"
	if _, err := NewPalette(badColor); err == nil {
		t.Error("palette with a bad color should fail")
	}
}

func TestPaletteStyle(t *testing.T) {
	p, err := NewPalette([]TileDef{
		{ID: "empty", FG: "#000000", BG: "#000000"},
		{ID: "wall", FG: "#FF0000", BG: "#00FF00", Bold: true},
		{ID: "player", FG: "#000000", BG: "#000000"},
		{ID: "treasure", FG: "#000000", BG: "#000000"},
		{ID: "trap", FG: "#000000", BG: "#000000"},
		{ID: "heal", FG: "#000000", BG: "#000000"},
		{ID: "unknown", FG: "#000000", BG: "#000000"},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(255, 0, 0)).
		Background(tcell.NewRGBColor(0, 255, 0)).
		Bold(true)
	if got := p.Get("wall").Style(); got != want {
		t.Errorf("wall style = %v, want %v", got, want)
	}
	if p.Get("empty").GlyphRune() != '?' {
		t.Error("empty glyph should fall back to '?'")
	}
}

func TestLoadFSErrors(t *testing.T) {
	fsys := fstest.MapFS{"broken.json": {Data: []byte("{not json")}}

	if _, err := LoadFS[TilesFile](fsys, "broken.json"); err == nil {
		t.Error("expected parse error")
	}
	if _, err := LoadFS[TilesFile](fsys, "missing.json"); err == nil {
		t.Error("expected read error")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#000000", true},
		{"invalid", false},
		{"#GGGGGG", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// RequiredTiles lists the tile IDs every palette must define, one per
// world.TileKind plus the fog marker.
var RequiredTiles = []string{"empty", "wall", "player", "treasure", "trap", "heal", "unknown"}

// TileDef defines how a tile is drawn, loaded from JSON.
type TileDef struct {
	ID    string `json:"id"`    // Matches world.TileKind.String()
	Name  string `json:"name"`  // Display name for the legend
	Glyph string `json:"glyph"` // Single character for rendering
	FG    string `json:"fg"`    // Foreground hex color
	BG    string `json:"bg"`    // Background hex color
	Bold  bool   `json:"bold"`

	style tcell.Style
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileDef) GlyphRune() rune {
	for _, r := range d.Glyph {
		return r
	}
	return '?'
}

// Style returns the parsed tcell style.
func (d *TileDef) Style() tcell.Style {
	return d.style
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// Palette maps tile IDs to their drawing definitions.
type Palette struct {
	tiles map[string]*TileDef
}

// NewPalette validates tile definitions and parses their colors. Every
// ID in RequiredTiles must be present.
func NewPalette(defs []TileDef) (*Palette, error) {
	p := &Palette{tiles: make(map[string]*TileDef, len(defs))}
	for i := range defs {
		def := &defs[i]
		fg, err := ParseHexColor(def.FG)
		if err != nil {
			return nil, fmt.Errorf("tile %s foreground: %w", def.ID, err)
		}
		bg, err := ParseHexColor(def.BG)
		if err != nil {
			return nil, fmt.Errorf("tile %s background: %w", def.ID, err)
		}
		def.style = tcell.StyleDefault.Foreground(fg).Background(bg).Bold(def.Bold)
		p.tiles[def.ID] = def
	}

	for _, id := range RequiredTiles {
		if _, ok := p.tiles[id]; !ok {
			return nil, fmt.Errorf("palette is missing tile %q", id)
		}
	}
	return p, nil
}

// LoadPalette loads the palette from the embedded tiles.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(file.Tiles)
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Get returns the definition for id, falling back to the fog tile.
func (p *Palette) Get(id string) *TileDef {
	if def, ok := p.tiles[id]; ok {
		return def
	}
	return p.tiles["unknown"]
}

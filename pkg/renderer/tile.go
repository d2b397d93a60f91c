package renderer

import (
	"image"
	"math/rand"
)

// Tile is a rectangular region of the image rendered as a single unit of
// work, each seeded with its own deterministic random generator so a render
// is reproducible regardless of which worker happens to process which tile.
type Tile struct {
	ID     int
	Bounds image.Rectangle
	Random *rand.Rand
}

// NewTile builds a tile over bounds, seeded deterministically from id.
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(int64(id + 42))), // +42 to avoid seed 0
	}
}

// NewTileGrid partitions a width x height image into a grid of square
// tileSize x tileSize tiles (the final row/column may be smaller).
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	id := 0
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0 := tx * tileSize
			y0 := ty * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)
			tiles = append(tiles, NewTile(id, image.Rect(x0, y0, x1, y1)))
			id++
		}
	}
	return tiles
}

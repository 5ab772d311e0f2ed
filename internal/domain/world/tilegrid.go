// Package world owns the layered tile grid and answers spatial and
// collision queries for the current map.
package world

// Layer names recognized in a map bundle.
const (
	LayerGround      = "ground"
	LayerCollision   = "collision"
	LayerRoofs       = "roofs"
	LayerWater       = "water"
	LayerDecorations = "decorations"
)

// Collision layer codes.
const (
	CollisionNone  = 0
	CollisionWater = 1 // impassable water
	CollisionSolid = 2 // wall/rock
)

// Water layer codes.
const (
	WaterNone     = 0
	WaterOpen     = 1
	WaterBridge   = 2
	WaterFountain = 5 // decorative, no collision semantics
)

// LayerTable is a sparse column -> row -> tile-code mapping.
// Missing columns and rows read as code 0.
type LayerTable map[int]map[int]int

// HazardZone is a rectangular world-space zone (lava, spikes, ...).
// Hazards are not grid-based.
type HazardZone struct {
	Kind   string
	X      int
	Y      int
	Width  int
	Height int
	Damage int
}

// Viewport is a camera window in world pixels.
type Viewport struct {
	X      int
	Y      int
	Width  int
	Height int
}

// TileGrid holds the multi-layer tile data for one map.
// It is built once at map load time and never mutated afterwards.
type TileGrid struct {
	width    int
	height   int
	tileSize int
	layers   map[string]LayerTable
	hazards  []HazardZone
}

// NewTileGrid builds a grid from the given layer tables. Nil layers are
// treated as fully empty. The tables are deep-copied, so mutating the
// caller's maps afterwards does not reach the grid.
func NewTileGrid(width, height, tileSize int, layers map[string]LayerTable, hazards []HazardZone) *TileGrid {
	g := &TileGrid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		layers:   make(map[string]LayerTable, len(layers)),
		hazards:  append([]HazardZone(nil), hazards...),
	}
	for name, table := range layers {
		if table == nil {
			continue
		}
		copied := make(LayerTable, len(table))
		for col, rows := range table {
			outRows := make(map[int]int, len(rows))
			for row, code := range rows {
				outRows[row] = code
			}
			copied[col] = outRows
		}
		g.layers[name] = copied
	}
	return g
}

// Width returns the grid width in tiles.
func (g *TileGrid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *TileGrid) Height() int { return g.height }

// TileSize returns the edge length of one tile in pixels.
func (g *TileGrid) TileSize() int { return g.tileSize }

// Hazards returns the map's hazard zones.
func (g *TileGrid) Hazards() []HazardZone { return g.hazards }

// TileAt returns the tile code at the given tile coordinates for a layer.
// Out-of-range coordinates, unknown layers, and unset cells all read 0.
func (g *TileGrid) TileAt(col, row int, layer string) int {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return 0
	}
	table, ok := g.layers[layer]
	if !ok {
		return 0
	}
	rows, ok := table[col]
	if !ok {
		return 0
	}
	return rows[row]
}

// IsColliding reports whether a world-space box overlaps solid terrain.
//
// Bridges override water: a cell whose water code is WaterBridge never
// collides, and open-water collision cells are walkable while the box's
// bottom row stands on a bridge in any column of its footprint. This
// lets a box straddle the edge of a bridge without clipping on the
// adjacent water cells.
func (g *TileGrid) IsColliding(x, y, width, height int) bool {
	// A grid without a tile size has no geometry to collide with.
	if g.tileSize <= 0 {
		return false
	}
	left := floorDiv(x, g.tileSize)
	right := floorDiv(x+width-1, g.tileSize)
	top := floorDiv(y, g.tileSize)
	bottom := floorDiv(y+height-1, g.tileSize)

	onBridge := false
	for col := left; col <= right; col++ {
		if g.TileAt(col, bottom, LayerWater) == WaterBridge {
			onBridge = true
			break
		}
	}

	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			c := g.TileAt(col, row, LayerCollision)
			if c != CollisionWater && c != CollisionSolid {
				continue
			}
			if g.TileAt(col, row, LayerWater) == WaterBridge {
				continue
			}
			if c == CollisionWater && onBridge {
				continue
			}
			return true
		}
	}
	return false
}

// HasVisibleWaterOfKind reports whether any tile with the given water
// code lies inside the viewport, expanded by one tile of margin on each
// side. Used to gate ambient water audio.
func (g *TileGrid) HasVisibleWaterOfKind(view Viewport, code int) bool {
	if g.tileSize <= 0 {
		return false
	}
	left := floorDiv(view.X, g.tileSize) - 1
	right := floorDiv(view.X+view.Width-1, g.tileSize) + 1
	top := floorDiv(view.Y, g.tileSize) - 1
	bottom := floorDiv(view.Y+view.Height-1, g.tileSize) + 1

	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if g.TileAt(col, row, LayerWater) == code {
				return true
			}
		}
	}
	return false
}

// HazardAt returns the first hazard zone overlapping the given box.
func (g *TileGrid) HazardAt(x, y, width, height int) (HazardZone, bool) {
	for _, h := range g.hazards {
		if x < h.X+h.Width && x+width > h.X && y < h.Y+h.Height && y+height > h.Y {
			return h, true
		}
	}
	return HazardZone{}, false
}

// floorDiv divides rounding toward negative infinity, so boxes partly
// left of or above the origin still map to the correct tile range.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

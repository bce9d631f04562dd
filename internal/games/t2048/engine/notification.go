package engine

// Kind identifies a notification variant.
type Kind int

const (
	KindReset Kind = iota
	KindSpawn
	KindMove
	KindFusion
	KindMoveEnd
	KindGameOver
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindReset:
		return "Reset"
	case KindSpawn:
		return "Spawn"
	case KindMove:
		return "Move"
	case KindFusion:
		return "Fusion"
	case KindMoveEnd:
		return "MoveEnd"
	case KindGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Notification is one entry of the ordered batch returned by Board
// operations. The set of implementations is closed: Reset, Spawn, Move,
// Fusion, MoveEnd and GameOver.
type Notification interface {
	Kind() Kind
	notification()
}

// Reset reports that every cell was cleared.
type Reset struct{}

// Spawn reports that Tile appeared at its own coordinate.
type Spawn struct {
	Tile Tile
}

// Move reports a relocation without merging. Tile is the new tile at the
// destination, carrying the unchanged value.
type Move struct {
	Tile           Tile
	SrcRow, SrcCol int
	DstRow, DstCol int
}

// Fusion reports a relocation that merged into the destination tile.
// Tile carries the doubled value; the tile previously at the destination
// is gone.
type Fusion struct {
	Tile           Tile
	SrcRow, SrcCol int
	DstRow, DstCol int
}

// MoveEnd closes the scan of one Move call. Moved is false when nothing
// changed position.
type MoveEnd struct {
	Moved bool
}

// GameOver reports that an effective move left no empty cell to spawn into.
type GameOver struct{}

func (Reset) Kind() Kind    { return KindReset }
func (Spawn) Kind() Kind    { return KindSpawn }
func (Move) Kind() Kind     { return KindMove }
func (Fusion) Kind() Kind   { return KindFusion }
func (MoveEnd) Kind() Kind  { return KindMoveEnd }
func (GameOver) Kind() Kind { return KindGameOver }

func (Reset) notification()    {}
func (Spawn) notification()    {}
func (Move) notification()     {}
func (Fusion) notification()   {}
func (MoveEnd) notification()  {}
func (GameOver) notification() {}

// Batch is the ordered sequence of notifications produced by one call.
type Batch []Notification

// Kinds returns the kind of every notification, in order.
func (b Batch) Kinds() []Kind {
	kinds := make([]Kind, len(b))
	for i, n := range b {
		kinds[i] = n.Kind()
	}
	return kinds
}

// Moved reports whether the batch contains MoveEnd{Moved: true}.
func (b Batch) Moved() bool {
	for _, n := range b {
		if end, ok := n.(MoveEnd); ok {
			return end.Moved
		}
	}
	return false
}

// GameOver reports whether the batch ends the game.
func (b Batch) GameOver() bool {
	for _, n := range b {
		if n.Kind() == KindGameOver {
			return true
		}
	}
	return false
}

// Spawned returns the tiles spawned in this batch.
func (b Batch) Spawned() []Tile {
	var tiles []Tile
	for _, n := range b {
		if s, ok := n.(Spawn); ok {
			tiles = append(tiles, s.Tile)
		}
	}
	return tiles
}

// Fusions returns every Fusion in the batch, in scan order.
func (b Batch) Fusions() []Fusion {
	var fusions []Fusion
	for _, n := range b {
		if f, ok := n.(Fusion); ok {
			fusions = append(fusions, f)
		}
	}
	return fusions
}

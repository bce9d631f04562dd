package t2048

import "github.com/vovakirdan/tui-2048/internal/games/t2048/engine"

// Default animation lengths in ticks.
const (
	defaultSlideTicks = 8 // ~133ms at 60fps
	defaultPopTicks   = 6 // ~100ms at 60fps
)

// Package-level animation settings, applied on the next Reset.
var (
	slideTicks = defaultSlideTicks
	popTicks   = defaultPopTicks
)

// SetAnimation sets slide and pop lengths in ticks. Zero disables a phase.
func SetAnimation(slide, pop int) {
	slideTicks = max(slide, 0)
	popTicks = max(pop, 0)
}

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// cell is a board coordinate.
type cell struct {
	row, col int
}

// TileAnimation is one tile travelling between two cells.
type TileAnimation struct {
	Value    int // Value before the move
	FromRow  int
	FromCol  int
	ToRow    int
	ToCol    int
	Progress float64 // 0.0 → 1.0
	Merged   bool
}

// interpolatePosition returns the current position in cell units.
func (a *TileAnimation) interpolatePosition() (row, col float64) {
	t := easeOutQuad(a.Progress)
	row = float64(a.FromRow) + (float64(a.ToRow)-float64(a.FromRow))*t
	col = float64(a.FromCol) + (float64(a.ToCol)-float64(a.FromCol))*t
	return row, col
}

// animator turns a notification batch into timed slide and pop phases.
type animator struct {
	phase  AnimationPhase
	ticks  int
	slides []TileAnimation
	// ghosts are tiles that stay put until something merges into them.
	ghosts map[cell]int
	// hidden cells hold a final board tile that must not show yet.
	hidden  map[cell]bool
	pending []engine.Tile
	popped  []engine.Tile
}

func (a *animator) reset() {
	*a = animator{}
}

func (a *animator) active() bool {
	return a.phase != PhaseNone
}

func (a *animator) hide(row, col int) {
	if a.hidden == nil {
		a.hidden = make(map[cell]bool)
	}
	a.hidden[cell{row, col}] = true
}

// slide queues a tile travelling from src to dst. value is the value the
// tile had before the move.
func (a *animator) slide(srcRow, srcCol, dstRow, dstCol, value int, merged bool) {
	dst := cell{dstRow, dstCol}
	if merged && !a.hidden[dst] {
		// First merge into a tile that did not move: keep it visible.
		if a.ghosts == nil {
			a.ghosts = make(map[cell]int)
		}
		a.ghosts[dst] = value
	}
	a.hide(dstRow, dstCol)
	a.slides = append(a.slides, TileAnimation{
		Value:   value,
		FromRow: srcRow,
		FromCol: srcCol,
		ToRow:   dstRow,
		ToCol:   dstCol,
		Merged:  merged,
	})
}

func (a *animator) spawn(t engine.Tile) {
	a.hide(t.Row(), t.Col())
	a.pending = append(a.pending, t)
}

// start begins the first phase that has work queued.
func (a *animator) start() {
	a.ticks = 0
	switch {
	case len(a.slides) > 0 && slideTicks > 0:
		a.phase = PhaseSlide
	default:
		a.startPop()
	}
}

func (a *animator) startPop() {
	a.slides = nil
	a.ghosts = nil
	a.ticks = 0
	if len(a.pending) == 0 || popTicks == 0 {
		a.finish()
		return
	}
	a.hidden = nil
	a.popped = a.pending
	a.pending = nil
	a.phase = PhasePop
}

func (a *animator) finish() {
	*a = animator{}
}

// update advances one tick. Returns true while an animation is running.
func (a *animator) update() bool {
	if !a.active() {
		return false
	}

	a.ticks++

	var duration int
	switch a.phase {
	case PhaseSlide:
		duration = slideTicks
	case PhasePop:
		duration = popTicks
	}

	progress := min(float64(a.ticks)/float64(duration), 1.0)
	for i := range a.slides {
		a.slides[i].Progress = progress
	}

	if a.ticks < duration {
		return true
	}

	if a.phase == PhaseSlide {
		a.startPop()
		return a.active()
	}
	a.finish()
	return false
}

// popProgress returns how far the pop phase has run, 0.0 → 1.0.
func (a *animator) popProgress() float64 {
	if a.phase != PhasePop || popTicks == 0 {
		return 1
	}
	return min(float64(a.ticks)/float64(popTicks), 1.0)
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// Package sim plays headless 2048 games with random directions and checks
// the engine's rules after every move.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sort"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// ErrViolation is wrapped by every rule violation found during a run.
var ErrViolation = errors.New("sim: rule violation")

// Outcomes of a simulated game.
const (
	OutcomeFull     = "full"
	OutcomeStuck    = "stuck"
	OutcomeMaxMoves = "max_moves"
)

// Options configures a run.
type Options struct {
	Rows     int
	Cols     int
	Games    int
	Seed     int64
	MaxMoves int // 0 means no limit
}

// Game is the outcome of one simulated game.
type Game struct {
	Seed    int64
	Moves   int // Effective moves
	Tries   int // Directions attempted, including no-ops
	Fusions int
	MaxTile int
	TileSum int
	Outcome string
}

// Report aggregates a run.
type Report struct {
	Games      []Game
	Violations []error
}

// MaxTiles returns how many games ended with each max tile, sorted by tile.
func (r Report) MaxTiles() [][2]int {
	counts := make(map[int]int)
	for _, g := range r.Games {
		counts[g.MaxTile]++
	}

	out := make([][2]int, 0, len(counts))
	for tile, n := range counts {
		out = append(out, [2]int{tile, n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// AvgMoves returns the mean number of effective moves per game.
func (r Report) AvgMoves() float64 {
	if len(r.Games) == 0 {
		return 0
	}
	total := 0
	for _, g := range r.Games {
		total += g.Moves
	}
	return float64(total) / float64(len(r.Games))
}

// Run plays opts.Games games. Game i uses seed opts.Seed+i for the board
// and a separate source for directions. It stops early when ctx is done.
func Run(ctx context.Context, opts Options) (Report, error) {
	var report Report
	if opts.Games <= 0 {
		return report, fmt.Errorf("sim: games must be positive, got %d", opts.Games)
	}

	for i := range opts.Games {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		seed := opts.Seed + int64(i)
		g, violations, err := play(opts, seed)
		if err != nil {
			return report, err
		}
		report.Games = append(report.Games, g)
		report.Violations = append(report.Violations, violations...)
	}

	return report, nil
}

// play runs one game to its end.
func play(opts Options, seed int64) (Game, []error, error) {
	board, err := engine.NewSeeded(opts.Rows, opts.Cols, seed)
	if err != nil {
		return Game{}, nil, fmt.Errorf("sim: %w", err)
	}
	dirs := rand.New(rand.NewSource(^seed))

	g := Game{Seed: seed}
	var violations []error

	batch := board.Reset()
	if n := len(batch.Spawned()); n != min(2, opts.Rows*opts.Cols) {
		violations = append(violations, fmt.Errorf("%w: seed %d: reset spawned %d tiles", ErrViolation, seed, n))
	}

	for {
		if opts.MaxMoves > 0 && g.Moves >= opts.MaxMoves {
			g.Outcome = OutcomeMaxMoves
			break
		}
		if !board.HasMoves() {
			g.Outcome = OutcomeStuck
			break
		}

		all := engine.Directions()
		dir := all[dirs.Intn(len(all))]

		before := snapshot(board)
		batch, err := board.Move(dir)
		if err != nil {
			return g, violations, fmt.Errorf("sim: %w", err)
		}
		g.Tries++

		for _, v := range check(before, board, dir, batch) {
			violations = append(violations, fmt.Errorf("%w: seed %d move %d: %s", ErrViolation, seed, g.Tries, v))
		}

		if batch.Moved() {
			g.Moves++
			g.Fusions += len(batch.Fusions())
		}
		if batch.GameOver() {
			g.Outcome = OutcomeFull
			break
		}
	}

	g.MaxTile = board.MaxTile()
	g.TileSum = board.Sum()
	return g, violations, nil
}

type state struct {
	values [][]int
	count  int
	sum    int
}

func snapshot(b *engine.Board) state {
	return state{values: b.Values(), count: b.Count(), sum: b.Sum()}
}

// check compares the board before and after one move.
func check(before state, b *engine.Board, dir engine.Direction, batch engine.Batch) []string {
	var problems []string

	spawned := 0
	for _, t := range batch.Spawned() {
		spawned += t.Value()
		if t.Value() != 2 && t.Value() != 4 {
			problems = append(problems, fmt.Sprintf("spawned value %d", t.Value()))
		}
	}

	if got := b.Sum(); got != before.sum+spawned {
		problems = append(problems, fmt.Sprintf("sum %d after %s, want %d", got, dir, before.sum+spawned))
	}
	if b.Count() > before.count+1 {
		problems = append(problems, fmt.Sprintf("tile count grew from %d to %d", before.count, b.Count()))
	}
	if floor := before.count - len(batch.Fusions()); b.Count() < floor {
		problems = append(problems, fmt.Sprintf("tile count %d below %d", b.Count(), floor))
	}

	if !batch.Moved() {
		if len(batch) != 1 {
			problems = append(problems, fmt.Sprintf("no-op %s emitted %v", dir, batch.Kinds()))
		}
		if !slices.EqualFunc(before.values, b.Values(), slices.Equal[[]int]) {
			problems = append(problems, fmt.Sprintf("no-op %s changed the board", dir))
		}
	} else if len(batch.Spawned()) == 0 && !batch.GameOver() {
		problems = append(problems, fmt.Sprintf("effective %s neither spawned nor ended", dir))
	}

	if batch.GameOver() && !b.IsFull() {
		problems = append(problems, "game over on a board with empty cells")
	}

	return problems
}

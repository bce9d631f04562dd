package t2048

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// settle steps with no input until animations finish.
func settle(t *testing.T, g *Game) {
	t.Helper()
	for range 100 {
		if res := g.Step(core.NewInputFrame()); res.Settled {
			return
		}
	}
	t.Fatal("animation did not settle within 100 ticks")
}

// withLayout replaces the board with a fixed layout.
func withLayout(t *testing.T, g *Game, layout [][]int) {
	t.Helper()
	b, err := engine.NewSeeded(len(layout), len(layout[0]), 1)
	if err != nil {
		t.Fatalf("NewSeeded: %v", err)
	}
	for r, row := range layout {
		for c, v := range row {
			if v == 0 {
				continue
			}
			if err := b.Place(r, c, v); err != nil {
				t.Fatalf("Place(%d, %d, %d): %v", r, c, v, err)
			}
		}
	}
	g.board = b
	g.anim.reset()
}

func newClassic(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(Presets[0])
	g.Reset(testConfig(seed))
	settle(t, g)
	return g
}

func TestPresetsRegistered(t *testing.T) {
	for _, p := range Presets {
		info, ok := registry.Lookup(p.ID)
		if !ok {
			t.Errorf("preset %q not registered", p.ID)
			continue
		}
		if info.Rows != p.Rows || info.Cols != p.Cols {
			t.Errorf("preset %q registered as %dx%d, want %dx%d", p.ID, info.Rows, info.Cols, p.Rows, p.Cols)
		}
	}
}

func TestRegisterCustom(t *testing.T) {
	id, err := RegisterCustom(4, 4)
	if err != nil || id != "2048" {
		t.Errorf("RegisterCustom(4, 4) = %q, %v, want built-in 2048", id, err)
	}

	id, err = RegisterCustom(2, 7)
	if err != nil {
		t.Fatalf("RegisterCustom(2, 7): %v", err)
	}
	if id != CustomID {
		t.Errorf("RegisterCustom(2, 7) = %q, want %q", id, CustomID)
	}
	g, err := registry.Create(id)
	if err != nil {
		t.Fatalf("Create(%q): %v", id, err)
	}
	if rows, cols := g.Dimensions(); rows != 2 || cols != 7 {
		t.Errorf("custom Dimensions() = %dx%d, want 2x7", rows, cols)
	}

	if _, err := RegisterCustom(0, 4); err == nil {
		t.Error("RegisterCustom(0, 4) should fail")
	}

	if id, err := RegisterCustom(2, 7); err != nil || id != CustomID {
		t.Errorf("RegisterCustom(2, 7) again = %q, %v, want %q", id, err, CustomID)
	}
	if _, err := RegisterCustom(3, 8); !errors.Is(err, ErrCustomTaken) {
		t.Errorf("RegisterCustom(3, 8) after 2x7 = %v, want ErrCustomTaken", err)
	}
}

func TestResetSpawnsTwoTiles(t *testing.T) {
	g := newClassic(t, 42)

	if n := g.board.Count(); n != 2 {
		t.Errorf("after Reset board has %d tiles, want 2", n)
	}
	st := g.State()
	if st.Moves != 0 || st.GameOver {
		t.Errorf("fresh state = %+v", st)
	}
}

func TestDeterministicSpawn(t *testing.T) {
	g1 := newClassic(t, 12345)
	g2 := newClassic(t, 12345)

	for _, a := range []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown} {
		g1.Step(input(a))
		settle(t, g1)
		g2.Step(input(a))
		settle(t, g2)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if g1.board.String() != g2.board.String() {
		t.Errorf("same seed should produce same board:\n%s\nvs\n%s", g1.board, g2.board)
	}
	if s1.Moves != s2.Moves || s1.Fusions != s2.Fusions {
		t.Errorf("snapshots differ: %+v vs %+v", s1, s2)
	}
}

func TestMoveCountsAndFusions(t *testing.T) {
	g := newClassic(t, 1)
	withLayout(t, g, [][]int{
		{2, 2, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(input(core.ActionLeft))

	if res.Settled {
		t.Error("an effective move should start an animation")
	}
	if got, _ := g.board.At(0, 0); got.Value() != 8 {
		t.Errorf("chain merge: (0,0) = %d, want 8", got.Value())
	}
	st := g.State()
	if st.Moves != 1 {
		t.Errorf("Moves = %d, want 1", st.Moves)
	}
	if st.Fusions != 2 {
		t.Errorf("Fusions = %d, want 2", st.Fusions)
	}
	if st.TileSum != 10 && st.TileSum != 12 {
		t.Errorf("TileSum = %d, want 8 plus one spawned tile", st.TileSum)
	}
}

func TestNoOpMoveDoesNotCount(t *testing.T) {
	g := newClassic(t, 1)
	withLayout(t, g, [][]int{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(input(core.ActionLeft))

	if !res.Settled {
		t.Error("a no-op move should not animate")
	}
	if g.State().Moves != 0 {
		t.Errorf("Moves = %d, want 0", g.State().Moves)
	}
	if g.board.Count() != 2 {
		t.Errorf("no-op move spawned a tile: %d tiles", g.board.Count())
	}
}

func TestInputIgnoredWhileAnimating(t *testing.T) {
	SetAnimation(defaultSlideTicks, defaultPopTicks)
	g := newClassic(t, 3)
	withLayout(t, g, [][]int{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(input(core.ActionLeft))
	before := g.board.String()

	g.Step(input(core.ActionRight))

	if g.board.String() != before {
		t.Errorf("direction during animation changed the board:\n%s\nwas\n%s", g.board, before)
	}
	if g.State().Moves != 1 {
		t.Errorf("Moves = %d, want 1", g.State().Moves)
	}

	settle(t, g)
	g.Step(input(core.ActionRight))
	if g.State().Moves != 2 {
		t.Errorf("after settling Moves = %d, want 2", g.State().Moves)
	}
}

func TestStuckBoardEndsGame(t *testing.T) {
	g := newClassic(t, 5)
	// Sliding left frees only (0,3); neither a 2 nor a 4 there can merge.
	withLayout(t, g, [][]int{
		{0, 8, 16, 32},
		{64, 128, 256, 512},
		{8, 16, 32, 64},
		{128, 256, 512, 1024},
	})

	g.Step(input(core.ActionLeft))
	settle(t, g)

	st := g.State()
	if !st.GameOver {
		t.Fatal("game should end when no direction changes the board")
	}
	if st.Outcome != OutcomeStuck {
		t.Errorf("Outcome = %q, want %q", st.Outcome, OutcomeStuck)
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("Snapshot state = %s, want %s", g.Snapshot().State, StateGameOver)
	}

	g.Step(input(core.ActionUp))
	if g.State().Moves != 1 {
		t.Error("moves after game over should be ignored")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newClassic(t, 9)
	before := g.board.String()

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause action should pause")
	}
	g.Step(input(core.ActionLeft, core.ActionUp))
	if g.board.String() != before {
		t.Error("board changed while paused")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("Snapshot state = %s, want %s", g.Snapshot().State, StatePaused)
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New(Presets[3]) // 6x6
	cfg := testConfig(1)
	cfg.ScreenW = 20
	cfg.ScreenH = 10
	g.Reset(cfg)

	if !g.State().Paused {
		t.Error("small screen should report paused")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("Snapshot state = %s, want %s", g.Snapshot().State, StatePausedSmall)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	if !containsText(screen, "Window too small") {
		t.Error("too-small message not rendered")
	}
}

func TestRenderShowsTiles(t *testing.T) {
	g := newClassic(t, 1)
	withLayout(t, g, [][]int{
		{2048, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
		{0, 0, 0, 0},
	})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !containsText(screen, "2048") {
		t.Error("tile 2048 not rendered")
	}
	if !containsText(screen, "Max: 2048") {
		t.Error("HUD max tile not rendered")
	}
	if !containsText(screen, "┌──────┬") {
		t.Error("grid border not rendered")
	}
}

func TestRenderWideBoard(t *testing.T) {
	g := New(Presets[4]) // 4x6
	g.Reset(testConfig(2))
	settle(t, g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Top border spans six cells.
	want := "┌──────┬──────┬──────┬──────┬──────┬──────┐"
	if !containsText(screen, want) {
		t.Errorf("wide grid border not rendered:\n%s", screen)
	}
}

func TestAnimationDisabled(t *testing.T) {
	SetAnimation(0, 0)
	defer SetAnimation(defaultSlideTicks, defaultPopTicks)

	g := newClassic(t, 4)
	withLayout(t, g, [][]int{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(input(core.ActionLeft))
	if !res.Settled {
		t.Error("with animation disabled every step should be settled")
	}
}

func TestEaseOutQuad(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.5, 0.75},
		{1, 1},
	}
	for _, tt := range tests {
		if got := easeOutQuad(tt.in); got != tt.want {
			t.Errorf("easeOutQuad(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func containsText(s *core.Screen, text string) bool {
	for y := range s.Height() {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newClassic(t, 8)
	before := g.board.String()

	g.Resize(10, 5)
	if !g.State().Paused {
		t.Error("shrinking below the board should pause")
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("growing back should resume")
	}
	if g.board.String() != before {
		t.Error("resize must not touch the board")
	}
}

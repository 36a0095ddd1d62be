package game

import (
	"testing"

	"dragonchess/grid"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *GameState {
	t.Helper()
	gs, err := ParseBoard(text)
	require.NoError(t, err)
	return gs
}

// play applies notated moves in order
func play(t *testing.T, gs *GameState, notations ...string) *GameState {
	t.Helper()
	for _, n := range notations {
		next, err := gs.Apply(n)
		require.NoError(t, err, "move %s", n)
		gs = next
	}
	return gs
}

func cell(t *testing.T, s string) grid.Cell {
	t.Helper()
	c, err := grid.ParseCell(s)
	require.NoError(t, err)
	return c
}

func TestLegalMoves(t *testing.T) {
	t.Run("each sheep steps down its column", func(t *testing.T) {
		gs := mustParse(t, "SSS\n..#\n#.#\n#D.")

		got := gs.LegalMoves()

		require.Equal(t, []Move{
			{Kind: SheepStep, To: cell(t, "A2")},
			{Kind: SheepStep, To: cell(t, "B2")},
			{Kind: SheepStep, To: cell(t, "C2")},
		}, got)
	})

	t.Run("exposed dragon blocks a sheep", func(t *testing.T) {
		gs := mustParse(t, "S.S\nD..\n...")

		got := gs.LegalMoves()

		require.Equal(t, []Move{{Kind: SheepStep, To: cell(t, "C2")}}, got)
	})

	t.Run("sheep may step onto a dragon hiding in a hideout", func(t *testing.T) {
		board, err := NewBoard(2, 3, []grid.Cell{{Row: 1, Col: 0}})
		require.NoError(t, err)
		gs, err := NewGameState(board, grid.Cell{Row: 1, Col: 0}, []grid.Cell{{Row: 0, Col: 0}})
		require.NoError(t, err)

		got := gs.LegalMoves()

		require.Equal(t, []Move{{Kind: SheepStep, To: grid.Cell{Row: 1, Col: 0}}}, got)
	})

	t.Run("pass when every sheep is blocked", func(t *testing.T) {
		gs := mustParse(t, ".S.\n.D.\n...")

		got := gs.LegalMoves()

		require.Equal(t, []Move{PassMove}, got)
	})

	t.Run("dragon moves to every leaper destination", func(t *testing.T) {
		gs := mustParse(t, "S....\n.....\n..D..\n.....\n.....")
		gs = play(t, gs, "S>A2")

		got := gs.LegalMoves()

		require.Len(t, got, 8)
		for _, m := range got {
			require.Equal(t, DragonLeap, m.Kind)
		}
	})

	t.Run("sheep on the last row may leave the board", func(t *testing.T) {
		gs := mustParse(t, "D.\n.S")

		got := gs.LegalMoves()

		require.Equal(t, []Move{{Kind: SheepStep, To: grid.Cell{Row: 2, Col: 1}}}, got)
	})
}

func TestPlay(t *testing.T) {
	t.Run("replaying a full game to a dragon win", func(t *testing.T) {
		gs := mustParse(t, "SSS\n..#\n#.#\n#D.")

		gs = play(t, gs, "S>A2", "D>A2")
		require.Equal(t, 2, gs.SheepCount())

		gs = play(t, gs, "S>B2", "D>C1")
		require.Equal(t, 1, gs.SheepCount())

		gs = play(t, gs, "S>B3", "D>B3")
		require.Equal(t, 0, gs.SheepCount())
		require.Equal(t, Dragon, gs.Winner())
		require.Len(t, gs.History(), 6)
		require.Equal(t, "D>B3", gs.History()[5].String())
	})

	t.Run("pass only flips the mover", func(t *testing.T) {
		gs := mustParse(t, ".S.\n.D.\n...")

		next := gs.Next(PassMove)

		require.Equal(t, Dragon, next.Player())
		require.Equal(t, gs.Sheep(), next.Sheep())
		require.Equal(t, gs.Dragon(), next.Dragon())
	})

	t.Run("dragon does not capture in a hideout", func(t *testing.T) {
		gs := mustParse(t, "S..\n#..\n..D\n...")

		gs = play(t, gs, "S>A2", "D>A2")

		require.Equal(t, 1, gs.SheepCount())
		require.Equal(t, gs.Dragon(), gs.Sheep()[0], "sheep and dragon share the hideout")
		require.Equal(t, NoSide, gs.Winner())

		gs = play(t, gs, "S>A3")
		require.Equal(t, 1, gs.SheepCount())
	})

	t.Run("dragon captures on a plain cell", func(t *testing.T) {
		gs := mustParse(t, "S..\n...\n..D\n...")

		gs = play(t, gs, "S>A2", "D>A2")

		require.Equal(t, 0, gs.SheepCount())
		require.Equal(t, Dragon, gs.Winner())
	})

	t.Run("escaping sheep wins and leaves the herd", func(t *testing.T) {
		gs := mustParse(t, "D.\n.S")

		gs = play(t, gs, "S>B3")

		require.Equal(t, Sheep, gs.Winner())
		require.Equal(t, 0, gs.SheepCount())
	})

	t.Run("parents are never modified", func(t *testing.T) {
		root := mustParse(t, "SSS\n..#\n#.#\n#D.")
		before := root.String()
		beforeKey := root.Key()

		for _, m := range root.LegalMoves() {
			child := root.Next(m)
			for _, cm := range child.LegalMoves() {
				child.Next(cm)
			}
		}

		require.Equal(t, before, root.String())
		require.Equal(t, beforeKey, root.Key())
		require.Empty(t, root.History())
	})

	t.Run("contract violations panic", func(t *testing.T) {
		gs := mustParse(t, "D.\n.S")
		over := gs.Next(Move{Kind: SheepStep, To: grid.Cell{Row: 2, Col: 1}})

		require.Panics(t, func() { over.LegalMoves() })
		require.Panics(t, func() { over.Play(PassMove) })
		require.Panics(t, func() { gs.Next(Move{Kind: DragonLeap, To: grid.Cell{Row: 1, Col: 0}}) })
		require.Panics(t, func() { gs.Next(PassMove) })
	})

	t.Run("apply reports violations as errors", func(t *testing.T) {
		gs := mustParse(t, "D.\n.S")

		_, err := gs.Apply("D>A2")
		require.ErrorIs(t, err, ErrIllegalMove)

		_, err = gs.Apply("X>A2")
		require.ErrorIs(t, err, ErrBadNotation)

		over := play(t, gs, "S>B3")
		_, err = over.Apply("D>B2")
		require.ErrorIs(t, err, ErrGameOver)
	})
}

func TestWinner(t *testing.T) {
	t.Run("sheep on an unbroken hideout run to the edge is safe", func(t *testing.T) {
		gs := mustParse(t, "S.\n#.\n#D")
		require.Equal(t, NoSide, gs.Winner(), "the sheep itself stands on plain ground")

		gs = play(t, gs, "S>A2")

		require.Equal(t, Sheep, gs.Winner())
	})

	t.Run("a broken run is not safe", func(t *testing.T) {
		gs := mustParse(t, "S.\n#.\n..\n#D")

		gs = play(t, gs, "S>A2")

		require.Equal(t, NoSide, gs.Winner())
	})

	t.Run("exhaustive boards ignore the shortcut", func(t *testing.T) {
		gs := mustParse(t, "S.\n#.\n#D")
		exhaustive, err := NewGameState(gs.Board().Exhaustive(), gs.Dragon(), gs.Sheep())
		require.NoError(t, err)

		exhaustive = exhaustive.Next(Move{Kind: SheepStep, To: grid.Cell{Row: 1, Col: 0}})

		require.Equal(t, NoSide, exhaustive.Winner())
	})

	t.Run("sheep never multiply and finished games offer no moves", func(t *testing.T) {
		var walk func(s *GameState)
		walk = func(s *GameState) {
			if s.Winner() != NoSide {
				require.Panics(t, func() { s.LegalMoves() })
				return
			}
			for _, m := range s.LegalMoves() {
				child := s.Next(m)
				require.LessOrEqual(t, child.SheepCount(), s.SheepCount())
				walk(child)
			}
		}
		walk(mustParse(t, "SSS\n..#\n#.#\n#D."))
	})
}

func TestKey(t *testing.T) {
	t.Run("transpositions share a key but not a history", func(t *testing.T) {
		gs := mustParse(t, "S.S\n...\n...\n...\nD..")

		a := play(t, gs, "S>A2", "D>B3", "S>C2", "D>A5")
		b := play(t, gs, "S>C2", "D>B3", "S>A2", "D>A5")

		require.Equal(t, a.Key(), b.Key())
		require.Equal(t, a.Hash(), b.Hash())
		require.NotEqual(t, a.History(), b.History())
	})

	t.Run("side to move is part of the key", func(t *testing.T) {
		gs := mustParse(t, ".S.\n.D.\n...")
		passed := gs.Next(PassMove)

		require.NotEqual(t, gs.Key(), passed.Key())
		require.NotEqual(t, gs.Hash(), passed.Hash())
	})
}

func TestThreatenedSheep(t *testing.T) {
	gs := mustParse(t, "S.S.S\n.....\n.....\n.....\n..D..")

	t.Run("none within one move", func(t *testing.T) {
		got, err := gs.ThreatenedSheep(1, false)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("all three within two moves", func(t *testing.T) {
		got, err := gs.ThreatenedSheep(2, false)
		require.NoError(t, err)
		require.Equal(t, []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: 4}}, got)

		exact, err := gs.ThreatenedSheep(2, true)
		require.NoError(t, err)
		require.Equal(t, got, exact)
	})

	t.Run("negative budget", func(t *testing.T) {
		_, err := gs.ThreatenedSheep(-1, false)
		require.Error(t, err)
	})
}

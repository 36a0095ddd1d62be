package searcher

import (
	"dragonchess/game"
	"dragonchess/grid"
)

// mockGraph is an explicit game graph: node -> children, in move order.
// Nodes missing from the graph are terminal and won by winners[node].
type mockGraph struct {
	children map[string][]string
	winners  map[string]game.Side
}

type mockState struct {
	graph  *mockGraph
	node   string
	played []game.Move
}

func (m mockState) Player() game.Side {
	return game.Dragon
}

func (m mockState) LegalMoves() []game.Move {
	if m.Winner() != game.NoSide {
		panic("game over")
	}
	moves := make([]game.Move, len(m.graph.children[m.node]))
	for i := range moves {
		moves[i] = game.Move{Kind: game.DragonLeap, To: grid.Cell{Col: i}}
	}
	return moves
}

func (m mockState) Play(move game.Move) game.State {
	played := append(append([]game.Move(nil), m.played...), move)
	return mockState{graph: m.graph, node: m.graph.children[m.node][move.To.Col], played: played}
}

func (m mockState) Key() game.Key {
	return game.Key{Sheep: m.node}
}

func (m mockState) Winner() game.Side {
	if _, ok := m.graph.children[m.node]; ok {
		return game.NoSide
	}
	return m.graph.winners[m.node]
}

func (m mockState) History() []game.Move {
	return m.played
}

// diamond reaches node c along two paths; c has two dragon wins and one sheep win.
func diamond() mockState {
	return mockState{
		graph: &mockGraph{
			children: map[string][]string{
				"root": {"a", "b"},
				"a":    {"c"},
				"b":    {"c"},
				"c":    {"d1", "s", "d2"},
			},
			winners: map[string]game.Side{
				"d1": game.Dragon,
				"d2": game.Dragon,
				"s":  game.Sheep,
			},
		},
		node: "root",
	}
}

package searcher

import (
	"nim/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("maps each tier to its evaluator", func(t *testing.T) {
		hard, err := New(game.Hard)
		require.NoError(t, err)
		require.IsType(t, &Optimal{}, hard)

		normal, err := New(game.Normal)
		require.NoError(t, err)
		require.IsType(t, &MonteCarlo{}, normal)
		require.Equal(t, NormalTraces, normal.(*MonteCarlo).Traces())

		easy, err := New(game.Easy)
		require.NoError(t, err)
		require.Equal(t, EasyTraces, easy.(*MonteCarlo).Traces())
	})

	t.Run("lets options override the tier default", func(t *testing.T) {
		s, err := New(game.Easy, WithTraces(3))
		require.NoError(t, err)
		require.Equal(t, 3, s.(*MonteCarlo).Traces())
	})

	t.Run("rejects an unknown tier", func(t *testing.T) {
		_, err := New(game.Difficulty(7))
		require.ErrorContains(t, err, "unknown difficulty")
	})
}

func TestChooseMove(t *testing.T) {
	t.Run("hard takes a lone pile", func(t *testing.T) {
		require.Equal(t, game.Move{Pile: 0, Amount: 3}, ChooseMove(game.Piles{3}, game.Hard))
	})

	t.Run("hard falls back on a zero Nim-sum", func(t *testing.T) {
		require.Equal(t, game.Move{Pile: 0, Amount: 1}, ChooseMove(game.Piles{1, 2, 3}, game.Hard))
	})

	t.Run("every tier only uses the nonempty pile", func(t *testing.T) {
		for _, difficulty := range []game.Difficulty{game.Easy, game.Normal, game.Hard} {
			move := ChooseMove(game.Piles{0, 5}, difficulty)
			require.Equal(t, 1, move.Pile, "%s should not pick the empty pile", difficulty)
			require.Equal(t, 5, move.Amount, "%s should take the whole pile and win", difficulty)
		}
	})
}

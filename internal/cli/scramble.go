package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubeforge/ncube"
)

var (
	scrambleDim   int
	scrambleCount int
	scrambleSeed  int64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a scramble sequence",
	Long: `Generate a random scramble sequence for a cube of the given size and
print it in move notation. Consecutive moves never share an axis.

Moves are written as axis letter, layer index, and an optional prime for
the negative direction, e.g. X0 Y2' Z1.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleDim, "dim", 3, "Cube edge length (minimum 2)")
	scrambleCmd.Flags().IntVar(&scrambleCount, "count", 25, "Number of moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 uses the current time)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleDim < 2 {
		return ncube.ErrInvalidDimension
	}
	if scrambleCount < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	moves := ncube.Scramble(scrambleDim, scrambleCount, rng)
	fmt.Println(ncube.FormatMoves(moves))
	return nil
}

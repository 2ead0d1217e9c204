package sequencer_test

import (
	"fmt"

	"github.com/katalvlaran/debruijn/sequencer"
)

////////////////////////////////////////////////////////////////////////////////
// Example: a counterbalanced block for a 2×2 factorial design
////////////////////////////////////////////////////////////////////////////////

// ExampleSequencer_Block builds a trial ordering for two factors (probe
// congruence × orientation) in which every ordered pair of trial types
// occurs exactly once. The concrete order depends on the seed; the block
// size and the pair property never do.
func ExampleSequencer_Block() {
	congruence := []any{true, false}
	orientation := []any{"left", "right"}

	s, _ := sequencer.New(2, congruence, orientation)
	block, _ := s.Block(sequencer.WithSeed(7))

	fmt.Println("trial types:", s.K())
	fmt.Println("block length:", len(block))

	pairs := map[string]int{}
	for i := range block {
		pairs[fmt.Sprint(block[i], block[(i+1)%len(block)])]++
	}
	fmt.Println("distinct pairs:", len(pairs))

	// Output:
	// trial types: 4
	// block length: 16
	// distinct pairs: 16
}

// ncube - CLI application for playing and scrambling N×N×N slice-rotation puzzles.
package main

import (
	"github.com/cubeforge/ncube/internal/cli"
)

func main() {
	cli.Execute()
}

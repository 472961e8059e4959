// Dyeharmony - colour-harmony companion finder for the in-game dye catalog
//
// Dyeharmony computes colour-theory harmony targets for a base dye and
// matches them against the dye catalog under a choice of perceptual
// colour-distance metrics.
package main

import (
	"github.com/jmylchreest/dyeharmony/internal/cli"
)

func main() {
	cli.Execute()
}

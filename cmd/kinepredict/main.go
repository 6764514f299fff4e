// kinepredict runs the showcase scenarios of the kinepredict data structures:
// keyword lookup, headline deduplication and content ranking.
package main

import (
	"os"

	"github.com/kinepredict/kinepredict/cmd/kinepredict/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

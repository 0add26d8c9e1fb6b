// main.go
//
// Entry point; all CLI handling lives in the cobra commands under cmd/.

package main

import (
	"github.com/inference-sim/seek-sim/cmd"
)

func main() {
	cmd.Execute()
}

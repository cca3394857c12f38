// SPDX-License-Identifier: MIT

// Command ringnet builds the ring network of a CSV table.
//
//	ringnet build --config ringnet.yaml --out network.json
//	ringnet stats --config ringnet.yaml --window 0.1
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

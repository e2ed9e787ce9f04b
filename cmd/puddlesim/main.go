// Command puddlesim loads a chip description and either validates it or
// replays a small scripted droplet program against it, printing the
// resulting snapshot. It is a demonstration harness, not a production
// RPC/CLI boundary.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Command cobaltctl scores governance design factors offline, from an
// answers file, and prints the results as tables or JSON.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// Command cefrlex resolves CEFR difficulty levels for English words.
package main

import (
	"os"

	"github.com/lexibase/cefrlex-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

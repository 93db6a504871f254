// main is the command-line entrypoint for the trustscore CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/trustscore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// widgetlint lints Flutter widget-construction Dart code.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/phobologic/widgetlint/internal/cli"
)

var version = "dev"

func main() {
	cli.Version = version
	if err := cli.New().Execute(); err != nil {
		if !errors.Is(err, cli.ErrFindings) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

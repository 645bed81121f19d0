package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/admitdesk/cmd"
	"github.com/thenoetrevino/admitdesk/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Errors carrying an exit code were already reported by the formatter,
		// except usage errors raised by cobra itself
		var exitErr *cli.ExitCodeError
		if !errors.As(err, &exitErr) || exitErr.Code == cli.ExitUsage {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}

package main

import (
	"log/slog"
	"os"

	"blog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

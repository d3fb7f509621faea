package app

import (
	"io"

	"minigrep/internal/config"
)

type Options struct {
	Config  config.Config
	Format  string
	Stdout  io.Writer
	Version string
}

type Result struct {
	Matches      []string
	LinesScanned int
	Bytes        int
	Encoding     string
}

package main

import (
	"flag"
	"os"

	"github.com/numeral-codec/roman/internal/cli"
	"github.com/numeral-codec/roman/internal/config"
	"github.com/numeral-codec/roman/internal/logging"
)

func main() {
	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		config.Exitf("init logger: %v", err)
	}
	err = cli.Run(cfg, os.Stdin, os.Stdout, logger)
	_ = logger.Sync()
	if err != nil {
		config.Exitf("roman: %v", err)
	}
}

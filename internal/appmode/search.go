// Package appmode provides the two ways to run minigrep: a one-shot command line search and the HTTP search service
package appmode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/UnendingLoop/minigrep/internal/reader"
)

// Exit codes of the command line tool.
const (
	ExitOK       = 0
	ExitBadArgs  = 1
	ExitRunError = 2
)

// Run reads cfg.FileName into memory and writes every matching line to w.
// Nothing is written when reading fails.
func Run(cfg model.Config, w io.Writer) error {
	contents, err := reader.ReadContents(cfg.FileName)
	if err != nil {
		return err
	}

	var results []string
	if cfg.CaseSensitive {
		results = matcher.Search(cfg.Query, contents)
	} else {
		results = matcher.SearchCaseInsensitive(cfg.Query, contents)
	}

	bw := bufio.NewWriter(w)
	for _, line := range results {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// RunCLI is the process boundary of minigrep: it resolves the configuration, runs the search
// and reports failures to stderr. It returns the exit code.
func RunCLI(args []string, lookupEnv parser.LookupEnv, stdout, stderr io.Writer) int {
	log := logger.NewCLI(stderr)
	defer func() { _ = log.Sync() }()

	cfg, err := parser.BuildConfig(args, lookupEnv)
	if err != nil {
		log.Error(fmt.Sprintf("Problem parsing arguments: %v", err))
		return ExitBadArgs
	}

	if err := Run(*cfg, stdout); err != nil {
		log.Error(fmt.Sprintf("Application error: %v", err))
		return ExitRunError
	}

	return ExitOK
}

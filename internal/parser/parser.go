// Package parser puts positional args and the environment into a model.Config and validates it
package parser

import (
	"errors"
	"os"

	"github.com/UnendingLoop/minigrep/internal/model"
)

var (
	ErrNotEnoughArgs = errors.New("not enough arguments\nUsage: minigrep <query> <filename>")
	ErrEmptyQuery    = errors.New("query must not be empty")
	ErrEmptyFileName = errors.New("filename must not be empty")
)

// LookupEnv matches os.LookupEnv so tests can supply their own environment.
type LookupEnv func(key string) (string, bool)

// BuildConfig resolves the run configuration from args (program name excluded).
// The environment is consulted exactly once here.
func BuildConfig(args []string, lookupEnv LookupEnv) (*model.Config, error) {
	if len(args) < 2 {
		return nil, ErrNotEnoughArgs
	}

	cfg := model.Config{
		Query:         args[0],
		FileName:      args[1],
		CaseSensitive: true,
	}

	switch {
	case cfg.Query == "":
		return nil, ErrEmptyQuery
	case cfg.FileName == "":
		return nil, ErrEmptyFileName
	}

	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	if _, defined := lookupEnv(model.EnvCaseInsensitive); defined {
		cfg.CaseSensitive = false
	}

	return &cfg, nil
}

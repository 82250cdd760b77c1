// Copyright 2024 Alexandre Mahdhaoui
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexandremahdhaoui/iconforge/pkg/config"
	"github.com/alexandremahdhaoui/iconforge/pkg/enginecli"
	"github.com/alexandremahdhaoui/iconforge/pkg/release"
	"github.com/charmbracelet/log"
)

// Name is the name of this tool.
const Name = "icon-release"

// Version information (set via ldflags during build)
var (
	Version        = "dev"
	CommitSHA      = "unknown"
	BuildTimestamp = "unknown"
)

const usage = `Usage: icon-release <upstream-version> <next-upstream-version> <package-version>

Computes the next package version from the upstream change and rewrites the
changelog, the readme and every package manifest.

Environment:
  ICONFORGE_CONFIG      configuration file (default iconforge.yaml)
  ICONFORGE_ROOT_DIR    repository root
  ICONFORGE_UPSTREAM    upstream icon library name`

func main() {
	enginecli.Bootstrap(enginecli.Config{
		Name:           Name,
		Version:        Version,
		CommitSHA:      CommitSHA,
		BuildTimestamp: BuildTimestamp,
		Usage:          usage,
		RunCLI:         run,
		RunMCP:         runMCPServer,
		FailureHandler: func(err error) { printFailure(os.Stdout, os.Stderr, err) },
	})
}

// run executes the bump in CLI mode.
func run(args []string) error {
	triple, err := release.ParseTriple(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}

	result, err := bump(cfg, triple, log.NewWithOptions(os.Stderr, log.Options{Prefix: Name}))
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(os.Stdout, result.NextVersion)
	return nil
}

// bump validates cfg and rewrites the release documents for triple.
func bump(cfg *config.Config, triple release.Triple, logger *log.Logger) (*release.Result, error) {
	if err := cfg.ValidateError(); err != nil {
		return nil, err
	}

	bumper := cfg.Bumper()
	bumper.Logger = logger

	result, err := bumper.Bump(triple)
	if err != nil {
		return nil, err
	}

	logger.Info("Bumped release", "kind", result.Kind, "version", result.NextVersion, "changed", len(result.Changed))
	return result, nil
}

// printFailure prints argument errors verbatim on stdout and every other error on stderr.
func printFailure(stdout, stderr io.Writer, err error) {
	switch {
	case errors.Is(err, release.ErrMissingArguments):
		_, _ = fmt.Fprintln(stdout, "Missing arguments")
	case errors.Is(err, release.ErrInvalidVersion):
		_, _ = fmt.Fprintln(stdout, "Not all arguments are valid semver")
	default:
		_, _ = fmt.Fprintf(stderr, "%s: error: %s\n", Name, err.Error())
	}
}

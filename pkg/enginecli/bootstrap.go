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

// Package enginecli provides the shared entry point of the iconforge binaries.
package enginecli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexandremahdhaoui/iconforge/internal/version"
)

// Config holds the configuration for CLI bootstrap.
type Config struct {
	// Name is the command name (e.g., "icon-gen", "icon-release")
	Name string

	// Version information (typically set via ldflags)
	Version        string
	CommitSHA      string
	BuildTimestamp string

	// Usage is printed for -h/--help/help.
	Usage string

	// RunCLI is the function to execute in normal CLI mode. It receives the
	// arguments following the command name.
	RunCLI func(args []string) error

	// RunMCP is the function to execute in MCP server mode (optional)
	// If nil, --mcp flag will result in an error
	RunMCP func() error

	// SuccessHandler is called when RunCLI completes successfully (optional)
	SuccessHandler func()

	// FailureHandler is called when RunCLI returns an error (optional)
	// Defaults to printing the error on stderr.
	FailureHandler func(error)
}

// Bootstrap provides a unified entry point for iconforge commands.
// It handles version and help flags, MCP mode, and CLI execution with
// standardized exit codes.
//
// This function will call os.Exit and never return.
func Bootstrap(cfg Config) {
	os.Exit(Run(cfg, os.Args[1:], os.Stdout, os.Stderr))
}

// Run is Bootstrap without the os.Exit; it returns the exit code.
func Run(cfg Config, args []string, stdout, stderr io.Writer) int {
	versionInfo := version.New(cfg.Name)
	if cfg.Version != "" {
		versionInfo.Version = cfg.Version
	}
	if cfg.CommitSHA != "" {
		versionInfo.CommitSHA = cfg.CommitSHA
	}
	if cfg.BuildTimestamp != "" {
		versionInfo.BuildTimestamp = cfg.BuildTimestamp
	}

	for _, arg := range args {
		switch arg {
		case "version", "--version", "-v":
			versionInfo.Fprint(stdout)
			return 0
		case "help", "--help", "-h":
			if cfg.Usage != "" {
				_, _ = fmt.Fprintln(stdout, cfg.Usage)
			}
			return 0
		}
	}

	for _, arg := range args {
		if arg != "--mcp" {
			continue
		}
		if cfg.RunMCP == nil {
			_, _ = fmt.Fprintf(stderr, "Error: MCP mode not supported for %s\n", cfg.Name)
			return 1
		}
		if err := cfg.RunMCP(); err != nil {
			_, _ = fmt.Fprintf(stderr, "MCP server error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := cfg.RunCLI(args); err != nil {
		if cfg.FailureHandler != nil {
			cfg.FailureHandler(err)
		} else {
			_, _ = fmt.Fprintf(stderr, "%s: error: %v\n", cfg.Name, err)
		}
		return 1
	}

	if cfg.SuccessHandler != nil {
		cfg.SuccessHandler()
	}
	return 0
}

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

// Package version reports the build information of the iconforge binaries.
package version

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"runtime/debug"
	"strings"
)

// Unset values of the ldflags variables.
const (
	DevVersion = "dev"
	Unknown    = "unknown"
)

// Info holds version information for a tool.
type Info struct {
	// ToolName is the name of the binary (e.g. "icon-gen").
	ToolName string
	// Version is set via ldflags or from build info.
	Version string
	// CommitSHA is set via ldflags or from build info.
	CommitSHA string
	// BuildTimestamp is set via ldflags or from build info.
	BuildTimestamp string
}

// New creates a new Info with default values.
func New(toolName string) *Info {
	return &Info{
		ToolName:       toolName,
		Version:        DevVersion,
		CommitSHA:      Unknown,
		BuildTimestamp: Unknown,
	}
}

// Get returns version information, filling ldflags gaps from the module build
// info and, as a last resort, from git.
func (i *Info) Get() (version, commit, timestamp string) {
	version, commit, timestamp = i.Version, i.CommitSHA, i.BuildTimestamp

	if info, ok := debug.ReadBuildInfo(); ok {
		if version == DevVersion && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}

		var revision string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
				if commit == Unknown {
					commit = short(revision)
				}
			case "vcs.time":
				if timestamp == Unknown {
					timestamp = setting.Value
				}
			}
		}

		if version == DevVersion && revision != "" {
			version = short(revision)
		}
	}

	if version == DevVersion {
		if v := git("describe", "--tags", "--always", "--dirty"); v != "" {
			version = v
		}
	}
	if commit == Unknown {
		if c := git("rev-parse", "--short", "HEAD"); c != "" {
			commit = c
		}
	}

	return version, commit, timestamp
}

// Fprint writes the formatted version information to w.
func (i *Info) Fprint(w io.Writer) {
	version, commit, timestamp := i.Get()
	_, _ = fmt.Fprintf(w, "%s version %s\n", i.ToolName, version)
	_, _ = fmt.Fprintf(w, "  commit:    %s\n", commit)
	_, _ = fmt.Fprintf(w, "  built:     %s\n", timestamp)
	_, _ = fmt.Fprintf(w, "  go:        %s\n", runtime.Version())
	_, _ = fmt.Fprintf(w, "  platform:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// String returns a one-line version string using the explicitly set Version field.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s", i.ToolName, i.Version)
}

func short(sha string) string {
	if len(sha) >= 7 {
		return sha[:7]
	}
	return sha
}

func git(args ...string) string {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

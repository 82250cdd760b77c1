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
	"fmt"
	"os"
	"strings"

	"github.com/alexandremahdhaoui/iconforge/pkg/enginecli"
	"github.com/alexandremahdhaoui/iconforge/pkg/target"
)

// Name is the name of this tool.
const Name = "icon-gen"

// Version information (set via ldflags during build)
var (
	Version        = "dev"
	CommitSHA      = "unknown"
	BuildTimestamp = "unknown"
)

func main() {
	enginecli.Bootstrap(enginecli.Config{
		Name:           Name,
		Version:        Version,
		CommitSHA:      CommitSHA,
		BuildTimestamp: BuildTimestamp,
		Usage:          usage(),
		RunCLI:         run,
		RunMCP:         runMCPServer,
		FailureHandler: printFailure,
	})
}

func usage() string {
	return fmt.Sprintf(`Usage: %s <target>

Generates one component and one type declaration per SVG icon.

Targets: %s

Environment:
  ICONFORGE_CONFIG      configuration file (default iconforge.yaml)
  ICONFORGE_ICONS_DIR   SVG source tree
  ICONFORGE_ROOT_DIR    repository root`, Name, strings.Join(target.Names(), ", "))
}

func printFailure(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "%s: error: %s\n", Name, err.Error())
}

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
	"context"
	"fmt"

	"github.com/alexandremahdhaoui/iconforge/internal/mcpserver"
	"github.com/alexandremahdhaoui/iconforge/pkg/config"
	"github.com/alexandremahdhaoui/iconforge/pkg/mcputil"
	"github.com/alexandremahdhaoui/iconforge/pkg/release"
	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// BumpInput is the input of the bump tool.
type BumpInput struct {
	UpstreamVersion     string `json:"upstreamVersion" jsonschema:"icon library version the packages are currently built from"`
	NextUpstreamVersion string `json:"nextUpstreamVersion" jsonschema:"icon library version being released"`
	PackageVersion      string `json:"packageVersion" jsonschema:"current version of the published packages"`
}

// runMCPServer starts the icon-release MCP server with stdio transport.
func runMCPServer() error {
	server := mcpserver.New(Name, Version)

	mcpserver.RegisterTool(server, &mcp.Tool{
		Name:        "bump",
		Description: "Compute the next package version and rewrite the changelog, readme and manifests",
	}, func(_ context.Context, _ *mcp.CallToolRequest, input BumpInput) (*mcp.CallToolResult, any, error) {
		return handleBump(server.Logger(), input)
	})

	return server.RunDefault()
}

// handleBump runs a release bump and reports failures as tool errors.
func handleBump(logger *log.Logger, input BumpInput) (*mcp.CallToolResult, any, error) {
	triple, err := release.ParseTriple([]string{input.UpstreamVersion, input.NextUpstreamVersion, input.PackageVersion})
	if err != nil {
		return mcputil.ErrorResultf("Bump failed: %v", err), nil, nil
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		return mcputil.ErrorResultf("Bump failed: %v", err), nil, nil
	}

	result, err := bump(cfg, triple, logger)
	if err != nil {
		return mcputil.ErrorResultf("Bump failed: %v", err), nil, nil
	}

	res, out := mcputil.SuccessResultWithOutput(
		fmt.Sprintf("Bumped to %s (%s), %d files changed, %d fragments not found",
			result.NextVersion, result.Kind, len(result.Changed), len(result.Misses)),
		result,
	)
	return res, out, nil
}

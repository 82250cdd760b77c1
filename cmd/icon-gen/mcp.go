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
	"strings"

	"github.com/alexandremahdhaoui/iconforge/internal/mcpserver"
	"github.com/alexandremahdhaoui/iconforge/pkg/config"
	"github.com/alexandremahdhaoui/iconforge/pkg/mcputil"
	"github.com/alexandremahdhaoui/iconforge/pkg/target"
	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GenerateInput is the input of the generate tool.
type GenerateInput struct {
	Target string `json:"target" jsonschema:"target ecosystem to generate components for (react or preact)"`
}

// ListTargetsInput is the input of the list-targets tool.
type ListTargetsInput struct{}

// ListTargetsOutput is the structured output of the list-targets tool.
type ListTargetsOutput struct {
	Targets []string `json:"targets"`
}

// runMCPServer starts the icon-gen MCP server with stdio transport.
func runMCPServer() error {
	server := mcpserver.New(Name, Version)

	mcpserver.RegisterTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate one component and one type declaration per SVG icon for a target",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, any, error) {
		return handleGenerate(ctx, server.Logger(), input)
	})

	mcpserver.RegisterTool(server, &mcp.Tool{
		Name:        "list-targets",
		Description: "List the supported target ecosystems",
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ ListTargetsInput) (*mcp.CallToolResult, any, error) {
		return handleListTargets()
	})

	return server.RunDefault()
}

// handleGenerate runs a generation and reports failures as tool errors.
func handleGenerate(ctx context.Context, logger *log.Logger, input GenerateInput) (*mcp.CallToolResult, any, error) {
	if input.Target == "" {
		return mcputil.ErrorResultf("Generation failed: missing target (known targets: %s)", strings.Join(target.Names(), ", ")), nil, nil
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		return mcputil.ErrorResultf("Generation failed: %v", err), nil, nil
	}

	report, err := generate(ctx, cfg, input.Target, logger)
	if err != nil {
		return mcputil.ErrorResultf("Generation failed: %v", err), nil, nil
	}

	result, out := mcputil.SuccessResultWithOutput(
		fmt.Sprintf("Generated %d %s components (typings: %s)", report.Icons, input.Target, report.TypingsPath),
		report,
	)
	return result, out, nil
}

func handleListTargets() (*mcp.CallToolResult, any, error) {
	names := target.Names()
	result, out := mcputil.SuccessResultWithOutput(strings.Join(names, "\n"), ListTargetsOutput{Targets: names})
	return result, out, nil
}

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

// Package mcputil builds the results returned by the iconforge MCP tools.
package mcputil

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrorResult creates a standardized MCP error result.
//
// Example usage:
//
//	return mcputil.ErrorResult(fmt.Sprintf("Generation failed: %v", err)), nil, nil
func ErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}
}

// ErrorResultf is ErrorResult with a format string.
func ErrorResultf(format string, args ...any) *mcp.CallToolResult {
	return ErrorResult(fmt.Sprintf(format, args...))
}

// SuccessResult creates a standardized MCP success result.
func SuccessResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
	}
}

// SuccessResultWithOutput creates a success result that also returns structured output
// (an emit.Report, a release.Result, ...).
//
// Example usage:
//
//	result, out := mcputil.SuccessResultWithOutput("Generated 2 icons", report)
//	return result, out, nil
func SuccessResultWithOutput(message string, output any) (*mcp.CallToolResult, any) {
	return SuccessResult(message), output
}

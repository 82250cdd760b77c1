//go:build unit

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
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alexandremahdhaoui/iconforge/pkg/emit"
	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestHandleGenerate_MissingTarget(t *testing.T) {
	result, out, err := handleGenerate(context.Background(), log.New(&bytes.Buffer{}), GenerateInput{})
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Nil(t, out)
	assert.Contains(t, resultText(t, result), "missing target (known targets: preact, react)")
}

func TestHandleGenerate_UnknownTarget(t *testing.T) {
	t.Setenv("ICONFORGE_CONFIG", filepath.Join(t.TempDir(), "iconforge.yaml"))

	result, _, err := handleGenerate(context.Background(), log.New(&bytes.Buffer{}), GenerateInput{Target: "vue"})
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), `unknown target "vue"`)
}

func TestHandleGenerate(t *testing.T) {
	root := t.TempDir()
	writeIcons(t, filepath.Join(root, "icons"), map[string]string{
		"Arrows/arrow-left-line.svg": arrowSVG,
	})
	t.Setenv("ICONFORGE_CONFIG", filepath.Join(root, "iconforge.yaml"))
	t.Setenv("ICONFORGE_ROOT_DIR", root)
	t.Setenv("ICONFORGE_ICONS_DIR", "icons")

	result, out, err := handleGenerate(context.Background(), log.New(&bytes.Buffer{}), GenerateInput{Target: "react"})
	require.NoError(t, err)

	assert.False(t, result.IsError, resultText(t, result))
	assert.Contains(t, resultText(t, result), "Generated 1 react components")

	report, ok := out.(*emit.Report)
	require.True(t, ok, "expected *emit.Report, got %T", out)
	assert.Equal(t, 1, report.Icons)
	assert.Equal(t, []string{filepath.Join(root, "publish-react", "ArrowLeftLineIcon.js")}, report.Components)
	assert.FileExists(t, filepath.Join(root, "publish-react", "ArrowLeftLineIcon.d.ts"))
}

func TestHandleListTargets(t *testing.T) {
	result, out, err := handleListTargets()
	require.NoError(t, err)

	assert.False(t, result.IsError)
	assert.Equal(t, "preact\nreact", resultText(t, result))
	assert.Equal(t, ListTargetsOutput{Targets: []string{"preact", "react"}}, out)
}

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

package release

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testChangelog = `# Changelog

<!-- Changelog list -->

## 2.5.1 [![Material Design Icons version](https://img.shields.io/badge/remixicon-v1.2.0-blue.svg?style=flat-square)](https://materialdesignicons.com)

- Fix typings
`
	testReadme = `# remixicon-react

> New v2.5.1 released

[![remixicon](https://img.shields.io/badge/remixicon-v1.2.0-blue.svg?style=flat-square)](https://remixicon.com)
`
	testManifest = `{
  "name": "remixicon-react",
  "version": "2.5.1",
  "peerDependencies": {
    "react": ">=0.14.0"
  }
}
`
)

func writeRelease(t *testing.T) (string, *Bumper, *bytes.Buffer) {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"CHANGELOG.md":                testChangelog,
		"README.md":                   testReadme,
		"publish-react/package.json":  testManifest,
		"publish-preact/package.json": strings.Replace(testManifest, "remixicon-react", "remixicon-preact", 1),
	}
	for name, content := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}

	var logs bytes.Buffer
	return root, &Bumper{
		RootDir:  root,
		Upstream: "remixicon",
		Documents: Documents{
			Changelog: "CHANGELOG.md",
			Readme:    "README.md",
			Manifests: []string{"publish-react/package.json", "publish-preact/package.json"},
		},
		Formats: DefaultFormats(),
		Logger:  log.New(&logs),
	}, &logs
}

func read(t *testing.T, root, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, name))
	require.NoError(t, err)
	return string(data)
}

func TestBumper_Bump(t *testing.T) {
	root, b, _ := writeRelease(t)

	triple, err := ParseTriple([]string{"1.2.0", "1.3.0", "2.5.1"})
	require.NoError(t, err)

	result, err := b.Bump(triple)
	require.NoError(t, err)
	assert.Equal(t, KindMinor, result.Kind)
	assert.Equal(t, "2.6.0", result.NextVersion)
	assert.Empty(t, result.Misses)
	assert.Len(t, result.Changed, 4)

	changelog := read(t, root, "CHANGELOG.md")
	entry := "## 2.6.0 [![Material Design Icons version](https://img.shields.io/badge/remixicon-v1.3.0-blue.svg?style=flat-square)](https://materialdesignicons.com)\n\n_No changes_\n\n<!-- Changelog list -->"
	assert.Contains(t, changelog, entry)
	assert.Equal(t, 1, strings.Count(changelog, "<!-- Changelog list -->"))
	assert.Less(t, strings.Index(changelog, "## 2.6.0"), strings.Index(changelog, "<!-- Changelog list -->"))
	assert.Contains(t, changelog, "## 2.5.1")

	readme := read(t, root, "README.md")
	assert.Contains(t, readme, "New v2.6.0 released")
	assert.NotContains(t, readme, "New v2.5.1 released")
	assert.Contains(t, readme, "https://img.shields.io/badge/remixicon-v1.3.0-blue.svg?style=flat-square")
	assert.NotContains(t, readme, "remixicon-v1.2.0")

	for _, manifest := range []string{"publish-react/package.json", "publish-preact/package.json"} {
		content := read(t, root, manifest)
		assert.Contains(t, content, `"version": "2.6.0"`)
		assert.NotContains(t, content, `"version": "2.5.1"`)
	}
}

func TestBumper_Bump_SecondRunIsNoOp(t *testing.T) {
	root, b, logs := writeRelease(t)

	triple, err := ParseTriple([]string{"1.2.0", "1.3.0", "2.5.1"})
	require.NoError(t, err)

	_, err = b.Bump(triple)
	require.NoError(t, err)

	snapshot := map[string]string{}
	for _, name := range []string{"CHANGELOG.md", "README.md", "publish-react/package.json", "publish-preact/package.json"} {
		snapshot[name] = read(t, root, name)
	}

	result, err := b.Bump(triple)
	require.NoError(t, err)
	assert.Empty(t, result.Changed)
	assert.Len(t, result.Misses, 5)

	for name, content := range snapshot {
		assert.Equal(t, content, read(t, root, name), name)
	}
	assert.Contains(t, logs.String(), "Fragment not found")
}

func TestBumper_Bump_MissingFileTouchesNothing(t *testing.T) {
	root, b, _ := writeRelease(t)
	b.Documents.Manifests = append(b.Documents.Manifests, "publish-vue/package.json")

	triple, err := ParseTriple([]string{"1.2.0", "1.3.0", "2.5.1"})
	require.NoError(t, err)

	_, err = b.Bump(triple)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish-vue/package.json")

	assert.Equal(t, testChangelog, read(t, root, "CHANGELOG.md"))
	assert.Equal(t, testReadme, read(t, root, "README.md"))
}

func TestBumper_Bump_MissingMarker(t *testing.T) {
	root, b, _ := writeRelease(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "CHANGELOG.md"), []byte("# Changelog\n"), 0o644))

	triple, err := ParseTriple([]string{"1.2.0", "1.2.1", "2.5.1"})
	require.NoError(t, err)

	result, err := b.Bump(triple)
	require.NoError(t, err)
	assert.Equal(t, "2.5.2", result.NextVersion)
	require.Len(t, result.Misses, 1)
	assert.Equal(t, "<!-- Changelog list -->", result.Misses[0].Text)
	assert.Equal(t, "# Changelog\n", read(t, root, "CHANGELOG.md"))
}

func TestBumper_Bump_SameUpstream(t *testing.T) {
	_, b, _ := writeRelease(t)

	triple, err := ParseTriple([]string{"1.2.0", "1.2.0", "2.5.1"})
	require.NoError(t, err)

	_, err = b.Bump(triple)
	require.ErrorIs(t, err, ErrNoChange)
}

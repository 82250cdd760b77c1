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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, DefaultFileName))
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.RootDir)
	assert.Equal(t, "node_modules/remixicon/icons", cfg.IconsDir)
	assert.Equal(t, "remixicon", cfg.Release.Upstream)
	assert.Empty(t, cfg.Validate())
	assert.NoError(t, cfg.ValidateError())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`
iconsDir: assets/icons
publishDir: packages/{{.Target}}
release:
  documents:
    manifests:
      - packages/react/package.json
  formats:
    readmeRelease: "Version {{.Version}} is out"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "assets/icons", cfg.IconsDir)
	assert.Equal(t, "build", cfg.BuildDir)
	assert.Equal(t, []string{"packages/react/package.json"}, cfg.Release.Documents.Manifests)
	assert.Equal(t, "CHANGELOG.md", cfg.Release.Documents.Changelog)
	assert.Equal(t, "Version {{.Version}} is out", cfg.Release.Formats.ReadmeRelease)
	assert.Equal(t, "<!-- Changelog list -->", cfg.Release.Formats.ChangelogMarker)

	publish, err := cfg.PublishDirFor("react")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "packages", "react"), publish)

	dist, err := cfg.DistDirFor("react")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "packages", "react", "dist"), dist)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ICONFORGE_ICONS_DIR", "/srv/icons")
	t.Setenv("ICONFORGE_ROOT_DIR", "/srv/repo")
	t.Setenv("ICONFORGE_UPSTREAM", "lucide")

	cfg, err := Load(filepath.Join(dir, DefaultFileName))
	require.NoError(t, err)

	assert.Equal(t, "/srv/icons", cfg.IconsDir)
	assert.Equal(t, "/srv/repo", cfg.RootDir)
	assert.Equal(t, "lucide", cfg.Release.Upstream)
	assert.Equal(t, "/srv/icons", cfg.Resolve(cfg.IconsDir))
	assert.Equal(t, "/srv/repo/build", cfg.Resolve(cfg.BuildDir))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("iconsDir: [unterminated"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestPath(t *testing.T) {
	t.Setenv("ICONFORGE_CONFIG", "")
	assert.Equal(t, DefaultFileName, Path())

	t.Setenv("ICONFORGE_CONFIG", "custom.yaml")
	assert.Equal(t, "custom.yaml", Path())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{"missing icons dir", func(c *Config) { c.IconsDir = "" }, "iconsDir"},
		{"missing upstream", func(c *Config) { c.Release.Upstream = "" }, "release.upstream"},
		{"empty manifest", func(c *Config) { c.Release.Documents.Manifests = []string{""} }, "release.documents.manifests[0]"},
		{"bad publish dir", func(c *Config) { c.PublishDir = "publish-{{.Flavor}}" }, "publishDir"},
		{"bad badge template", func(c *Config) { c.Release.Formats.BadgeURL = "{{.Nope}}" }, "release.formats.badgeURL"},
		{"missing marker", func(c *Config) { c.Release.Formats.ChangelogMarker = "" }, "release.formats.changelogMarker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)

			err := cfg.ValidateError()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestConfig_Bumper(t *testing.T) {
	cfg := Default()
	cfg.RootDir = "/repo"

	b := cfg.Bumper()
	assert.Equal(t, "/repo", b.RootDir)
	assert.Equal(t, "remixicon", b.Upstream)
	assert.Equal(t, cfg.Release.Documents, b.Documents)
}

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

// Package config loads the iconforge.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexandremahdhaoui/iconforge/pkg/release"
	"github.com/alexandremahdhaoui/iconforge/pkg/templateutil"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up when ICONFORGE_CONFIG is unset.
const DefaultFileName = "iconforge.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ICONFORGE_"

// Config represents the iconforge.yaml configuration file.
//
// Relative paths are resolved against RootDir.
type Config struct {
	// RootDir is the repository root. Defaults to the directory holding the config file.
	RootDir string `yaml:"rootDir" env:"ROOT_DIR"`

	// IconsDir is the SVG source tree.
	IconsDir string `yaml:"iconsDir" env:"ICONS_DIR"`

	// BuildDir holds transient component sources during generation.
	BuildDir string `yaml:"buildDir" env:"BUILD_DIR"`

	// PublishDir is the per-target output directory template. {{.Target}} is the target name.
	PublishDir string `yaml:"publishDir" env:"PUBLISH_DIR"`

	// DistDir is the aggregate declarations directory, relative to the publish directory.
	DistDir string `yaml:"distDir" env:"DIST_DIR"`

	// TypingsFile is the aggregate declaration file name.
	TypingsFile string `yaml:"typingsFile" env:"TYPINGS_FILE"`

	Release ReleaseConfig `yaml:"release"`
}

// ReleaseConfig configures the release bump.
type ReleaseConfig struct {
	// Upstream is the icon library name used in badges.
	Upstream string `yaml:"upstream" env:"UPSTREAM"`

	Documents release.Documents `yaml:"documents"`
	Formats   release.Formats   `yaml:"formats"`
}

// Default returns the configuration used by the remixicon packages.
func Default() *Config {
	return &Config{
		IconsDir:    "node_modules/remixicon/icons",
		BuildDir:    "build",
		PublishDir:  "publish-{{.Target}}",
		DistDir:     "dist",
		TypingsFile: "typings.d.ts",
		Release: ReleaseConfig{
			Upstream: "remixicon",
			Documents: release.Documents{
				Changelog: "CHANGELOG.md",
				Readme:    "README.md",
				Manifests: []string{
					"publish-react/package.json",
					"publish-preact/package.json",
				},
			},
			Formats: release.DefaultFormats(),
		},
	}
}

// Path returns the configuration file path: ICONFORGE_CONFIG or DefaultFileName.
func Path() string {
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return p
	}
	return DefaultFileName
}

// Load reads the configuration at path on top of the defaults, then applies
// ICONFORGE_* environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.RootDir == "" {
		dir, err := filepath.Abs(filepath.Dir(path))
		if err != nil {
			return nil, fmt.Errorf("resolving root directory: %w", err)
		}
		cfg.RootDir = dir
	}

	return cfg, nil
}

// Resolve returns p joined to RootDir unless it is absolute.
func (c *Config) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.RootDir, p)
}

// PublishDirFor returns the absolute publish directory of a target.
func (c *Config) PublishDirFor(target string) (string, error) {
	dir, err := templateutil.Expand(c.PublishDir, map[string]string{"Target": target})
	if err != nil {
		return "", fmt.Errorf("publishDir: %w", err)
	}
	return c.Resolve(dir), nil
}

// DistDirFor returns the absolute aggregate declarations directory of a target.
func (c *Config) DistDirFor(target string) (string, error) {
	publish, err := c.PublishDirFor(target)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(c.DistDir) {
		return c.DistDir, nil
	}
	return filepath.Join(publish, c.DistDir), nil
}

// Bumper returns a release.Bumper configured from the release section.
func (c *Config) Bumper() *release.Bumper {
	return &release.Bumper{
		RootDir:   c.RootDir,
		Upstream:  c.Release.Upstream,
		Documents: c.Release.Documents,
		Formats:   c.Release.Formats,
	}
}

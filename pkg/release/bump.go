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

// Package release computes the next package version from an upstream icon
// library bump and rewrites the versioned release documents accordingly.
package release

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexandremahdhaoui/iconforge/pkg/templateutil"
	"github.com/charmbracelet/log"
)

// Documents lists the files rewritten by a bump, relative to Bumper.RootDir.
type Documents struct {
	Changelog string   `yaml:"changelog" json:"changelog"`
	Readme    string   `yaml:"readme" json:"readme"`
	Manifests []string `yaml:"manifests" json:"manifests"`
}

// Formats holds the templates of every versioned fragment.
//
// Templates see Version, Upstream, UpstreamVersion and BadgeURL (the expanded
// BadgeURL template itself).
type Formats struct {
	ChangelogMarker  string `yaml:"changelogMarker"`
	ChangelogHeading string `yaml:"changelogHeading"`
	ChangelogEntry   string `yaml:"changelogEntry"`
	ReadmeRelease    string `yaml:"readmeRelease"`
	BadgeURL         string `yaml:"badgeURL"`
	ManifestVersion  string `yaml:"manifestVersion"`
}

// DefaultFormats returns the fragments used by the remixicon packages.
func DefaultFormats() Formats {
	return Formats{
		ChangelogMarker:  "<!-- Changelog list -->",
		ChangelogHeading: "## {{.Version}}",
		ChangelogEntry: "## {{.Version}} [![Material Design Icons version]({{.BadgeURL}})](https://materialdesignicons.com)\n" +
			"\n" +
			"_No changes_",
		ReadmeRelease:   "New v{{.Version}} released",
		BadgeURL:        "https://img.shields.io/badge/{{.Upstream}}-v{{.UpstreamVersion}}-blue.svg?style=flat-square",
		ManifestVersion: `"version": "{{.Version}}"`,
	}
}

// VersionData is one side of a substitution: the package version and the upstream version it ships.
type VersionData struct {
	Version         string
	Upstream        string
	UpstreamVersion string
}

// Miss records a fragment that was expected in a document but not found.
type Miss struct {
	File string `json:"file"`
	Text string `json:"text"`
}

// Result summarizes a bump.
type Result struct {
	Kind        Kind     `json:"kind"`
	NextVersion string   `json:"nextVersion"`
	Changed     []string `json:"changed"`
	Misses      []Miss   `json:"misses,omitempty"`
}

// Bumper rewrites the release documents of a package set.
type Bumper struct {
	RootDir   string
	Upstream  string
	Documents Documents
	Formats   Formats
	Logger    *log.Logger
}

// document is a file loaded for rewriting.
type document struct {
	path     string
	original string
	content  string
}

// Bump computes the next package version and rewrites every document.
//
// All documents are read before any is written, so a missing file leaves the
// tree untouched. Fragments that cannot be found are reported in Result.Misses
// and do not fail the bump; running Bump twice with the same triple changes
// nothing the second time.
func (b *Bumper) Bump(t Triple) (*Result, error) {
	kind, err := t.Kind()
	if err != nil {
		return nil, err
	}
	next, err := Inc(t.Package, kind)
	if err != nil {
		return nil, err
	}

	logger := b.Logger
	if logger == nil {
		logger = log.Default()
	}

	before, err := b.fragments(VersionData{Version: t.Package.String(), Upstream: b.Upstream, UpstreamVersion: t.Upstream.String()})
	if err != nil {
		return nil, err
	}
	after, err := b.fragments(VersionData{Version: next.String(), Upstream: b.Upstream, UpstreamVersion: t.NextUpstream.String()})
	if err != nil {
		return nil, err
	}

	result := &Result{Kind: kind, NextVersion: next.String(), Changed: []string{}}

	changelog, err := b.load(b.Documents.Changelog)
	if err != nil {
		return nil, err
	}
	readme, err := b.load(b.Documents.Readme)
	if err != nil {
		return nil, err
	}
	manifests := make([]*document, 0, len(b.Documents.Manifests))
	for _, p := range b.Documents.Manifests {
		doc, err := b.load(p)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, doc)
	}

	if missing := insertChangelogEntry(changelog, after); missing != "" {
		result.Misses = append(result.Misses, Miss{File: changelog.path, Text: missing})
	}
	for _, key := range []string{"ReadmeRelease", "BadgeURL"} {
		if !replaceFirst(readme, before[key], after[key]) {
			result.Misses = append(result.Misses, Miss{File: readme.path, Text: before[key]})
		}
	}
	for _, doc := range manifests {
		if !replaceFirst(doc, before["ManifestVersion"], after["ManifestVersion"]) {
			result.Misses = append(result.Misses, Miss{File: doc.path, Text: before["ManifestVersion"]})
		}
	}

	for _, doc := range append([]*document{changelog, readme}, manifests...) {
		if doc.content == doc.original {
			continue
		}
		if err := os.WriteFile(doc.path, []byte(doc.content), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", doc.path, err)
		}
		result.Changed = append(result.Changed, doc.path)
		logger.Info("Updated", "file", doc.path, "version", result.NextVersion)
	}

	for _, miss := range result.Misses {
		logger.Warn("Fragment not found, document left unchanged", "file", miss.File, "text", miss.Text)
	}

	return result, nil
}

// fragments expands every format for one side of the substitution.
func (b *Bumper) fragments(data VersionData) (map[string]string, error) {
	vars := map[string]string{
		"Version":         data.Version,
		"Upstream":        data.Upstream,
		"UpstreamVersion": data.UpstreamVersion,
	}

	badge, err := templateutil.Expand(b.Formats.BadgeURL, vars)
	if err != nil {
		return nil, fmt.Errorf("badgeURL: %w", err)
	}
	vars["BadgeURL"] = badge

	return templateutil.ExpandAll(map[string]string{
		"ChangelogMarker":  b.Formats.ChangelogMarker,
		"ChangelogHeading": b.Formats.ChangelogHeading,
		"ChangelogEntry":   b.Formats.ChangelogEntry,
		"ReadmeRelease":    b.Formats.ReadmeRelease,
		"BadgeURL":         b.Formats.BadgeURL,
		"ManifestVersion":  b.Formats.ManifestVersion,
	}, vars)
}

func (b *Bumper) load(rel string) (*document, error) {
	p := rel
	if !filepath.IsAbs(p) {
		p = filepath.Join(b.RootDir, rel)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}
	return &document{path: p, original: string(data), content: string(data)}, nil
}

// insertChangelogEntry puts the entry directly above the marker, keeping the
// marker for the next bump. It does nothing when the heading is already
// present. The returned text is the fragment that blocked the insertion.
func insertChangelogEntry(doc *document, fragments map[string]string) string {
	marker := fragments["ChangelogMarker"]
	if marker == "" {
		return "(empty changelog marker)"
	}
	if !strings.Contains(doc.content, marker) {
		return marker
	}
	if heading := fragments["ChangelogHeading"]; hasHeading(doc.content, heading) {
		return heading
	}
	doc.content = strings.Replace(doc.content, marker, fragments["ChangelogEntry"]+"\n\n"+marker, 1)
	return ""
}

func hasHeading(content, heading string) bool {
	if heading == "" {
		return false
	}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == heading || strings.HasPrefix(line, heading+" ") {
			return true
		}
	}
	return false
}

func replaceFirst(doc *document, old, replacement string) bool {
	if old == "" || !strings.Contains(doc.content, old) {
		return false
	}
	doc.content = strings.Replace(doc.content, old, replacement, 1)
	return true
}

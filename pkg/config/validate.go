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
	"fmt"

	"github.com/alexandremahdhaoui/iconforge/pkg/templateutil"
)

// ValidationError represents a single validation error.
type ValidationError struct {
	// Field is the path to the field that failed validation.
	Field string
	// Message describes the validation failure.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate validates the configuration and returns any validation errors.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	required := []struct {
		field string
		value string
	}{
		{"iconsDir", c.IconsDir},
		{"buildDir", c.BuildDir},
		{"publishDir", c.PublishDir},
		{"typingsFile", c.TypingsFile},
		{"release.upstream", c.Release.Upstream},
		{"release.documents.changelog", c.Release.Documents.Changelog},
		{"release.documents.readme", c.Release.Documents.Readme},
		{"release.formats.changelogMarker", c.Release.Formats.ChangelogMarker},
		{"release.formats.changelogHeading", c.Release.Formats.ChangelogHeading},
		{"release.formats.changelogEntry", c.Release.Formats.ChangelogEntry},
		{"release.formats.readmeRelease", c.Release.Formats.ReadmeRelease},
		{"release.formats.badgeURL", c.Release.Formats.BadgeURL},
		{"release.formats.manifestVersion", c.Release.Formats.ManifestVersion},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, ValidationError{Field: r.field, Message: "required field is missing"})
		}
	}

	if c.PublishDir != "" {
		if _, err := templateutil.Expand(c.PublishDir, map[string]string{"Target": "react"}); err != nil {
			errs = append(errs, ValidationError{Field: "publishDir", Message: err.Error()})
		}
	}

	for i, m := range c.Release.Documents.Manifests {
		if m == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("release.documents.manifests[%d]", i),
				Message: "must not be empty",
			})
		}
	}

	sample := map[string]string{
		"Version":         "1.0.0",
		"Upstream":        "upstream",
		"UpstreamVersion": "1.0.0",
		"BadgeURL":        "https://example.com/badge.svg",
	}
	formats := []struct {
		field  string
		format string
	}{
		{"release.formats.changelogHeading", c.Release.Formats.ChangelogHeading},
		{"release.formats.changelogEntry", c.Release.Formats.ChangelogEntry},
		{"release.formats.readmeRelease", c.Release.Formats.ReadmeRelease},
		{"release.formats.badgeURL", c.Release.Formats.BadgeURL},
		{"release.formats.manifestVersion", c.Release.Formats.ManifestVersion},
	}
	for _, f := range formats {
		if f.format == "" {
			continue
		}
		if _, err := templateutil.Expand(f.format, sample); err != nil {
			errs = append(errs, ValidationError{Field: f.field, Message: err.Error()})
		}
	}

	return errs
}

// ValidateError joins the validation errors into one error, or returns nil.
func (c *Config) ValidateError() error {
	errs := c.Validate()
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("invalid configuration: %v", errs[0])
	default:
		return fmt.Errorf("invalid configuration: %v (and %d more)", errs[0], len(errs)-1)
	}
}

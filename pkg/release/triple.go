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
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

var (
	// ErrMissingArguments is returned when fewer than three versions are given.
	ErrMissingArguments = errors.New("missing arguments")
	// ErrInvalidVersion is returned when any of the three versions is not a semantic version.
	ErrInvalidVersion = errors.New("not all arguments are valid semver")
)

// Triple holds the versions driving a release bump.
type Triple struct {
	// Upstream is the icon library version the packages are currently built from.
	Upstream *semver.Version
	// NextUpstream is the icon library version being released.
	NextUpstream *semver.Version
	// Package is the current version of the published packages.
	Package *semver.Version
}

// ParseTriple parses the upstream, next upstream and package versions, in that order.
func ParseTriple(args []string) (Triple, error) {
	if len(args) < 3 || args[0] == "" || args[1] == "" || args[2] == "" {
		return Triple{}, ErrMissingArguments
	}

	versions := make([]*semver.Version, 3)
	for i, arg := range args[:3] {
		v, err := ParseVersion(arg)
		if err != nil {
			return Triple{}, fmt.Errorf("%w: %w", ErrInvalidVersion, err)
		}
		versions[i] = v
	}

	return Triple{Upstream: versions[0], NextUpstream: versions[1], Package: versions[2]}, nil
}

// Kind returns the difference between the two upstream versions.
func (t Triple) Kind() (Kind, error) {
	kind, err := Diff(t.Upstream, t.NextUpstream)
	if err != nil {
		return "", fmt.Errorf("comparing upstream %s and %s: %w", t.Upstream, t.NextUpstream, err)
	}
	return kind, nil
}

// Next returns the package version bumped by the upstream difference.
func (t Triple) Next() (*semver.Version, error) {
	kind, err := t.Kind()
	if err != nil {
		return nil, err
	}
	return Inc(t.Package, kind)
}

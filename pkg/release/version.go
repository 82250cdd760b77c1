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
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Kind is the class of difference between two versions.
type Kind string

// Release kinds, named like their node-semver counterparts.
const (
	KindMajor      Kind = "major"
	KindMinor      Kind = "minor"
	KindPatch      Kind = "patch"
	KindPremajor   Kind = "premajor"
	KindPreminor   Kind = "preminor"
	KindPrepatch   Kind = "prepatch"
	KindPrerelease Kind = "prerelease"
)

// ErrNoChange is returned by Diff when both versions are equal.
var ErrNoChange = errors.New("versions are identical")

// ParseVersion parses a strict x.y.z[-pre][+meta] version. A leading "v" is accepted.
func ParseVersion(s string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(strings.TrimPrefix(strings.TrimSpace(s), "v"))
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version %q: %w", s, err)
	}
	return v, nil
}

// Diff classifies the change between a and b, whichever is higher.
//
// A change towards a pre-release is reported as the matching "pre" kind. Going
// from a pre-release to its release is reported as the release kind it completes.
func Diff(a, b *semver.Version) (Kind, error) {
	cmp := a.Compare(b)
	if cmp == 0 {
		return "", ErrNoChange
	}

	high, low := b, a
	if cmp > 0 {
		high, low = a, b
	}
	highHasPre := high.Prerelease() != ""
	lowHasPre := low.Prerelease() != ""

	if lowHasPre && !highHasPre {
		if low.Patch() == 0 && low.Minor() == 0 {
			return KindMajor, nil
		}
		if compareMain(low, high) == 0 {
			if low.Minor() != 0 && low.Patch() == 0 {
				return KindMinor, nil
			}
			return KindPatch, nil
		}
	}

	pre := highHasPre
	switch {
	case a.Major() != b.Major():
		return withPre(KindMajor, pre), nil
	case a.Minor() != b.Minor():
		return withPre(KindMinor, pre), nil
	case a.Patch() != b.Patch():
		return withPre(KindPatch, pre), nil
	default:
		return KindPrerelease, nil
	}
}

func withPre(k Kind, pre bool) Kind {
	if !pre {
		return k
	}
	return "pre" + k
}

func compareMain(a, b *semver.Version) int {
	for _, pair := range [][2]uint64{{a.Major(), b.Major()}, {a.Minor(), b.Minor()}, {a.Patch(), b.Patch()}} {
		switch {
		case pair[0] < pair[1]:
			return -1
		case pair[0] > pair[1]:
			return 1
		}
	}
	return 0
}

// mutableVersion is the working copy used by Inc.
type mutableVersion struct {
	major, minor, patch uint64
	pre                 []string
}

// Inc returns v incremented by kind.
//
//	Inc(2.5.1, minor)      == 2.6.0
//	Inc(2.5.1, prepatch)   == 2.5.2-0
//	Inc(2.0.0-rc.1, major) == 2.0.0
func Inc(v *semver.Version, kind Kind) (*semver.Version, error) {
	m := mutableVersion{major: v.Major(), minor: v.Minor(), patch: v.Patch()}
	if p := v.Prerelease(); p != "" {
		m.pre = strings.Split(p, ".")
	}

	switch kind {
	case KindPremajor:
		m.pre = nil
		m.patch, m.minor = 0, 0
		m.major++
		m.incPre()
	case KindPreminor:
		m.pre = nil
		m.patch = 0
		m.minor++
		m.incPre()
	case KindPrepatch:
		m.pre = nil
		m.incPatch()
		m.incPre()
	case KindPrerelease:
		if len(m.pre) == 0 {
			m.incPatch()
		}
		m.incPre()
	case KindMajor:
		if m.minor != 0 || m.patch != 0 || len(m.pre) == 0 {
			m.major++
		}
		m.minor, m.patch, m.pre = 0, 0, nil
	case KindMinor:
		if m.patch != 0 || len(m.pre) == 0 {
			m.minor++
		}
		m.patch, m.pre = 0, nil
	case KindPatch:
		m.incPatch()
	default:
		return nil, fmt.Errorf("unknown release kind %q", kind)
	}

	return semver.New(m.major, m.minor, m.patch, strings.Join(m.pre, "."), ""), nil
}

func (m *mutableVersion) incPatch() {
	if len(m.pre) == 0 {
		m.patch++
	}
	m.pre = nil
}

// incPre bumps the last numeric pre-release identifier, or appends "0" when there is none.
func (m *mutableVersion) incPre() {
	for i := len(m.pre) - 1; i >= 0; i-- {
		n, err := strconv.ParseUint(m.pre[i], 10, 64)
		if err != nil {
			continue
		}
		m.pre[i] = strconv.FormatUint(n+1, 10)
		return
	}
	m.pre = append(m.pre, "0")
}

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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustVersion(t *testing.T, s string) string {
	t.Helper()
	v, err := ParseVersion(s)
	require.NoError(t, err)
	return v.String()
}

func TestParseVersion(t *testing.T) {
	assert.Equal(t, "1.2.3", mustVersion(t, "1.2.3"))
	assert.Equal(t, "1.2.3", mustVersion(t, "v1.2.3"))
	assert.Equal(t, "1.2.3-beta.1", mustVersion(t, "1.2.3-beta.1"))

	for _, bad := range []string{"", "1.2", "one.two.three", "1.2.3.4"} {
		_, err := ParseVersion(bad)
		assert.Error(t, err, bad)
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		a, b string
		want Kind
	}{
		{"1.2.0", "1.3.0", KindMinor},
		{"1.2.0", "2.0.0", KindMajor},
		{"1.2.0", "1.2.1", KindPatch},
		{"1.3.0", "1.2.0", KindMinor},
		{"1.2.0", "2.0.0-beta.0", KindPremajor},
		{"1.2.0", "1.3.0-rc.1", KindPreminor},
		{"1.2.0", "1.2.1-0", KindPrepatch},
		{"1.2.1-0", "1.2.1-1", KindPrerelease},
		{"2.0.0-rc.1", "2.0.0", KindMajor},
		{"1.3.0-rc.1", "1.3.0", KindMinor},
		{"1.2.4-rc.1", "1.2.4", KindPatch},
	}

	for _, tt := range tests {
		t.Run(tt.a+"->"+tt.b, func(t *testing.T) {
			a, err := ParseVersion(tt.a)
			require.NoError(t, err)
			b, err := ParseVersion(tt.b)
			require.NoError(t, err)

			got, err := Diff(a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiff_Identical(t *testing.T) {
	a, err := ParseVersion("1.2.3")
	require.NoError(t, err)

	_, err = Diff(a, a)
	require.ErrorIs(t, err, ErrNoChange)
}

func TestInc(t *testing.T) {
	tests := []struct {
		version string
		kind    Kind
		want    string
	}{
		{"2.5.1", KindMinor, "2.6.0"},
		{"2.5.1", KindMajor, "3.0.0"},
		{"2.5.1", KindPatch, "2.5.2"},
		{"2.5.1", KindPremajor, "3.0.0-0"},
		{"2.5.1", KindPreminor, "2.6.0-0"},
		{"2.5.1", KindPrepatch, "2.5.2-0"},
		{"2.5.1", KindPrerelease, "2.5.2-0"},
		{"2.5.2-0", KindPrerelease, "2.5.2-1"},
		{"2.5.2-beta", KindPrerelease, "2.5.2-beta.0"},
		{"2.5.2-beta.3.x", KindPrerelease, "2.5.2-beta.4.x"},
		{"3.0.0-rc.1", KindMajor, "3.0.0"},
		{"3.1.0-rc.1", KindMajor, "4.0.0"},
		{"2.6.0-rc.1", KindMinor, "2.6.0"},
		{"2.5.2-rc.1", KindPatch, "2.5.2"},
	}

	for _, tt := range tests {
		t.Run(tt.version+"+"+string(tt.kind), func(t *testing.T) {
			v, err := ParseVersion(tt.version)
			require.NoError(t, err)

			got, err := Inc(v, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestInc_UnknownKind(t *testing.T) {
	v, err := ParseVersion("1.0.0")
	require.NoError(t, err)

	_, err = Inc(v, Kind("sideways"))
	require.Error(t, err)
}

func TestParseTriple(t *testing.T) {
	triple, err := ParseTriple([]string{"1.2.0", "1.3.0", "2.5.1"})
	require.NoError(t, err)

	next, err := triple.Next()
	require.NoError(t, err)
	assert.Equal(t, "2.6.0", next.String())

	_, err = ParseTriple([]string{"1.2.0", "1.3.0"})
	assert.ErrorIs(t, err, ErrMissingArguments)

	_, err = ParseTriple([]string{"1.2.0", "", "2.5.1"})
	assert.ErrorIs(t, err, ErrMissingArguments)

	_, err = ParseTriple([]string{"1.2.0", "latest", "2.5.1"})
	assert.ErrorIs(t, err, ErrInvalidVersion)
	assert.Contains(t, err.Error(), `"latest"`)
}

func TestTriple_Next_SameUpstream(t *testing.T) {
	triple, err := ParseTriple([]string{"1.2.0", "1.2.0", "2.5.1"})
	require.NoError(t, err)

	_, err = triple.Next()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoChange))
}

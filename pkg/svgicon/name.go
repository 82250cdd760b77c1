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

package svgicon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NameSuffix is appended to every normalized icon name.
const NameSuffix = "Icon"

// NormalizeName converts a space or hyphen separated base name into a component name.
//
// Only the first rune of each word is upper-cased; the rest is kept as is.
//
//	NormalizeName("arrow-left") == "ArrowLeftIcon"
//	NormalizeName("arrow left") == "ArrowLeftIcon"
func NormalizeName(base string) string {
	words := strings.FieldsFunc(base, func(r rune) bool { return r == ' ' || r == '-' })

	var b strings.Builder
	for _, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(word[size:])
	}
	b.WriteString(NameSuffix)
	return b.String()
}

// ValidName reports whether a normalized name can be used as a component identifier.
// The part before NameSuffix must start with an upper-case letter.
func ValidName(name string) bool {
	stem := strings.TrimSuffix(name, NameSuffix)
	r, _ := utf8.DecodeRuneInString(stem)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

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
	"encoding/json"
	"fmt"
	"regexp"
)

var (
	pathTagRegexp   = regexp.MustCompile(`<path\s([^>]*)>`)
	attributeRegexp = regexp.MustCompile(`(?:\s*|^)([^= ]*)="([^"]*)"`)
)

// Attributes maps the attribute names of a single <path> tag to their values.
type Attributes map[string]string

// anyValue marks an allow-list entry that accepts every value.
const anyValue = "*"

// allowedAttributes lists the attribute/value pairs a path may carry.
// fill="none" is allowed so that decorative paths can be filtered out.
// fill="#000" and fill-rule="nonzero" are the SVG defaults.
var allowedAttributes = map[string][]string{
	"d":         {anyValue},
	"fill":      {"none", "#000"},
	"fill-rule": {"nonzero"},
}

// UnknownAttributeError is returned when a path carries an attribute outside the allow-list.
type UnknownAttributeError struct {
	File    string
	Attr    string
	Value   string
	Content string
}

// Error implements the error interface.
func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown SVG attr in %s: %s=%q\n%s", e.File, e.Attr, e.Value, e.Content)
}

// PathCountError is returned when a file does not contain exactly one usable path.
type PathCountError struct {
	File       string
	Count      int
	Candidates []Attributes
	Content    string
}

// Error implements the error interface.
func (e *PathCountError) Error() string {
	dump, err := json.MarshalIndent(e.Candidates, "", "  ")
	if err != nil {
		dump = []byte(fmt.Sprintf("%v", e.Candidates))
	}
	return fmt.Sprintf("wrong number of paths in %s: %d\n%s\n%s", e.File, e.Count, dump, e.Content)
}

func isAllowed(attr, value string) bool {
	values, ok := allowedAttributes[attr]
	if !ok {
		return false
	}
	for _, v := range values {
		if v == anyValue || v == value {
			return true
		}
	}
	return false
}

// parseAttributes validates every attribute of one <path> tag body.
func parseAttributes(tagBody, name, content string) (Attributes, error) {
	attrs := make(Attributes)
	for _, m := range attributeRegexp.FindAllStringSubmatch(tagBody, -1) {
		attr, value := m[1], m[2]
		if !isAllowed(attr, value) {
			return nil, &UnknownAttributeError{File: name, Attr: attr, Value: value, Content: content}
		}
		attrs[attr] = value
	}
	return attrs, nil
}

// ExtractPath returns the d attribute of the only drawable path in an SVG document.
//
// name is only used in error messages. Paths with fill="none" are dropped after
// their attributes have been validated. The call fails with *UnknownAttributeError
// when any path carries a disallowed attribute, and with *PathCountError unless
// exactly one path remains and it has a non-empty d attribute.
func ExtractPath(content []byte, name string) (string, error) {
	raw := string(content)

	candidates := []Attributes{}
	for _, m := range pathTagRegexp.FindAllStringSubmatch(raw, -1) {
		attrs, err := parseAttributes(m[1], name, raw)
		if err != nil {
			return "", err
		}
		if attrs["fill"] == "none" {
			continue
		}
		candidates = append(candidates, attrs)
	}

	if len(candidates) != 1 || candidates[0]["d"] == "" {
		return "", &PathCountError{
			File:       name,
			Count:      len(candidates),
			Candidates: candidates,
			Content:    raw,
		}
	}

	return candidates[0]["d"], nil
}

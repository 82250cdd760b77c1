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

// Package templateutil renders the small text templates used to describe
// versioned document fragments (badge URLs, changelog headings, manifest fields).
package templateutil

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

// Expand renders str with text/template against vars.
//
// Behavior:
//   - Strings without "{{" are returned unchanged
//   - Variables are referenced as {{.Name}}
//   - Referencing a variable missing from vars is an error
//
// Error handling:
//   - A missing variable produces a message naming the variable and the available ones.
//     Example: "template expansion failed: variable 'Upstream' not found for template 'v{{.Upstream}}'. Available: [Version]"
func Expand(str string, vars map[string]string) (string, error) {
	if !strings.Contains(str, "{{") {
		return str, nil
	}

	tmpl, err := template.New("fragment").Option("missingkey=error").Parse(str)
	if err != nil {
		return "", fmt.Errorf("template parsing failed for '%s': %w", str, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		available := make([]string, 0, len(vars))
		for k := range vars {
			available = append(available, k)
		}
		sort.Strings(available)

		// text/template reports: map has no entry for key "NAME"
		if missing := missingKey(err.Error()); missing != "" {
			return "", fmt.Errorf("template expansion failed: variable '%s' not found for template '%s'. Available: %v",
				missing, str, available)
		}
		return "", fmt.Errorf("template expansion failed for '%s': %w. Available: %v", str, err, available)
	}

	return buf.String(), nil
}

// ExpandAll renders every template of a map, keyed like the input.
func ExpandAll(templates map[string]string, vars map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(templates))
	for key, str := range templates {
		expanded, err := Expand(str, vars)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out[key] = expanded
	}
	return out, nil
}

func missingKey(msg string) string {
	const marker = "map has no entry for key \""
	_, rest, ok := strings.Cut(msg, marker)
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(rest, "\"")
	return name
}

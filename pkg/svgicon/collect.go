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
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/charmbracelet/log"
)

// svgExtLen is the length of the ".svg" extension stripped from file names.
const svgExtLen = len(".svg")

// Collect walks root inside fsys and returns one Icon per usable SVG file.
//
// Sub-directories, including links to directories, are walked recursively and
// their icons are appended in directory order. Files whose normalized name is invalid, or whose path cannot
// be extracted, are logged and skipped. Only failures to read the tree itself
// are returned.
func Collect(fsys fs.FS, root string, logger *log.Logger) ([]Icon, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("reading icon directory %s: %w", root, err)
	}

	icons := []Icon{}
	for _, entry := range entries {
		filePath := path.Join(root, entry.Name())

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			info, err := fs.Stat(fsys, filePath)
			if err != nil {
				logger.Warn("Skipping broken link", "file", filePath, "error", err)
				continue
			}
			isDir = info.IsDir()
		}

		if isDir {
			sub, err := Collect(fsys, filePath, logger)
			if err != nil {
				return nil, err
			}
			icons = append(icons, sub...)
			continue
		}

		fileName := entry.Name()
		base := ""
		if len(fileName) > svgExtLen {
			base = fileName[:len(fileName)-svgExtLen]
		}
		name := NormalizeName(base)

		if !ValidName(name) {
			logger.Warn("Skipping icon with invalid name", "file", filePath)
			continue
		}

		content, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return nil, fmt.Errorf("reading icon %s: %w", filePath, err)
		}

		pathData, err := ExtractPath(content, filePath)
		if err != nil {
			logger.Warn("Skipping icon", "file", filePath, "error", err)
			continue
		}

		icons = append(icons, NewIcon(name, filePath, pathData))
	}

	return icons, nil
}

// Duplicates returns every icon name produced by more than one source file,
// mapped to those source files in collection order.
func Duplicates(icons []Icon) map[string][]string {
	sources := make(map[string][]string, len(icons))
	for _, icon := range icons {
		sources[icon.Name] = append(sources[icon.Name], icon.SourceFileName)
	}

	dups := make(map[string][]string)
	for name, files := range sources {
		if len(files) > 1 {
			dups[name] = files
		}
	}
	return dups
}

// DuplicateNames returns the sorted keys of Duplicates(icons).
func DuplicateNames(icons []Icon) []string {
	dups := Duplicates(icons)
	names := make([]string, 0, len(dups))
	for name := range dups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

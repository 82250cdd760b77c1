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

// Package svgicon turns a directory tree of single-path SVG files into icon
// descriptors.
//
// Each SVG file must carry exactly one meaningful <path> element. Paths with
// fill="none" are decorative and ignored; any other styling attribute makes the
// file unusable and it is skipped by Collect.
package svgicon

import "fmt"

// Icon describes one generated icon component.
//
// An Icon is created by Collect and never modified afterwards. PathData is
// always non-empty.
type Icon struct {
	// Name is the public component identifier (e.g. "ArrowLeftIcon").
	Name string `json:"name"`
	// SourceFileName is the SVG file the icon was extracted from.
	SourceFileName string `json:"sourceFileName"`
	// FileName is the generated module file name (e.g. "ArrowLeftIcon.js").
	FileName string `json:"fileName"`
	// TypeDeclarationFileName is the generated declaration file name (e.g. "ArrowLeftIcon.d.ts").
	TypeDeclarationFileName string `json:"typeDeclarationFileName"`
	// PathData is the value of the SVG path's d attribute.
	PathData string `json:"pathData"`
}

// NewIcon builds the descriptor for a normalized name.
func NewIcon(name, sourceFileName, pathData string) Icon {
	return Icon{
		Name:                    name,
		SourceFileName:          sourceFileName,
		FileName:                name + ".js",
		TypeDeclarationFileName: name + ".d.ts",
		PathData:                pathData,
	}
}

// String implements fmt.Stringer.
func (i Icon) String() string {
	return fmt.Sprintf("%s (%s)", i.Name, i.SourceFileName)
}

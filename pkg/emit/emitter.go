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

// Package emit renders, bundles and writes the generated icon components.
package emit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexandremahdhaoui/iconforge/pkg/svgicon"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DefaultTypingsFileName is the aggregate declaration file written into DistDir.
const DefaultTypingsFileName = "typings.d.ts"

// Renderer renders the sources of one target ecosystem.
type Renderer interface {
	// RenderComponent returns the component module source for an icon.
	RenderComponent(icon svgicon.Icon) (string, error)
	// RenderTypeDeclaration returns the declaration written next to the component.
	RenderTypeDeclaration(icon svgicon.Icon) (string, error)
	// RenderAggregateTypeDeclaration returns the declarations shared by all icons.
	RenderAggregateTypeDeclaration() (string, error)
}

// DuplicateNameError is returned when several source files normalize to the same icon name.
type DuplicateNameError struct {
	// Names lists the duplicated names in sorted order.
	Names []string
	// Sources maps each duplicated name to the files producing it.
	Sources map[string][]string
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	parts := make([]string, 0, len(e.Names))
	for _, name := range e.Names {
		parts = append(parts, fmt.Sprintf("%s (%s)", name, strings.Join(e.Sources[name], ", ")))
	}
	return fmt.Sprintf("duplicate icon names: %s", strings.Join(parts, "; "))
}

// Report summarizes one Emit run.
type Report struct {
	// Icons is the number of generated components.
	Icons int `json:"icons"`
	// Components lists the written component modules.
	Components []string `json:"components"`
	// TypingsPath is the aggregate declaration file.
	TypingsPath string `json:"typingsPath"`
}

// Emitter writes one component module and one declaration file per icon.
type Emitter struct {
	// BuildDir holds the transient component sources fed to the Bundler.
	BuildDir string
	// PublishDir receives the bundled modules and their declaration files.
	PublishDir string
	// DistDir receives the aggregate declaration file.
	DistDir string
	// TypingsFileName defaults to DefaultTypingsFileName.
	TypingsFileName string

	Renderer Renderer
	Bundler  Bundler
	Logger   *log.Logger
}

// Emit generates every icon in order, then the aggregate declaration file.
//
// Icons are processed one at a time. A rendering, writing or bundling error
// aborts the run; transient sources are removed whether or not the run succeeds.
func (e *Emitter) Emit(ctx context.Context, icons []svgicon.Icon) (*Report, error) {
	if e.Renderer == nil || e.Bundler == nil {
		return nil, errors.New("emitter requires a renderer and a bundler")
	}
	if names := svgicon.DuplicateNames(icons); len(names) > 0 {
		return nil, &DuplicateNameError{Names: names, Sources: svgicon.Duplicates(icons)}
	}

	logger := e.Logger
	if logger == nil {
		logger = log.Default()
	}

	runDir := filepath.Join(e.BuildDir, uuid.NewString())
	for _, dir := range []string{runDir, e.PublishDir, e.DistDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	var transient []string
	defer func() {
		if cleanupErr := cleanup(runDir, transient); cleanupErr != nil {
			logger.Warn("Failed to clean up transient sources", "dir", runDir, "error", cleanupErr)
		}
	}()

	report := &Report{Components: make([]string, 0, len(icons))}
	for i, icon := range icons {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		logger.Infof("Generating %s... (%d/%d)", icon.Name, i+1, len(icons))

		inputPath := filepath.Join(runDir, icon.FileName)
		outputPath := filepath.Join(e.PublishDir, icon.FileName)

		source, err := e.Renderer.RenderComponent(icon)
		if err != nil {
			return nil, fmt.Errorf("rendering component %s: %w", icon.Name, err)
		}
		if err := os.WriteFile(inputPath, []byte(source), 0o644); err != nil {
			return nil, fmt.Errorf("writing transient source %s: %w", inputPath, err)
		}
		transient = appendUnique(transient, inputPath)

		if err := e.Bundler.Bundle(ctx, inputPath, outputPath); err != nil {
			return nil, fmt.Errorf("bundling %s: %w", icon.Name, err)
		}

		declaration, err := e.Renderer.RenderTypeDeclaration(icon)
		if err != nil {
			return nil, fmt.Errorf("rendering type declaration %s: %w", icon.Name, err)
		}
		declarationPath := filepath.Join(e.PublishDir, icon.TypeDeclarationFileName)
		if err := os.WriteFile(declarationPath, []byte(declaration), 0o644); err != nil {
			return nil, fmt.Errorf("writing type declaration %s: %w", declarationPath, err)
		}

		report.Components = append(report.Components, outputPath)
	}

	logger.Info("Generating typings...")
	typings, err := e.Renderer.RenderAggregateTypeDeclaration()
	if err != nil {
		return nil, fmt.Errorf("rendering aggregate type declaration: %w", err)
	}

	typingsFileName := e.TypingsFileName
	if typingsFileName == "" {
		typingsFileName = DefaultTypingsFileName
	}
	report.TypingsPath = filepath.Join(e.DistDir, typingsFileName)
	if err := os.WriteFile(report.TypingsPath, []byte(typings), 0o644); err != nil {
		return nil, fmt.Errorf("writing typings %s: %w", report.TypingsPath, err)
	}

	report.Icons = len(report.Components)
	return report, nil
}

// cleanup removes the transient sources, then the run directory.
func cleanup(runDir string, paths []string) error {
	var errs []error
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
	}
	if err := os.RemoveAll(runDir); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func appendUnique(paths []string, p string) []string {
	for _, existing := range paths {
		if existing == p {
			return paths
		}
	}
	return append(paths, p)
}

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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexandremahdhaoui/iconforge/pkg/config"
	"github.com/alexandremahdhaoui/iconforge/pkg/emit"
	"github.com/alexandremahdhaoui/iconforge/pkg/svgicon"
	"github.com/alexandremahdhaoui/iconforge/pkg/target"
	"github.com/charmbracelet/log"
)

// run executes the generation in CLI mode.
func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing target (known targets: %s)", strings.Join(target.Names(), ", "))
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: Name})
	report, err := generate(context.Background(), cfg, args[0], logger)
	if err != nil {
		return err
	}

	logger.Info("Generated components", "icons", report.Icons, "typings", report.TypingsPath)
	return nil
}

// generate collects the icons of cfg.IconsDir and emits them for the named target.
func generate(ctx context.Context, cfg *config.Config, targetName string, logger *log.Logger) (*emit.Report, error) {
	if err := cfg.ValidateError(); err != nil {
		return nil, err
	}

	tgt, err := target.Lookup(targetName)
	if err != nil {
		return nil, err
	}
	renderer, err := target.NewRenderer(tgt)
	if err != nil {
		return nil, err
	}

	publishDir, err := cfg.PublishDirFor(tgt.Name)
	if err != nil {
		return nil, err
	}
	distDir, err := cfg.DistDirFor(tgt.Name)
	if err != nil {
		return nil, err
	}

	iconsDir := cfg.Resolve(cfg.IconsDir)
	if info, err := os.Stat(iconsDir); err != nil || !info.IsDir() {
		return nil, errors.Join(fmt.Errorf("icons directory %s is not readable", iconsDir), err)
	}

	logger.Info("Collecting components...", "dir", iconsDir)
	icons, err := svgicon.Collect(os.DirFS(iconsDir), ".", logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Generating components...", "target", tgt.Name, "icons", len(icons))
	emitter := &emit.Emitter{
		BuildDir:        cfg.Resolve(cfg.BuildDir),
		PublishDir:      publishDir,
		DistDir:         distDir,
		TypingsFileName: cfg.TypingsFile,
		Renderer:        renderer,
		Bundler:         tgt.Bundler(),
		Logger:          logger,
	}

	return emitter.Emit(ctx, icons)
}

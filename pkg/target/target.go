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

// Package target holds the per-ecosystem component templates and bundler settings.
package target

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"text/template"

	"github.com/alexandremahdhaoui/iconforge/pkg/emit"
	"github.com/alexandremahdhaoui/iconforge/pkg/svgicon"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Target describes one UI component ecosystem.
type Target struct {
	// Name identifies the target (e.g. "react"). It also prefixes its template files.
	Name string
	// Runtime is the module kept external when bundling (e.g. "react").
	Runtime string
	// JSXFactory is the function JSX elements compile to.
	JSXFactory string
	// JSXFragment is the component JSX fragments compile to.
	JSXFragment string
	// TypePrefix prefixes the shared declaration types (e.g. "RemixiconReact").
	TypePrefix string
}

var targets = map[string]Target{
	"react": {
		Name:        "react",
		Runtime:     "react",
		JSXFactory:  "React.createElement",
		JSXFragment: "React.Fragment",
		TypePrefix:  "RemixiconReact",
	},
	"preact": {
		Name:        "preact",
		Runtime:     "preact",
		JSXFactory:  "h",
		JSXFragment: "Fragment",
		TypePrefix:  "RemixiconPreact",
	},
}

// Names returns the known target names, sorted.
func Names() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the target registered under name.
func Lookup(name string) (Target, error) {
	t, ok := targets[name]
	if !ok {
		return Target{}, fmt.Errorf("unknown target %q (known targets: %v)", name, Names())
	}
	return t, nil
}

// Bundler returns the esbuild settings for the target.
func (t Target) Bundler() *emit.ESBuildBundler {
	return &emit.ESBuildBundler{
		External:    []string{t.Runtime},
		JSXFactory:  t.JSXFactory,
		JSXFragment: t.JSXFragment,
	}
}

// TemplateRenderer renders a target's embedded templates. It implements emit.Renderer.
type TemplateRenderer struct {
	target      Target
	component   *template.Template
	declaration *template.Template
	typings     *template.Template
}

var _ emit.Renderer = (*TemplateRenderer)(nil)

// componentData is the value passed to the per-icon templates.
type componentData struct {
	svgicon.Icon
	Target Target
}

// NewRenderer parses the templates of t.
func NewRenderer(t Target) (*TemplateRenderer, error) {
	r := &TemplateRenderer{target: t}

	var err error
	if r.component, err = parseTemplate(t.Name + ".component.js.tmpl"); err != nil {
		return nil, err
	}
	if r.declaration, err = parseTemplate(t.Name + ".d.ts.tmpl"); err != nil {
		return nil, err
	}
	if r.typings, err = parseTemplate(t.Name + ".typings.d.ts.tmpl"); err != nil {
		return nil, err
	}

	return r, nil
}

// RenderComponent implements emit.Renderer.
func (r *TemplateRenderer) RenderComponent(icon svgicon.Icon) (string, error) {
	return execute(r.component, componentData{Icon: icon, Target: r.target})
}

// RenderTypeDeclaration implements emit.Renderer.
func (r *TemplateRenderer) RenderTypeDeclaration(icon svgicon.Icon) (string, error) {
	return execute(r.declaration, componentData{Icon: icon, Target: r.target})
}

// RenderAggregateTypeDeclaration implements emit.Renderer.
func (r *TemplateRenderer) RenderAggregateTypeDeclaration() (string, error) {
	return execute(r.typings, r.target)
}

// parseTemplate parses a template from the embedded filesystem.
func parseTemplate(name string) (*template.Template, error) {
	tmpl, err := template.New(name).Option("missingkey=error").ParseFS(templatesFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return tmpl, nil
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

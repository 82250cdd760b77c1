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

package emit

import (
	"context"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// defaultExportFooter makes the default export the module value, so that
// require("pkg/HomeIcon") returns the component itself.
const defaultExportFooter = `if (module.exports.__esModule && "default" in module.exports) module.exports = module.exports.default;`

// Bundler transpiles one generated component source into its distributable module.
type Bundler interface {
	Bundle(ctx context.Context, inputPath, outputPath string) error
}

// ESBuildBundler bundles components into CommonJS modules with esbuild.
//
// The target runtime library listed in External is never bundled. The default
// export of the entry point becomes module.exports.
type ESBuildBundler struct {
	// External lists the module specifiers left as require() calls (e.g. "react").
	External []string
	// JSXFactory is the function JSX elements compile to (e.g. "React.createElement" or "h").
	JSXFactory string
	// JSXFragment is the fragment component JSX fragments compile to.
	JSXFragment string
	// Target is the language level of the output. Defaults to ES2015.
	Target api.Target
}

// Bundle implements Bundler.
func (b *ESBuildBundler) Bundle(ctx context.Context, inputPath, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := b.Target
	if target == api.DefaultTarget {
		target = api.ES2015
	}

	result := api.Build(api.BuildOptions{
		EntryPoints: []string{inputPath},
		Outfile:     outputPath,
		Bundle:      true,
		Write:       true,
		Format:      api.FormatCommonJS,
		Platform:    api.PlatformNeutral,
		Target:      target,
		External:    b.External,
		JSX:         api.JSXTransform,
		JSXFactory:  b.JSXFactory,
		JSXFragment: b.JSXFragment,
		Loader: map[string]api.Loader{
			".js": api.LoaderJSX,
		},
		Footer: map[string]string{
			"js": defaultExportFooter,
		},
		LogLevel: api.LogLevelSilent,
	})

	if len(result.Errors) > 0 {
		messages := api.FormatMessages(result.Errors, api.FormatMessagesOptions{
			Kind: api.ErrorMessage,
		})
		return fmt.Errorf("esbuild failed for %s: %s", inputPath, strings.TrimSpace(strings.Join(messages, "\n")))
	}

	return nil
}

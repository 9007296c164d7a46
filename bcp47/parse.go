/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package bcp47 parses, validates, and canonicalizes IETF BCP 47 language
// tags (RFC 5646) against a loaded copy of the IANA Language Subtag
// Registry.
//
// The public surface is intentionally small: load a Registry once with
// NewRegistry, LoadRegistryFile, or ParseRegistry, then call Parse against
// it as many times as needed. A Registry is read-only after it is built,
// so one instance may be shared across concurrently running Parse calls
// without locking.
package bcp47

import "golang.org/x/text/unicode/norm"

// parseContext is the per-call scratch state the pipeline stages share.
// The teacher implementation this package is derived from kept this state
// as process-wide mutable fields reset at the top of every parse; that
// would race across concurrent calls sharing one Registry, so here it
// lives entirely on a value created fresh by Parse and never escapes it.
type parseContext struct {
	registry *Registry
	raw      string
	results  Results

	tokens       []string
	hasBlankTag  bool
	illegalChars []string
	isWellFormed bool
	outOfOrder   bool

	extensions []extensionGroup
	privateUse []extensionGroup
}

// Parse classifies, validates, and (if well-formed) canonicalizes tag
// against reg. It never panics or returns a Go error for malformed
// input — every failure is reported through Results.ErrorMessages and
// Results.IsValid.
func Parse(reg *Registry, tag string) Results {
	ctx := &parseContext{
		registry:     reg,
		raw:          norm.NFC.String(tag),
		isWellFormed: true,
	}

	ctx.tokenize()
	if ctx.raw != "" {
		ctx.classify()
		ctx.validate()
	}
	ctx.canonicalize()

	return ctx.results
}

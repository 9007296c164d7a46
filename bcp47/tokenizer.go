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

package bcp47

import "strings"

// tokenize splits the raw input on "-" into ctx.tokens, flags any empty
// token via hasBlankTag (adjacent or leading/trailing hyphens), and scans
// the raw input for characters outside [A-Za-z0-9-], collecting each
// occurrence (duplicates retained, in order) into illegalChars. No case
// normalization happens here — classification and validation lowercase
// only at the point of registry lookup.
func (ctx *parseContext) tokenize() {
	for _, r := range ctx.raw {
		if !isLangtagChar(r) {
			ctx.illegalChars = append(ctx.illegalChars, string(r))
		}
	}

	if ctx.raw == "" {
		return
	}

	ctx.tokens = strings.Split(ctx.raw, "-")
	for _, t := range ctx.tokens {
		if t == "" {
			ctx.hasBlankTag = true
			break
		}
	}
}

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

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// scriptTitleCaser renders a script subtag in its canonical "Xxxx" form.
// Reused across calls; cases.Caser values are safe for concurrent use.
var scriptTitleCaser = cases.Title(language.Und) //nolint:gochecknoglobals // stateless, immutable caser.

// canonicalize runs the RFC 5646 Sec 4.5 canonicalization rules and writes
// Results.Canonicalize. Apart from the empty-input case, it is a no-op
// unless isWellFormed is true.
func (ctx *parseContext) canonicalize() {
	if ctx.raw == "" {
		empty := ""
		ctx.results.Canonicalize = &empty
		ctx.results.IsValid = false // Sec 9 open question: preserved, not "fixed".
		return
	}

	if !ctx.isWellFormed {
		return
	}

	lowerRaw := strings.ToLower(ctx.raw)
	if rec, ok := ctx.registry.Deprecated[lowerRaw]; ok {
		canon := rec.PreferredValue
		if canon == "" {
			canon = rec.TagOrSubtag
		}
		ctx.results.Canonicalize = &canon
		ctx.results.IsValid = true
		return
	}

	canon := ctx.render()
	ctx.results.Canonicalize = &canon
	ctx.results.IsValid = true
}

// render builds the canonical tag string from the classified components.
func (ctx *parseContext) render() string {
	origLanguage := ctx.results.LanguageTag
	language := origLanguage

	if rec, ok := ctx.registry.Languages[strings.ToLower(language)]; ok && rec.PreferredValue != "" {
		language = rec.PreferredValue
	}

	if len(ctx.results.ExtendedTags) > 0 {
		extlang := ctx.results.ExtendedTags[0]
		if rec, ok := ctx.registry.Extlangs[strings.ToLower(extlang)]; ok &&
			rec.PreferredValue != "" && len(rec.Prefix) > 0 && strings.EqualFold(rec.Prefix[0], language) {
			language = rec.PreferredValue
		}
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(language))

	ctx.renderScript(&b, origLanguage)
	ctx.renderRegion(&b)
	ctx.renderVariants(&b)
	ctx.renderExtensions(&b)
	ctx.renderPrivateUse(&b)

	return b.String()
}

// renderScript appends "-<Script>" unless the original (pre-extlang)
// primary language suppresses exactly that script. The suppression lookup
// intentionally uses the tag's original primary language subtag, not the
// post-promotion effective language (e.g. "zh-cmn-Hans-CN" consults "zh"'s
// Suppress-Script, not "cmn"'s) — see DESIGN.md.
func (ctx *parseContext) renderScript(b *strings.Builder, origLanguage string) {
	if len(ctx.results.ScriptTags) == 0 {
		return
	}
	script := ctx.results.ScriptTags[0]

	if rec, ok := ctx.registry.Languages[strings.ToLower(origLanguage)]; ok {
		if rec.SuppressScript != "" && strings.EqualFold(rec.SuppressScript, script) {
			return
		}
	}
	b.WriteByte('-')
	b.WriteString(scriptTitleCaser.String(strings.ToLower(script)))
}

// renderRegion appends "-<Region>" in its registry-canonical casing.
func (ctx *parseContext) renderRegion(b *strings.Builder) {
	if len(ctx.results.RegionTags) == 0 {
		return
	}
	region := ctx.results.RegionTags[0]
	rec, ok := ctx.registry.Regions[strings.ToLower(region)]

	var out string
	switch {
	case !ok:
		out = strings.ToUpper(region)
	case rec.PreferredValue != "":
		out = rec.PreferredValue
	default:
		out = rec.TagOrSubtag
	}
	b.WriteByte('-')
	b.WriteString(out)
}

// renderVariants appends each variant in input order, using its
// Preferred-Value when the registry specifies one.
func (ctx *parseContext) renderVariants(b *strings.Builder) {
	for _, v := range ctx.results.VariantTags {
		rec := ctx.registry.Variants[strings.ToLower(v)]
		out := rec.TagOrSubtag
		if rec.PreferredValue != "" {
			out = rec.PreferredValue
		}
		b.WriteByte('-')
		b.WriteString(out)
	}
}

// renderExtensions appends extension groups sorted by singleton
// (case-insensitive), preserving each payload's input case.
func (ctx *parseContext) renderExtensions(b *strings.Builder) {
	if len(ctx.extensions) == 0 {
		return
	}
	sorted := append([]extensionGroup(nil), ctx.extensions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return unicode.ToLower(rune(sorted[i].Singleton)) < unicode.ToLower(rune(sorted[j].Singleton))
	})
	for _, g := range sorted {
		fmt.Fprintf(b, "-%c", unicode.ToLower(rune(g.Singleton)))
		if g.Payload != "" {
			b.WriteByte('-')
			b.WriteString(g.Payload)
		}
	}
}

// renderPrivateUse appends only the first private-use group — validation
// already rejects any well-formed tag with more than one.
func (ctx *parseContext) renderPrivateUse(b *strings.Builder) {
	if len(ctx.privateUse) == 0 {
		return
	}
	g := ctx.privateUse[0]
	fmt.Fprintf(b, "-%c", unicode.ToLower(rune(g.Singleton)))
	if g.Payload != "" {
		b.WriteByte('-')
		b.WriteString(g.Payload)
	}
}

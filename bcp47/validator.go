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
	"strings"
)

// Private-use ranges the registry may or may not carry as expanded
// records (Sec 4.1 ADDED note); these literal bounds are the
// defense-in-depth fallback, not the primary source of truth.
const (
	privateLanguageLo = "qaa"
	privateLanguageHi = "qtz"
	privateScriptLo   = "Qaaa"
	privateScriptHi   = "Qabx"
	privateRegionQLo  = "QM"
	privateRegionQHi  = "QZ"
	privateRegionXLo  = "XA"
	privateRegionXHi  = "XZ"
)

func isPrivateLanguage(tag string) bool {
	return inRangeASCII(strings.ToLower(tag), privateLanguageLo, privateLanguageHi)
}

func isPrivateRegion(tag string) bool {
	upper := strings.ToUpper(tag)
	if upper == "AA" || upper == "ZZ" {
		return true
	}
	return inRangeASCII(upper, privateRegionQLo, privateRegionQHi) ||
		inRangeASCII(upper, privateRegionXLo, privateRegionXHi)
}

func isPrivateScript(tag string) bool {
	return inRangeASCII(titleCase(tag), privateScriptLo, privateScriptHi)
}

// addError appends a message to the result's error list.
func (ctx *parseContext) addError(msg string) {
	ctx.results.ErrorMessages = append(ctx.results.ErrorMessages, msg)
}

// validate runs the Pass 0 - Pass 6 structural and registry-membership
// checks described in SPEC_FULL.md Sec 4.4, appending a message per
// failure and clearing isWellFormed as each pass dictates. Only the
// whole-tag-deprecation and illegal-character checks in Pass 0 return
// early; every other failure is collected, never thrown.
func (ctx *parseContext) validate() {
	if ctx.validateGeneral() {
		return
	}
	ctx.validateLanguage()
	ctx.validateRegion()
	ctx.validateExtlang()
	ctx.validateScript()
	ctx.validateVariants()
	ctx.validatePrivateUse()
}

// validateGeneral runs Pass 0 and reports whether validation should stop
// (whole-tag deprecation or illegal characters).
func (ctx *parseContext) validateGeneral() (stop bool) {
	lowerRaw := strings.ToLower(ctx.raw)
	if rec, ok := ctx.registry.Deprecated[lowerRaw]; ok {
		if rec.PreferredValue != "" {
			ctx.addError(fmt.Sprintf(`Deprecated language tag "%s" use "%s".`, ctx.raw, rec.PreferredValue))
		} else {
			ctx.addError(fmt.Sprintf(`Deprecated language tag "%s" do not use.`, ctx.raw))
		}
		return true
	}

	if len(ctx.illegalChars) > 0 {
		ctx.addError(fmt.Sprintf(`Found illegal characters:" %s" in language tag.`, strings.Join(ctx.illegalChars, ", ")))
		ctx.isWellFormed = false
		return true
	}

	if ctx.outOfOrder {
		ctx.addError(fmt.Sprintf(`Language sub tags incorrectly order. Should be "%s".`, ctx.rebuildOrdered()))
		ctx.isWellFormed = false
	}

	if ctx.hasBlankTag {
		ctx.addError("Language tag has blank subtag(s) caused by more than one contiguous hyphen.")
		ctx.isWellFormed = false
	}

	return false
}

// rebuildOrdered reconstructs the tag in the role order the Classifier
// expects, for the out-of-order error message.
func (ctx *parseContext) rebuildOrdered() string {
	parts := []string{ctx.results.LanguageTag}
	parts = append(parts, ctx.results.ExtendedTags...)
	parts = append(parts, ctx.results.ScriptTags...)
	parts = append(parts, ctx.results.RegionTags...)
	parts = append(parts, ctx.results.VariantTags...)
	parts = append(parts, ctx.results.ExtensionTags...)
	parts = append(parts, ctx.results.PrivateUseTags...)
	return strings.Join(parts, "-")
}

// validateLanguage is Pass 1.
func (ctx *parseContext) validateLanguage() {
	tag := ctx.results.LanguageTag
	lower := strings.ToLower(tag)
	if _, ok := ctx.registry.Languages[lower]; ok {
		return
	}
	if isPrivateLanguage(lower) {
		return
	}
	ctx.addError(fmt.Sprintf(`Language subtag "%s" is not valid`, tag))
	ctx.isWellFormed = false
}

// validateRegion is Pass 2.
func (ctx *parseContext) validateRegion() {
	regions := ctx.results.RegionTags
	if len(regions) > 1 {
		ctx.addError(fmt.Sprintf(`More than one region subtag found "%s", only one is allowed.`, strings.Join(regions, ", ")))
		ctx.isWellFormed = false
	}

	var invalid []string
	for _, r := range regions {
		if _, ok := ctx.registry.Regions[strings.ToLower(r)]; ok {
			continue
		}
		if isPrivateRegion(r) {
			continue
		}
		invalid = append(invalid, r)
	}
	if len(invalid) > 0 {
		ctx.addError(fmt.Sprintf(`Region subtag(s) "%s" are not valid.`, strings.Join(invalid, ", ")))
		ctx.isWellFormed = false
	}
}

// validateExtlang is Pass 3.
func (ctx *parseContext) validateExtlang() {
	extlangs := ctx.results.ExtendedTags
	if len(extlangs) > 1 {
		ctx.addError(fmt.Sprintf(`More than one extended language subtag found "%s", only one is allowed.`, strings.Join(extlangs, ", ")))
		ctx.isWellFormed = false
	}

	var invalid []string
	for _, e := range extlangs {
		rec, ok := ctx.registry.Extlangs[strings.ToLower(e)]
		if !ok {
			invalid = append(invalid, e)
			continue
		}
		matched := false
		for _, pfx := range rec.Prefix {
			if strings.EqualFold(pfx, ctx.results.LanguageTag) {
				matched = true
				break
			}
		}
		if !matched {
			ctx.addError(fmt.Sprintf(`Extended subtag "%s" should not be used with language subtag "%s".`, e, ctx.results.LanguageTag))
			ctx.isWellFormed = false
		}
	}
	if len(invalid) > 0 {
		ctx.addError(fmt.Sprintf(`Extended subtag(s) "%s" are not valid.`, strings.Join(invalid, ", ")))
		ctx.isWellFormed = false
	}
}

// validateScript is Pass 4.
func (ctx *parseContext) validateScript() {
	scripts := ctx.results.ScriptTags
	if len(scripts) > 1 {
		ctx.addError(fmt.Sprintf(`More than one script subtag found "%s", only one is allowed.`, strings.Join(scripts, ", ")))
		ctx.isWellFormed = false
	}

	var invalid []string
	for _, s := range scripts {
		if _, ok := ctx.registry.Scripts[strings.ToLower(s)]; ok {
			continue
		}
		if isPrivateScript(s) {
			continue
		}
		invalid = append(invalid, s)
	}
	if len(invalid) > 0 {
		ctx.addError(fmt.Sprintf(`Script subtag(s) "%s" are not valid.`, strings.Join(invalid, ", ")))
		ctx.isWellFormed = false
	}
}

// validateVariants is Pass 5.
func (ctx *parseContext) validateVariants() {
	variants := ctx.results.VariantTags

	seen := make(map[string]int, len(variants))
	hasDuplicates := false
	for _, v := range variants {
		lower := strings.ToLower(v)
		seen[lower]++
		if seen[lower] > 1 {
			ctx.addError("Duplicate variant subtag: " + v)
			ctx.isWellFormed = false
			hasDuplicates = true
		}
	}

	var invalid []string
	for _, v := range variants {
		if _, ok := ctx.registry.Variants[strings.ToLower(v)]; !ok {
			invalid = append(invalid, v)
		}
	}
	hasInvalid := len(invalid) > 0
	if hasInvalid {
		ctx.addError(fmt.Sprintf(`Variant subtag(s) "%s" are not valid.`, strings.Join(invalid, ", ")))
		ctx.isWellFormed = false
	}

	if hasDuplicates || hasInvalid {
		return
	}

	preceding := ctx.results.LanguageTag
	for _, v := range variants {
		rec := ctx.registry.Variants[strings.ToLower(v)]
		matched := len(rec.Prefix) == 0 // a variant with no registered prefix applies to any tag.
		for _, pfx := range rec.Prefix {
			if strings.EqualFold(pfx, preceding) {
				matched = true
				break
			}
		}
		if !matched {
			suggestions := make([]string, len(rec.Prefix))
			for i, pfx := range rec.Prefix {
				suggestions[i] = pfx + "-" + v
			}
			ctx.addError(fmt.Sprintf(`Sub tags preceding variant "%s" did not match one of the following pattern(s): %s.`, v, strings.Join(suggestions, ", ")))
			ctx.isWellFormed = false
		}
		preceding += "-" + v
	}
}

// validatePrivateUse is Pass 6. Unlike extensions, which may repeat with
// distinct singletons, a tag may carry at most one private-use group
// (Sec 9: the cardinality rule is intentionally private-use-only).
func (ctx *parseContext) validatePrivateUse() {
	groups := ctx.results.PrivateUseTags
	if len(groups) > 1 {
		ctx.addError(fmt.Sprintf(`More than one private use subtag found "%s", only one is allowed.`, strings.Join(groups, ", ")))
		ctx.isWellFormed = false
	}
}

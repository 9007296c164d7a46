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

// subtagRole is the total order BCP47 subtag categories must appear in.
// The zero value, roleLanguage, is also the role assumed for the position
// before the first classified subtag.
type subtagRole int

const (
	roleLanguage subtagRole = iota
	roleExtended
	roleScript
	roleRegion
	roleVariant
	roleExtension
	rolePrivateUse
)

// extensionGroup is a singleton subtag together with the single following
// token it consumes as its payload (Sec 9: "singleton-with-payload
// coupling" — the payload is never independently classified).
type extensionGroup struct {
	Singleton byte
	Payload   string
}

func (g extensionGroup) render() string {
	if g.Payload == "" {
		return string(g.Singleton)
	}
	return string(g.Singleton) + "-" + g.Payload
}

// classify assigns a BCP47 role to every token after the first, per the
// length/alpha rule table, and tracks whether role order regresses
// (outOfOrder). It is skipped entirely when the raw input is empty,
// contains illegal characters, or is itself a whole-tag deprecated record
// — those cases are handled by the Validator and Canonicalizer operating
// on the raw string directly.
func (ctx *parseContext) classify() {
	if ctx.raw == "" || len(ctx.illegalChars) > 0 {
		return
	}
	if _, ok := ctx.registry.Deprecated[strings.ToLower(ctx.raw)]; ok {
		return
	}
	if len(ctx.tokens) == 0 {
		return
	}

	ctx.results.LanguageTag = ctx.tokens[0]
	prevRole := roleLanguage

	for i := 1; i < len(ctx.tokens); i++ {
		tok := ctx.tokens[i]
		if tok == "" {
			continue
		}

		var role subtagRole
		switch {
		case len(tok) == 1:
			role = ctx.classifySingleton(tok, &i)
		case len(tok) == 2:
			ctx.results.RegionTags = append(ctx.results.RegionTags, tok)
			role = roleRegion
		case len(tok) == 3:
			if isAlphabetic(tok) {
				ctx.results.ExtendedTags = append(ctx.results.ExtendedTags, tok)
				role = roleExtended
			} else {
				ctx.results.RegionTags = append(ctx.results.RegionTags, tok)
				role = roleRegion
			}
		case len(tok) == 4:
			if isAlphabetic(tok) {
				ctx.results.ScriptTags = append(ctx.results.ScriptTags, tok)
				role = roleScript
			} else {
				ctx.results.VariantTags = append(ctx.results.VariantTags, tok)
				role = roleVariant
			}
		default:
			ctx.results.VariantTags = append(ctx.results.VariantTags, tok)
			role = roleVariant
		}

		if role < prevRole {
			ctx.outOfOrder = true
		}
		prevRole = role
	}

	for _, g := range ctx.extensions {
		ctx.results.ExtensionTags = append(ctx.results.ExtensionTags, g.render())
	}
	for _, g := range ctx.privateUse {
		ctx.results.PrivateUseTags = append(ctx.results.PrivateUseTags, g.render())
	}
}

// classifySingleton opens an extension or private-use group at *i and
// consumes the following token (if any) as its payload, advancing *i past
// it. It returns the role the group occupies for ordering purposes.
func (ctx *parseContext) classifySingleton(tok string, i *int) subtagRole {
	isPrivate := strings.EqualFold(tok, "x")

	payload := ""
	if *i+1 < len(ctx.tokens) {
		payload = ctx.tokens[*i+1]
		*i++
	}
	group := extensionGroup{Singleton: tok[0], Payload: payload}

	if isPrivate {
		ctx.privateUse = append(ctx.privateUse, group)
		return rolePrivateUse
	}
	ctx.extensions = append(ctx.extensions, group)
	return roleExtension
}

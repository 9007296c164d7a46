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

//nolint:testpackage // white-box test: exercises unexported validator state.
package bcp47

import (
	"strings"
	"testing"
)

func validate(raw string) *parseContext {
	ctx := newParseContext(raw)
	ctx.tokenize()
	ctx.classify()
	ctx.validate()
	return ctx
}

func hasErrorContaining(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidateGeneral_WholeTagDeprecated(t *testing.T) {
	ctx := validate("i-klingon")
	if !hasErrorContaining(ctx.results.ErrorMessages, `Deprecated language tag "i-klingon" use "tlh".`) {
		t.Errorf("ErrorMessages = %v, want a deprecated-tag message naming the preferred value", ctx.results.ErrorMessages)
	}
	// Sec 4.4: whole-tag deprecation does not itself clear isWellFormed.
	if !ctx.isWellFormed {
		t.Error("isWellFormed = false, want true: whole-tag deprecation alone must not block canonicalization")
	}
}

func TestValidateGeneral_WholeTagDeprecatedWithoutPreferredValue(t *testing.T) {
	ctx := validate("i-mingo")
	if !hasErrorContaining(ctx.results.ErrorMessages, `Deprecated language tag "i-mingo" do not use.`) {
		t.Errorf("ErrorMessages = %v, want the no-preferred-value deprecated message", ctx.results.ErrorMessages)
	}
}

func TestValidateGeneral_IllegalCharactersStopsValidation(t *testing.T) {
	ctx := validate("en-US-$")
	if len(ctx.results.ErrorMessages) != 1 {
		t.Fatalf("ErrorMessages = %v, want exactly one message (illegal characters short-circuits)", ctx.results.ErrorMessages)
	}
	want := `Found illegal characters:" $" in language tag.`
	if ctx.results.ErrorMessages[0] != want {
		t.Errorf("ErrorMessages[0] = %q, want %q", ctx.results.ErrorMessages[0], want)
	}
	if ctx.isWellFormed {
		t.Error("isWellFormed = true, want false")
	}
}

func TestValidateGeneral_OutOfOrderDoesNotStopValidation(t *testing.T) {
	ctx := validate("en-US-Latn")
	if !hasErrorContaining(ctx.results.ErrorMessages, "incorrectly order") {
		t.Errorf("ErrorMessages = %v, want an out-of-order message", ctx.results.ErrorMessages)
	}
	// The out-of-order message names the tag rebuilt in role order.
	if !hasErrorContaining(ctx.results.ErrorMessages, `"en-Latn-US"`) {
		t.Errorf("ErrorMessages = %v, want the rebuilt-order suggestion en-Latn-US", ctx.results.ErrorMessages)
	}
}

func TestValidateGeneral_BlankSubtag(t *testing.T) {
	ctx := validate("en--US")
	if !hasErrorContaining(ctx.results.ErrorMessages, "blank subtag") {
		t.Errorf("ErrorMessages = %v, want a blank-subtag message", ctx.results.ErrorMessages)
	}
}

func TestValidateLanguage_UnknownSubtag(t *testing.T) {
	ctx := validate("xx-US")
	if !hasErrorContaining(ctx.results.ErrorMessages, `Language subtag "xx" is not valid`) {
		t.Errorf("ErrorMessages = %v, want an invalid-language message", ctx.results.ErrorMessages)
	}
	if ctx.isWellFormed {
		t.Error("isWellFormed = true, want false")
	}
}

func TestValidateLanguage_PrivateUseRangeIsValid(t *testing.T) {
	ctx := validate("qaa")
	if hasErrorContaining(ctx.results.ErrorMessages, "is not valid") {
		t.Errorf("ErrorMessages = %v, want no error: qaa is in the private-use language range", ctx.results.ErrorMessages)
	}
}

func TestValidateRegion_TooMany(t *testing.T) {
	ctx := validate("en-US-GB")
	if !hasErrorContaining(ctx.results.ErrorMessages, "More than one region subtag") {
		t.Errorf("ErrorMessages = %v, want a too-many-regions message", ctx.results.ErrorMessages)
	}
}

func TestValidateRegion_Invalid(t *testing.T) {
	ctx := validate("en-ZZ")
	if hasErrorContaining(ctx.results.ErrorMessages, "Region subtag") {
		t.Errorf("ErrorMessages = %v, want no error: ZZ is a reserved private-use region", ctx.results.ErrorMessages)
	}

	ctx = validate("en-ZY")
	if !hasErrorContaining(ctx.results.ErrorMessages, `Region subtag(s) "ZY" are not valid.`) {
		t.Errorf("ErrorMessages = %v, want an invalid-region message for ZY", ctx.results.ErrorMessages)
	}
}

func TestValidateExtlang_WrongPrefix(t *testing.T) {
	ctx := validate("en-cmn")
	if !hasErrorContaining(ctx.results.ErrorMessages, `Extended subtag "cmn" should not be used with language subtag "en".`) {
		t.Errorf("ErrorMessages = %v, want a wrong-prefix message", ctx.results.ErrorMessages)
	}
}

func TestValidateExtlang_CorrectPrefix(t *testing.T) {
	ctx := validate("zh-cmn")
	if hasErrorContaining(ctx.results.ErrorMessages, "Extended subtag") {
		t.Errorf("ErrorMessages = %v, want no extlang errors for zh-cmn", ctx.results.ErrorMessages)
	}
}

func TestValidateExtlang_TooMany(t *testing.T) {
	ctx := validate("zh-cmn-yue")
	if !hasErrorContaining(ctx.results.ErrorMessages, "More than one extended language subtag") {
		t.Errorf("ErrorMessages = %v, want a too-many-extlangs message", ctx.results.ErrorMessages)
	}
}

func TestValidateScript_Invalid(t *testing.T) {
	ctx := validate("en-Wxyz")
	if !hasErrorContaining(ctx.results.ErrorMessages, `Script subtag(s) "Wxyz" are not valid.`) {
		t.Errorf("ErrorMessages = %v, want an invalid-script message", ctx.results.ErrorMessages)
	}
}

func TestValidateScript_PrivateUseRangeIsValid(t *testing.T) {
	ctx := validate("en-Qaaa")
	if hasErrorContaining(ctx.results.ErrorMessages, "Script subtag") {
		t.Errorf("ErrorMessages = %v, want no error: Qaaa is in the private-use script range", ctx.results.ErrorMessages)
	}
}

func TestValidateVariants_Duplicate(t *testing.T) {
	ctx := validate("de-1901-1901")
	if !hasErrorContaining(ctx.results.ErrorMessages, "Duplicate variant subtag: 1901") {
		t.Errorf("ErrorMessages = %v, want a duplicate-variant message", ctx.results.ErrorMessages)
	}
}

func TestValidateVariants_PrefixMismatch(t *testing.T) {
	ctx := validate("en-1901")
	if !hasErrorContaining(ctx.results.ErrorMessages, `Sub tags preceding variant "1901" did not match`) {
		t.Errorf("ErrorMessages = %v, want a prefix-mismatch message", ctx.results.ErrorMessages)
	}
}

func TestValidateVariants_EmptyPrefixMatchesAnyTag(t *testing.T) {
	ctx := validate("en-fonipa")
	if hasErrorContaining(ctx.results.ErrorMessages, "Sub tags preceding variant") {
		t.Errorf("ErrorMessages = %v, want no error: fonipa has no registered Prefix, so it applies to any tag", ctx.results.ErrorMessages)
	}

	ctx = validate("de-fonipa")
	if hasErrorContaining(ctx.results.ErrorMessages, "Sub tags preceding variant") {
		t.Errorf("ErrorMessages = %v, want no error for de-fonipa either", ctx.results.ErrorMessages)
	}
}

func TestValidatePrivateUse_TooMany(t *testing.T) {
	ctx := validate("en-x-foo-x-bar")
	if !hasErrorContaining(ctx.results.ErrorMessages, "More than one private use subtag found") {
		t.Errorf("ErrorMessages = %v, want a too-many-private-use message", ctx.results.ErrorMessages)
	}
}

func TestValidate_WellFormedTagHasNoErrors(t *testing.T) {
	ctx := validate("de-Latn-US-1996")
	if len(ctx.results.ErrorMessages) != 0 {
		t.Errorf("ErrorMessages = %v, want none for a fully well-formed tag", ctx.results.ErrorMessages)
	}
	if !ctx.isWellFormed {
		t.Error("isWellFormed = false, want true")
	}
}

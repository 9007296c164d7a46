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

// isAlpha reports whether b is an ASCII letter.
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// isDigit reports whether b is an ASCII digit.
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isLangtagChar reports whether r is a valid BCP47 tag character: an ASCII
// letter, digit, or hyphen.
func isLangtagChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
}

// isAlphabetic reports whether s is non-empty and contains only ASCII letters.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}

// containsDigit reports whether s contains at least one ASCII digit.
func containsDigit(s string) bool {
	for i := range s {
		if isDigit(s[i]) {
			return true
		}
	}
	return false
}

// isNumeric reports whether s is non-empty and contains only ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// titleCase renders s as "Xxxx": first letter upper, rest lower. Used for
// comparing script subtags against the private-use script range.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// inRangeASCII reports whether s (uppercased or title-cased by the caller)
// falls within [lo, hi] under plain ASCII string ordering. Used for the
// private-use range fallbacks described in SPEC_FULL.md Sec 4.1.
func inRangeASCII(s, lo, hi string) bool {
	return s >= lo && s <= hi
}

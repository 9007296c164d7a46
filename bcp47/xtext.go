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
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// ErrNotCanonicalized is returned by AsXText when called on a Results that
// never reached a canonical form.
var ErrNotCanonicalized = errors.New("bcp47: result has no canonical form")

// AsXText converts a successfully parsed Results into a
// golang.org/x/text/language.Tag. This module does not itself perform
// RFC 4647 tag matching or locale-aware text services (both explicit
// non-goals) — AsXText exists purely so a caller who needs those things
// can hand a validated, canonicalized tag to the library that does.
func (r *Results) AsXText() (language.Tag, error) {
	if !r.IsValid || r.Canonicalize == nil {
		return language.Und, ErrNotCanonicalized
	}
	tag, err := language.Parse(*r.Canonicalize)
	if err != nil {
		return language.Und, fmt.Errorf("bcp47: converting %q to x/text tag: %w", *r.Canonicalize, err)
	}
	return tag, nil
}

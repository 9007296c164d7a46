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

// Results is the structured outcome of a single Parse call. It is created
// fresh per call and returned by value; nothing in it is shared across
// calls.
type Results struct {
	LanguageTag    string   `json:"languageTag"`
	ExtendedTags   []string `json:"extendedTags,omitempty"`
	ScriptTags     []string `json:"scriptTags,omitempty"`
	RegionTags     []string `json:"regionTags,omitempty"`
	VariantTags    []string `json:"variantTags,omitempty"`
	ExtensionTags  []string `json:"extensionTags,omitempty"`
	PrivateUseTags []string `json:"privateUseTags,omitempty"`

	// Canonicalize is present (non-nil) iff the tag was well-formed; it is
	// the empty string when the raw input itself was empty. IsValid is
	// true iff Canonicalize is non-nil, except for empty input, where
	// Canonicalize points at "" and IsValid is false.
	Canonicalize *string `json:"canonicalize,omitempty"`
	IsValid      bool    `json:"isValid"`

	ErrorMessages []string `json:"errorMessages,omitempty"`
}

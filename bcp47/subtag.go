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

// SubtagType identifies the registry category a RegistrySubtag belongs to,
// per RFC 5646 Section 3.1.2.
type SubtagType string

// Recognized registry record types.
const (
	TypeLanguage      SubtagType = "language"
	TypeExtlang       SubtagType = "extlang"
	TypeScript        SubtagType = "script"
	TypeRegion        SubtagType = "region"
	TypeVariant       SubtagType = "variant"
	TypeGrandfathered SubtagType = "grandfathered"
	TypeRedundant     SubtagType = "redundant"
)

// RegistrySubtag is a single entry from the IANA Language Subtag Registry.
// The field names follow the registry's own field names (RFC 5646 Sec 3.1.1),
// not the BCP47 component names used elsewhere in this package.
type RegistrySubtag struct {
	Type           SubtagType
	TagOrSubtag    string // "Subtag" for subtag-type records, "Tag" for grandfathered/redundant.
	Description    []string
	Added          string
	SuppressScript string
	Scope          string
	Macrolanguage  string
	Comments       []string
	Deprecated     string
	PreferredValue string
	Prefix         []string
}

// IsGrandfathered reports whether the record is a whole-tag registration
// (grandfathered or redundant) rather than an individual subtag.
func (r *RegistrySubtag) IsGrandfathered() bool {
	return r.Type == TypeGrandfathered || r.Type == TypeRedundant
}

// IsDeprecated reports whether the record carries a non-empty Deprecated date.
func (r *RegistrySubtag) IsDeprecated() bool {
	return r.Deprecated != ""
}

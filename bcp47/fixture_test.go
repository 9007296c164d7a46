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

//nolint:testpackage // shared white-box fixture for the other *_test.go files in this package.
package bcp47

// newFixtureRegistry builds a small, hand-rolled Registry covering the
// subtags exercised by this package's unit tests, without going through
// ParseRegistry. Keeping it independent from the registry text parser
// means a bug in ParseRegistry can't mask a bug in the Classifier,
// Validator, or Canonicalizer (and vice versa).
func newFixtureRegistry() *Registry {
	reg := newRegistry()

	reg.Languages["en"] = RegistrySubtag{Type: TypeLanguage, TagOrSubtag: "en", SuppressScript: "Latn"}
	reg.Languages["de"] = RegistrySubtag{Type: TypeLanguage, TagOrSubtag: "de", SuppressScript: "Latn"}
	reg.Languages["sl"] = RegistrySubtag{Type: TypeLanguage, TagOrSubtag: "sl", SuppressScript: "Latn"}
	reg.Languages["zh"] = RegistrySubtag{Type: TypeLanguage, TagOrSubtag: "zh"}
	reg.Languages["id"] = RegistrySubtag{Type: TypeLanguage, TagOrSubtag: "id", SuppressScript: "Latn"}
	reg.Languages["in"] = RegistrySubtag{Type: TypeLanguage, TagOrSubtag: "in", Deprecated: "1989-01-01", PreferredValue: "id"}

	reg.Extlangs["cmn"] = RegistrySubtag{
		Type: TypeExtlang, TagOrSubtag: "cmn", PreferredValue: "cmn", Prefix: []string{"zh"},
	}
	reg.Extlangs["yue"] = RegistrySubtag{
		Type: TypeExtlang, TagOrSubtag: "yue", PreferredValue: "yue", Prefix: []string{"zh"},
	}

	reg.Scripts["latn"] = RegistrySubtag{Type: TypeScript, TagOrSubtag: "Latn"}
	reg.Scripts["hans"] = RegistrySubtag{Type: TypeScript, TagOrSubtag: "Hans"}
	reg.Scripts["hant"] = RegistrySubtag{Type: TypeScript, TagOrSubtag: "Hant"}

	reg.Regions["us"] = RegistrySubtag{Type: TypeRegion, TagOrSubtag: "US"}
	reg.Regions["gb"] = RegistrySubtag{Type: TypeRegion, TagOrSubtag: "GB"}
	reg.Regions["cn"] = RegistrySubtag{Type: TypeRegion, TagOrSubtag: "CN"}
	reg.Regions["419"] = RegistrySubtag{Type: TypeRegion, TagOrSubtag: "419"}

	reg.Variants["1901"] = RegistrySubtag{Type: TypeVariant, TagOrSubtag: "1901", Prefix: []string{"de"}}
	reg.Variants["1996"] = RegistrySubtag{Type: TypeVariant, TagOrSubtag: "1996", Prefix: []string{"de"}}
	reg.Variants["rozaj"] = RegistrySubtag{Type: TypeVariant, TagOrSubtag: "rozaj", Prefix: []string{"sl"}}
	reg.Variants["fonipa"] = RegistrySubtag{Type: TypeVariant, TagOrSubtag: "fonipa"} // no prefix: usable anywhere.

	reg.Deprecated["i-klingon"] = RegistrySubtag{
		Type: TypeGrandfathered, TagOrSubtag: "i-klingon", Deprecated: "2001-11-11", PreferredValue: "tlh",
	}
	reg.Deprecated["i-mingo"] = RegistrySubtag{
		Type: TypeGrandfathered, TagOrSubtag: "i-mingo", Deprecated: "1997-01-01",
	}

	reg.FileDate = "2024-01-01"
	return reg
}

// newParseContext builds a parseContext against the fixture registry, the
// way Parse would, without running the pipeline — tests drive individual
// stages themselves.
func newParseContext(raw string) *parseContext {
	return &parseContext{registry: newFixtureRegistry(), raw: raw, isWellFormed: true}
}

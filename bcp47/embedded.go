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
	"bytes"
	_ "embed" // blank import for go:embed
	"fmt"
)

//go:embed registrydata/language-subtag-registry
var embeddedRegistryData []byte

// NewRegistry builds a Registry from the snapshot of the IANA Language
// Subtag Registry embedded in this module, so callers get a working
// Registry with no external file to manage. It parses the full embedded
// file on every call; construct one Registry at startup and reuse it.
func NewRegistry() (*Registry, error) {
	if len(embeddedRegistryData) == 0 {
		return nil, fmt.Errorf("%w: embedded registry snapshot is empty", ErrRegistryUnavailable)
	}
	return ParseRegistry(bytes.NewReader(embeddedRegistryData))
}

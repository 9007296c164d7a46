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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	keyValParts         = 2
	rangeParts          = 2
	maxNumericExpansion = 20000
	maxAlphaExpansion   = 40000
)

// registryLineParser holds the running state while scanning a registry file
// line by line: the fields collected for the record currently being built,
// and which field a continuation line should append to.
type registryLineParser struct {
	registry      *Registry
	currentFields map[string][]string
	lastField     string
}

// processLine handles one line of the registry file. Malformed lines (no
// colon, not a continuation, not a record marker) are skipped silently —
// the registry is a published artifact assumed well-formed.
func (p *registryLineParser) processLine(line string) {
	if line == "%%" {
		addRecordFromFields(p.registry, p.currentFields)
		p.currentFields = make(map[string][]string)
		p.lastField = ""
		return
	}

	if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
		if p.lastField != "" && len(p.currentFields[p.lastField]) > 0 {
			lastIdx := len(p.currentFields[p.lastField]) - 1
			p.currentFields[p.lastField][lastIdx] += " " + strings.TrimSpace(line)
		}
		return
	}

	// Split on the first colon only: a Comments/Description value that
	// itself contains a colon is kept whole, not truncated.
	parts := strings.SplitN(line, ":", keyValParts)
	if len(parts) != keyValParts {
		return
	}

	fieldName, fieldBody := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if strings.EqualFold(fieldName, "File-Date") && len(p.registry.Languages)+len(p.registry.Deprecated) == 0 {
		p.registry.FileDate = fieldBody
		return
	}

	fieldNameLower := strings.ToLower(fieldName)
	p.currentFields[fieldNameLower] = append(p.currentFields[fieldNameLower], fieldBody)
	p.lastField = fieldNameLower
}

// ParseRegistry reads an IANA Language Subtag Registry file from r and
// returns the populated Registry. It handles range notation in Subtag/Tag
// fields (e.g. "qaa..qtz") by expanding each value in the range into its
// own record.
func ParseRegistry(r io.Reader) (*Registry, error) {
	scanner := bufio.NewScanner(r)
	p := &registryLineParser{
		registry:      newRegistry(),
		currentFields: make(map[string][]string),
	}

	for scanner.Scan() {
		p.processLine(scanner.Text())
	}
	addRecordFromFields(p.registry, p.currentFields)

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	}
	return p.registry, nil
}

// addRecordFromFields builds a record from the fields collected for the
// current block and dispatches it (and any range expansion) into the
// registry.
func addRecordFromFields(registry *Registry, fields map[string][]string) {
	if len(fields) == 0 {
		return
	}
	record := buildRecord(fields)
	dispatchRecord(registry, record)
}

// dispatchRecord places a parsed record into its category map, expanding
// "start..end" range notation into one record per value first.
func dispatchRecord(registry *Registry, record RegistrySubtag) {
	key := record.TagOrSubtag
	if strings.Contains(key, "..") {
		values, err := expandRange(key)
		if err != nil {
			return
		}
		for _, v := range values {
			rec := record
			rec.TagOrSubtag = v
			putRecord(registry, rec)
		}
		return
	}
	if key == "" {
		return
	}
	putRecord(registry, record)
}

// putRecord stores a single record under its lowercased key in the map for
// its type. Last write wins on a duplicate key.
func putRecord(registry *Registry, record RegistrySubtag) {
	m := registry.categoryMap(record.Type)
	if m == nil {
		return
	}
	m[strings.ToLower(record.TagOrSubtag)] = record
}

// expandRange expands a registry range notation ("qaa..qtz", "001..003")
// into the individual values it denotes, per RFC 5646 Sec 3.1.1.
func expandRange(rangeStr string) ([]string, error) {
	parts := strings.Split(rangeStr, "..")
	if len(parts) != rangeParts {
		return nil, fmt.Errorf("invalid range format: %s", rangeStr)
	}
	start, end := parts[0], parts[1]
	if len(start) != len(end) || len(start) == 0 {
		return nil, fmt.Errorf("range start/end must have same, non-zero length: %s", rangeStr)
	}

	if isNumeric(start) && isNumeric(end) {
		return expandNumericRange(start, end)
	}
	if isAlphabetic(start) && isAlphabetic(end) {
		return expandAlphabeticRange(start, end)
	}
	return nil, fmt.Errorf("range must be purely alphabetic or purely numeric: %s", rangeStr)
}

func expandNumericRange(start, end string) ([]string, error) {
	startNum, err1 := strconv.Atoi(start)
	endNum, err2 := strconv.Atoi(end)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("invalid numeric range: %s..%s", start, end)
	}
	if startNum > endNum {
		return nil, fmt.Errorf("start of range cannot be greater than end: %s..%s", start, end)
	}
	if endNum-startNum > maxNumericExpansion {
		return nil, fmt.Errorf("numeric range is too large to expand: %s..%s", start, end)
	}

	result := make([]string, 0, endNum-startNum+1)
	format := fmt.Sprintf("%%0%dd", len(start))
	for i := startNum; i <= endNum; i++ {
		result = append(result, fmt.Sprintf(format, i))
	}
	return result, nil
}

func expandAlphabeticRange(start, end string) ([]string, error) {
	current := []byte(strings.ToLower(start))
	endBytes := []byte(strings.ToLower(end))
	if bytes.Compare(current, endBytes) > 0 {
		return nil, fmt.Errorf("start of alphabetic range cannot be greater than end: %s..%s", start, end)
	}

	var result []string
	for {
		result = append(result, string(current))
		if bytes.Equal(current, endBytes) {
			break
		}
		if len(result) > maxAlphaExpansion {
			return nil, fmt.Errorf("alphabetic range is too large to expand: %s..%s", start, end)
		}
		i := len(current) - 1
		for {
			current[i]++
			if current[i] <= 'z' {
				break
			}
			current[i] = 'a'
			i--
		}
	}
	return result, nil
}

// buildRecord converts the raw field map collected for one record block
// into a RegistrySubtag.
func buildRecord(fields map[string][]string) RegistrySubtag {
	getString := func(key string) string {
		if v, ok := fields[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}

	tagOrSubtag := getString("subtag")
	if tagOrSubtag == "" {
		tagOrSubtag = getString("tag")
	}

	return RegistrySubtag{
		Type:           SubtagType(getString("type")),
		TagOrSubtag:    tagOrSubtag,
		Description:    fields["description"],
		Added:          getString("added"),
		Deprecated:     getString("deprecated"),
		PreferredValue: getString("preferred-value"),
		SuppressScript: getString("suppress-script"),
		Macrolanguage:  getString("macrolanguage"),
		Scope:          getString("scope"),
		Comments:       fields["comments"],
		Prefix:         fields["prefix"],
	}
}

// Copyright (c) 2026, the vercmp authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dotver/vercmp/pkg/compop"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion     = errors.New("version string is empty")
	ErrEmptySegment     = errors.New("version segment is empty")
	ErrIllegalCharacter = errors.New("illegal character in version segment")
	ErrNumericOverflow  = errors.New("numeric version segment too large")
	ErrNoParts          = errors.New("no version parts remain after applying manifest")
)

// Version is a parsed dotted version number: an ordered sequence of parts
// plus the original source string. The source string is retained for display
// only and is never reparsed. A Version always has at least one part and is
// read-only after construction.
type Version struct {
	source string
	parts  []Part
}

// Parse parses a dotted version string into a Version.
//
// The string is split on '.' into segments. Every segment must be non-empty
// and consist of characters from the accepted alphabet: ASCII letters, ASCII
// digits, '-', '_', '+', and '~'. A segment of only digits becomes a numeric
// part; any other segment becomes a text part kept verbatim. A hyphen does
// not start a new segment, so "1.0-alpha" has two parts: 1 and "0-alpha".
//
// A single leading 'v' or 'V' immediately followed by a digit is stripped,
// so "v2.1" parses the same as "2.1" (the source string keeps the prefix).
//
// Parsing is all-or-nothing: empty input, an empty segment (consecutive,
// leading, or trailing dots), an illegal character, or a numeric segment
// exceeding 64 bits fails with no partial result.
func Parse(s string) (Version, error) {
	return ParseWithManifest(s, Manifest{})
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or
// runtime data, always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// ParseWithManifest parses a version string under the given parse policy.
// A zero Manifest is equivalent to Parse. See Manifest for the policy knobs.
func ParseWithManifest(s string, m Manifest) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	body := s
	if len(body) >= 2 && (body[0] == 'v' || body[0] == 'V') && body[1] >= '0' && body[1] <= '9' {
		body = body[1:]
	}

	segs := strings.Split(body, ".")
	parts := make([]Part, 0, len(segs))
	for _, seg := range segs {
		if m.MaxDepth > 0 && len(parts) >= m.MaxDepth {
			break
		}
		p, err := parsePart(seg)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		if m.IgnoreText && p.Kind() == Text {
			continue
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return Version{}, fmt.Errorf("%w: %q", ErrNoParts, s)
	}

	return Version{source: s, parts: parts}, nil
}

// Parts returns a copy of the ordered part sequence.
func (v Version) Parts() []Part {
	out := make([]Part, len(v.parts))
	copy(out, v.parts)
	return out
}

// String returns the original source string the version was parsed from.
func (v Version) String() string {
	return v.source
}

// Compare orders v against other, returning Less, Equal, or Greater.
//
// Parts are compared index by index; the first non-equal pair decides.
// When one version runs out of parts, each remaining part of the longer
// version is compared against absence: a trailing zero numeric equals
// absence ("1.0" equals "1") while any other trailing part exceeds it
// ("1.1" and "1.0a" both exceed "1").
//
// Compare is a total ordering over valid versions and has no error path.
func (v Version) Compare(other Version) compop.Ordering {
	n := len(v.parts)
	if len(other.parts) > n {
		n = len(other.parts)
	}
	for i := 0; i < n; i++ {
		switch {
		case i >= len(other.parts):
			if ord := v.parts[i].CompareMissing(); ord != compop.Equal {
				return ord
			}
		case i >= len(v.parts):
			if ord := other.parts[i].CompareMissing(); ord != compop.Equal {
				return ord.Flip()
			}
		default:
			if ord := v.parts[i].Compare(other.parts[i]); ord != compop.Equal {
				return ord
			}
		}
	}
	return compop.Equal
}

// CompareTo reports whether the operator holds between v and other,
// e.g. CompareTo(other, compop.Le) is true when v <= other.
func (v Version) CompareTo(other Version, op compop.CompOp) bool {
	return op.Eval(v.Compare(other))
}

// Sort orders versions in place, lowest first, per Compare.
func Sort(versions []Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Compare(versions[j]) == compop.Less
	})
}

// MarshalText implements encoding.TextMarshaler using the source string.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.source), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by reparsing.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes the version as its source string.
func (v Version) MarshalYAML() (interface{}, error) {
	return v.source, nil
}

// UnmarshalYAML decodes a YAML scalar by reparsing it.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

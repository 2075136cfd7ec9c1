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
	"strconv"

	"github.com/dotver/vercmp/pkg/compop"
)

// PartKind discriminates the two part variants.
type PartKind uint8

const (
	// Numeric marks a part holding a non-negative integer value.
	Numeric PartKind = iota
	// Text marks a part holding an opaque non-empty token.
	Text
)

// String returns the kind name.
func (k PartKind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "text"
}

// Part is one dot-separated segment of a version string: either a
// non-negative integer or an opaque text token. A Part is immutable
// once constructed.
type Part struct {
	kind PartKind
	num  uint64
	text string
}

// NumericPart returns a numeric Part holding n.
func NumericPart(n uint64) Part {
	return Part{kind: Numeric, num: n}
}

// TextPart returns a text Part holding s verbatim. The segment must be
// non-empty, drawn from the accepted alphabet, and not consist solely of
// digits (an all-digit segment is always a numeric part, never text).
func TextPart(s string) (Part, error) {
	if s == "" {
		return Part{}, fmt.Errorf("%w: text part", ErrEmptySegment)
	}
	digits := true
	for i := 0; i < len(s); i++ {
		if !isSegmentByte(s[i]) {
			return Part{}, fmt.Errorf("%w: %q in %q", ErrIllegalCharacter, s[i], s)
		}
		if s[i] < '0' || s[i] > '9' {
			digits = false
		}
	}
	if digits {
		return Part{}, fmt.Errorf("all-digit segment %q must be a numeric part", s)
	}
	return Part{kind: Text, text: s}, nil
}

// parsePart classifies one raw segment. A segment of only ASCII digits
// becomes a numeric part; any other segment of legal characters becomes
// a text part preserved verbatim.
func parsePart(seg string) (Part, error) {
	if seg == "" {
		return Part{}, ErrEmptySegment
	}
	digits := true
	for i := 0; i < len(seg); i++ {
		if !isSegmentByte(seg[i]) {
			return Part{}, fmt.Errorf("%w: %q in segment %q", ErrIllegalCharacter, seg[i], seg)
		}
		if seg[i] < '0' || seg[i] > '9' {
			digits = false
		}
	}
	if !digits {
		return Part{kind: Text, text: seg}, nil
	}
	n, err := strconv.ParseUint(seg, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Part{}, fmt.Errorf("%w: %q", ErrNumericOverflow, seg)
		}
		return Part{}, fmt.Errorf("%w: %q", ErrIllegalCharacter, seg)
	}
	return Part{kind: Numeric, num: n}, nil
}

// isSegmentByte reports whether b is in the accepted segment alphabet:
// ASCII letters, ASCII digits, and the punctuation '-', '_', '+', '~'.
// The delimiter '.' is never legal inside a segment.
func isSegmentByte(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b == '-' || b == '_' || b == '+' || b == '~':
		return true
	}
	return false
}

// Kind returns the part variant.
func (p Part) Kind() PartKind {
	return p.kind
}

// Num returns the integer value of a numeric part, or 0 for a text part.
func (p Part) Num() uint64 {
	return p.num
}

// Text returns the token of a text part, or "" for a numeric part.
func (p Part) Text() string {
	return p.text
}

// String returns the segment as it appears in a version string.
func (p Part) String() string {
	if p.kind == Numeric {
		return strconv.FormatUint(p.num, 10)
	}
	return p.text
}

// Compare orders p against other:
//   - numeric vs numeric compares the integer values
//   - text vs text compares byte-wise (no case folding, no collation)
//   - a numeric part is always less than a text part
func (p Part) Compare(other Part) compop.Ordering {
	if p.kind != other.kind {
		if p.kind == Numeric {
			return compop.Less
		}
		return compop.Greater
	}
	if p.kind == Numeric {
		switch {
		case p.num < other.num:
			return compop.Less
		case p.num > other.num:
			return compop.Greater
		}
		return compop.Equal
	}
	switch {
	case p.text < other.text:
		return compop.Less
	case p.text > other.text:
		return compop.Greater
	}
	return compop.Equal
}

// CompareMissing orders p against the absence of a part, which happens when
// two versions have a different number of segments. A numeric zero equals
// absence, any other numeric value exceeds it, and a text part always
// exceeds it. This is the trailing-zero rule: trailing ".0" segments never
// break a tie, trailing text segments always do.
func (p Part) CompareMissing() compop.Ordering {
	if p.kind == Numeric && p.num == 0 {
		return compop.Equal
	}
	return compop.Greater
}

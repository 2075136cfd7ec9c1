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

// Package version parses dotted version-number strings into ordered part
// sequences and compares them.
//
// # Model
//
// A version string is split on '.' into segments. Each segment becomes
// exactly one Part: a segment of only ASCII digits is a numeric part (held
// as a 64-bit unsigned integer; larger values are a parse error, never a
// silent wraparound), and any other non-empty segment of legal characters
// is a text part kept byte-for-byte. The accepted segment alphabet is ASCII
// letters, ASCII digits, '-', '_', '+', and '~'. No other delimiter starts
// a segment, so "1.0-alpha" is the two parts 1 and "0-alpha".
//
// # Ordering
//
// Two versions are compared part by part from the left. Numeric parts
// compare as integers, text parts compare byte-wise, and a numeric part is
// always less than a text part at the same position. When the versions have
// a different number of parts, the extra parts are compared against absence
// under the trailing-zero rule: a trailing zero numeric ties with absence,
// everything else beats it. Hence:
//
//	1.0.0 == 1
//	1.1   >  1
//	1.0a  >  1.0
//	1.1   <  1.1.1
//
// The ordering is total over parsed versions, and all types here are
// immutable values: every function is pure and safe for concurrent use
// without synchronization.
//
// # Usage
//
//	a := version.MustParse("1.2.3")
//	b := version.MustParse("1.2")
//	ord := a.Compare(b)                  // compop.Greater
//	ok := a.CompareTo(b, compop.Ge)      // true
//
// ParseWithManifest applies a parse policy (depth cap, text filtering)
// for hosts that want coarser comparisons, e.g. treating "1.2.3.4" as
// a two-component version.
package version

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

// Package compop defines the comparison operators and the three-way ordering
// result used throughout the library.
//
// Ordering is the outcome of comparing two versions (Less, Equal, Greater).
// CompOp is a closed set of relational operators (Eq, Ne, Lt, Le, Ge, Gt)
// that can be evaluated against an Ordering:
//
//	ord := a.Compare(b)          // compop.Ordering
//	ok := compop.Le.Eval(ord)    // true when a <= b
//
// Each operator has a fixed inverse (Eq/Ne, Lt/Gt, Le/Ge) exposed via
// Invert, and a sign form ("==", "<", ...) that round-trips through
// Sign and ParseSign. Both types are plain immutable values and safe for
// concurrent use.
package compop

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

// Package compare is the string-in façade over version parsing and
// comparison: it parses both inputs and either yields a three-way outcome
// or evaluates a relational operator against it.
//
//	out, err := compare.Compare("1.2.3", "1.2.4")          // compop.Lt
//	ok, err := compare.CompareTo("1", "0.1", compop.Ge)    // true
//
// Both functions are pure; the only failure mode is a parse error on
// either input, surfaced immediately to the caller.
package compare

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

// Manifest bundles the parse policy for ParseWithManifest. The zero value
// is the default policy and parses identically to Parse, so a Manifest can
// be embedded in a host configuration file and left unset.
type Manifest struct {
	// MaxDepth caps the number of parts kept from the front of the version
	// string; 0 means unlimited. Segments beyond the cap are ignored, so
	// "1.2.3.4" at depth 2 compares like "1.2".
	MaxDepth int `json:"maxDepth,omitempty" yaml:"maxDepth,omitempty"`

	// IgnoreText drops text segments while parsing, so "1.alpha.2" parses
	// as "1.2". If the policy drops every segment, parsing fails: a version
	// must keep at least one part.
	IgnoreText bool `json:"ignoreText,omitempty" yaml:"ignoreText,omitempty"`
}

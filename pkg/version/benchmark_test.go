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
	"testing"

	"github.com/dotver/vercmp/pkg/compop"
)

func BenchmarkParse(b *testing.B) {
	tests := []string{
		"1",
		"v2",
		"1.2",
		"1.2.3",
		"v1.2.3",
		"1.0.0-alpha",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input := tests[i%len(tests)]
		_, _ = Parse(input)
	}
}

func BenchmarkParseNumeric(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse("1.2.3")
	}
}

func BenchmarkParseWithText(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse("1.0.0-alpha")
	}
}

func BenchmarkParseWithManifest(b *testing.B) {
	m := Manifest{MaxDepth: 2, IgnoreText: true}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseWithManifest("1.alpha.2.3", m)
	}
}

func BenchmarkCompare(b *testing.B) {
	v1 := MustParse("1.2.3")
	v2 := MustParse("1.2.0")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Compare(v2)
	}
}

func BenchmarkCompareTrailingZero(b *testing.B) {
	v1 := MustParse("1.2.0.0")
	v2 := MustParse("1.2")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Compare(v2)
	}
}

func BenchmarkCompareMixedKinds(b *testing.B) {
	v1 := MustParse("1.0.0-alpha")
	v2 := MustParse("1.0.1")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Compare(v2)
	}
}

func BenchmarkCompareTo(b *testing.B) {
	v1 := MustParse("1.2.3")
	v2 := MustParse("1.2.4")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.CompareTo(v2, compop.Le)
	}
}

func BenchmarkVersionString(b *testing.B) {
	v := MustParse("v1.2.3")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

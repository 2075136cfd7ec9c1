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

package compare

import (
	"errors"
	"fmt"

	"github.com/dotver/vercmp/pkg/compop"
	"github.com/dotver/vercmp/pkg/version"
)

// ErrInvalidOperator indicates a CompOp value outside the defined set.
var ErrInvalidOperator = errors.New("invalid comparison operator")

// Compare parses both version strings and reports how a orders against b.
// The result is always one of compop.Eq, compop.Lt, or compop.Gt; the
// query-only operators (Le, Ge, Ne) are never returned. An error means one
// or both inputs failed to parse.
func Compare(a, b string) (compop.CompOp, error) {
	av, bv, err := parseBoth(a, b)
	if err != nil {
		return compop.Eq, err
	}
	switch av.Compare(bv) {
	case compop.Less:
		return compop.Lt, nil
	case compop.Greater:
		return compop.Gt, nil
	default:
		return compop.Eq, nil
	}
}

// CompareTo parses both version strings and reports whether the operator
// holds between them, e.g. CompareTo("1.2", "1.10", compop.Lt) is true.
// An error means one or both inputs failed to parse, or the operator is
// not one of the defined values.
func CompareTo(a, b string, op compop.CompOp) (bool, error) {
	if !op.IsValid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidOperator, uint8(op))
	}
	av, bv, err := parseBoth(a, b)
	if err != nil {
		return false, err
	}
	return op.Eval(av.Compare(bv)), nil
}

func parseBoth(a, b string) (version.Version, version.Version, error) {
	av, err := version.Parse(a)
	if err != nil {
		return version.Version{}, version.Version{}, err
	}
	bv, err := version.Parse(b)
	if err != nil {
		return version.Version{}, version.Version{}, err
	}
	return av, bv, nil
}

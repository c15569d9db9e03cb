// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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
	"sort"
	"strconv"
	"strings"
)

// Compare compares two dot-separated numeric version strings component-wise.
// The shorter version is padded with zero components, so "10.1" and "10.1.0"
// compare equal. It returns a negative number if a < b, a positive number if
// a > b, and 0 if they are equal. Comparison is numeric, not lexical:
// "11.2" < "11.10".
//
// Non-numeric components are treated as 0. Upstream listings occasionally
// contain stray tokens and the toolkit archive has always tolerated them.
func Compare(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}

	for i := 0; i < n; i++ {
		av := component(as, i)
		bv := component(bs, i)
		if av != bv {
			return av - bv
		}
	}
	return 0
}

// component returns the i-th numeric component, zero-padding past the end.
func component(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0
	}
	return n
}

// Sort sorts versions ascending in place using Compare and returns the slice.
// The sort is stable so equal versions keep their relative order.
func Sort(versions []string) []string {
	sort.SliceStable(versions, func(i, j int) bool {
		return Compare(versions[i], versions[j]) < 0
	})
	return versions
}

// Major returns the leading numeric component of a version string,
// or 0 if the string is empty or non-numeric.
func Major(v string) int {
	head, _, _ := strings.Cut(v, ".")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return n
}

// Truncate reduces a version string to at most n dot-separated components.
// Versions with fewer components are returned unchanged.
func Truncate(v string, n int) string {
	parts := strings.Split(v, ".")
	if len(parts) <= n {
		return v
	}
	return strings.Join(parts[:n], ".")
}

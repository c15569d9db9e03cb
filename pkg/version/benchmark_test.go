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

import "testing"

func BenchmarkCompare(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Compare("11.2.0", "11.10.1")
	}
}

func BenchmarkSort(b *testing.B) {
	src := []string{
		"12.4.1", "8.0.61", "11.2", "11.10", "10.2.89", "11.0.3",
		"9.2.148", "12.0", "11.8.0", "10.1.243", "12.3.2", "11.7.1",
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vs := make([]string, len(src))
		copy(vs, src)
		Sort(vs)
	}
}

// Copyright 2026 go-dense Authors
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

//go:build amd64

package linalg

import "golang.org/x/sys/cpu"

func init() {
	// The unrolled and register-blocked kernels only pay for themselves on
	// cores with wide FMA pipelines; anything without AVX2 keeps the
	// Reference default.
	nativeByDefault = cpu.X86.HasAVX2 && cpu.X86.HasFMA

	// 3 panels of 32x32 float64 = 24KB fits a 32KB L1D. AVX-512 parts ship
	// with 48KB+ L1D, so take a larger panel there.
	kernelBlock = 32
	if cpu.X86.HasAVX512F {
		kernelBlock = 48
	}
}

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

//go:build arm64

package linalg

import "runtime"

func init() {
	// All arm64 cores this toolchain targets have ASIMD and dual FP
	// pipelines; golang.org/x/sys/cpu additionally leaves feature bits
	// unpopulated on darwin, so probing would be misleading here anyway.
	nativeByDefault = true

	// Apple silicon carries a 128KB L1D; a 64-wide panel still fits with
	// room to spare. Other arm64 parts get the conservative default.
	kernelBlock = 32
	if runtime.GOOS == "darwin" {
		kernelBlock = 64
	}
}

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

package floats

import (
	"math"
	"testing"
)

func TestAlmostEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"identical", 1.0, 1.0, true},
		{"tiny absolute difference", 1.0, 1.0 + 1e-12, true},
		{"relative difference at large magnitude", 1e20, 1e20 * (1 + 1e-12), true},
		{"clearly different", 1.0, 1.1, false},
		{"zero vs tiny", 0.0, 1e-12, true},
		{"zero vs small", 0.0, 1e-6, false},
		{"nan vs nan", math.NaN(), math.NaN(), false},
		{"nan vs number", math.NaN(), 1.0, false},
		{"inf same sign", math.Inf(1), math.Inf(1), true},
		{"inf opposite sign", math.Inf(1), math.Inf(-1), false},
		{"inf vs finite", math.Inf(1), 1e300, false},
		{"negative pair", -3.5, -3.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlmostEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("AlmostEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestHypotNoOverflow(t *testing.T) {
	got := Hypot(1e200, 1e200)
	if math.IsInf(got, 0) {
		t.Fatalf("Hypot(1e200, 1e200) overflowed to %v", got)
	}
	want := 1e200 * math.Sqrt2
	if !AlmostEqual(got, want) {
		t.Errorf("Hypot(1e200, 1e200) = %v, want %v", got, want)
	}
}

func TestIncrementDecrement(t *testing.T) {
	if got := Increment(1.0); got <= 1.0 {
		t.Errorf("Increment(1) = %v, want value above 1", got)
	}
	if got := Decrement(1.0); got >= 1.0 {
		t.Errorf("Decrement(1) = %v, want value below 1", got)
	}
	if got := Decrement(Increment(1.0)); got != 1.0 {
		t.Errorf("Decrement(Increment(1)) = %v, want exactly 1", got)
	}

	// Stepping down from zero crosses into negative territory.
	if got := Decrement(0.0); got >= 0 {
		t.Errorf("Decrement(0) = %v, want negative", got)
	}

	if got := Increment(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("Increment(+Inf) = %v, want +Inf", got)
	}
	if got := Decrement(math.Inf(-1)); !math.IsInf(got, -1) {
		t.Errorf("Decrement(-Inf) = %v, want -Inf", got)
	}
	if got := Increment(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Increment(NaN) = %v, want NaN", got)
	}
}

func TestEpsilonOf(t *testing.T) {
	eps := EpsilonOf(1.0)
	if eps <= 0 {
		t.Fatalf("EpsilonOf(1) = %v, want positive", eps)
	}
	if 1.0+eps == 1.0 {
		t.Error("EpsilonOf(1) too small to be observable")
	}
	if e := EpsilonOf(-1.0); e != eps {
		t.Errorf("EpsilonOf(-1) = %v, want %v (sign-independent)", e, eps)
	}
	if e := EpsilonOf(1e300); e <= eps {
		t.Errorf("EpsilonOf(1e300) = %v, want larger than EpsilonOf(1)", e)
	}
	if !math.IsNaN(EpsilonOf(math.NaN())) {
		t.Error("EpsilonOf(NaN) should be NaN")
	}
	if !math.IsInf(EpsilonOf(math.Inf(1)), 1) {
		t.Error("EpsilonOf(+Inf) should be +Inf")
	}
}

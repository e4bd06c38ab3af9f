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

package dense

import "fmt"

// isNilVector reports whether an operand is absent, covering both the nil
// interface and a typed nil *DenseVector inside one.
func isNilVector(v Vector) bool {
	if v == nil {
		return true
	}
	d, ok := v.(*DenseVector)
	return ok && d == nil
}

func checkOperand(v Vector, n int) error {
	if isNilVector(v) {
		return ErrNilOperand
	}
	if v.Len() != n {
		return fmt.Errorf("lengths %d and %d: %w", n, v.Len(), ErrSizeMismatch)
	}
	return nil
}

// AddScalar adds s to every element in place. s == 0 is a no-op.
func (v *DenseVector) AddScalar(s float64) {
	if s == 0 {
		return
	}
	forEachRange(len(v.data), func(start, end int) {
		for i := start; i < end; i++ {
			v.data[i] += s
		}
	})
}

// AddScalarTo copies v into dst and adds s to every element of dst.
func (v *DenseVector) AddScalarTo(s float64, dst Vector) error {
	if err := checkOperand(dst, len(v.data)); err != nil {
		return err
	}
	if err := v.CopyTo(dst); err != nil {
		return err
	}

	if d, ok := dst.(*DenseVector); ok {
		d.AddScalar(s)
		return nil
	}
	if s == 0 {
		return nil
	}
	for i := range v.Len() {
		x, err := dst.At(i)
		if err != nil {
			return err
		}
		if err := dst.SetAt(i, x+s); err != nil {
			return err
		}
	}
	return nil
}

// SubScalar subtracts s from every element in place. s == 0 is a no-op.
func (v *DenseVector) SubScalar(s float64) {
	v.AddScalar(-s)
}

// SubScalarTo copies v into dst and subtracts s from every element of dst.
func (v *DenseVector) SubScalarTo(s float64, dst Vector) error {
	return v.AddScalarTo(-s, dst)
}

// Scale multiplies every element by s in place, delegating to the provider.
// s == 1 is an identity no-op that never touches storage.
func (v *DenseVector) Scale(s float64) error {
	if s == 1 {
		return nil
	}
	return Provider().Scale(s, v.data)
}

// ScaleTo copies v into dst and scales dst by s.
func (v *DenseVector) ScaleTo(s float64, dst Vector) error {
	if err := checkOperand(dst, len(v.data)); err != nil {
		return err
	}
	if err := v.CopyTo(dst); err != nil {
		return err
	}

	if d, ok := dst.(*DenseVector); ok {
		return d.Scale(s)
	}
	if s == 1 {
		return nil
	}
	for i := range v.Len() {
		x, err := dst.At(i)
		if err != nil {
			return err
		}
		if err := dst.SetAt(i, x*s); err != nil {
			return err
		}
	}
	return nil
}

// DivScalar divides every element by s in place. Division is implemented as
// multiplication by the reciprocal, matching the provider's scaling kernel.
func (v *DenseVector) DivScalar(s float64) error {
	return v.Scale(1 / s)
}

// Negate returns a new vector with every element sign-flipped.
func (v *DenseVector) Negate() *DenseVector {
	out := make([]float64, len(v.data))
	forEachRange(len(v.data), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = -v.data[i]
		}
	})
	return &DenseVector{data: out}
}

// AddVec adds other to v in place. A dense operand goes through the
// provider's fused scale-add with scale +1; any other Vector kind is added
// element by element.
func (v *DenseVector) AddVec(other Vector) error {
	return v.addScaledVec(1, other)
}

// SubVec subtracts other from v in place, via fused scale-add with scale -1
// for dense operands.
func (v *DenseVector) SubVec(other Vector) error {
	return v.addScaledVec(-1, other)
}

func (v *DenseVector) addScaledVec(scale float64, other Vector) error {
	if err := checkOperand(other, len(v.data)); err != nil {
		return err
	}

	if o, ok := other.(*DenseVector); ok {
		return Provider().AddScaled(v.data, scale, o.data)
	}

	for i := range v.data {
		x, err := other.At(i)
		if err != nil {
			return err
		}
		v.data[i] += scale * x
	}
	return nil
}

// AddVecTo computes dst = v + other without mutating v or other. If dst
// aliases either operand the sum is computed into a temporary first and
// copied over, so no source element is overwritten while still being read.
func (v *DenseVector) AddVecTo(other, dst Vector) error {
	return v.combineVecTo(1, other, dst)
}

// SubVecTo computes dst = v - other with the same aliasing discipline as
// AddVecTo.
func (v *DenseVector) SubVecTo(other, dst Vector) error {
	return v.combineVecTo(-1, other, dst)
}

func (v *DenseVector) combineVecTo(scale float64, other, dst Vector) error {
	if isNilVector(other) || isNilVector(dst) {
		return ErrNilOperand
	}
	if err := checkOperand(other, len(v.data)); err != nil {
		return err
	}
	if err := checkOperand(dst, len(v.data)); err != nil {
		return err
	}

	d, dstDense := dst.(*DenseVector)
	o, otherDense := other.(*DenseVector)

	if dstDense {
		target := d.data
		aliased := sharesStorage(d.data, v.data) || (otherDense && sharesStorage(d.data, o.data))
		if aliased {
			target = make([]float64, len(v.data))
		}

		var err error
		if otherDense {
			p := Provider()
			if scale == 1 {
				err = p.Add(target, v.data, o.data)
			} else {
				err = p.Sub(target, v.data, o.data)
			}
		} else {
			for i := range v.data {
				x, atErr := other.At(i)
				if atErr != nil {
					return atErr
				}
				target[i] = v.data[i] + scale*x
			}
		}
		if err != nil {
			return err
		}
		if aliased {
			copy(d.data, target)
		}
		return nil
	}

	for i := range v.data {
		x, err := other.At(i)
		if err != nil {
			return err
		}
		if err := dst.SetAt(i, v.data[i]+scale*x); err != nil {
			return err
		}
	}
	return nil
}

// PointwiseMul multiplies v by other element by element in place,
// delegating to the provider for dense operands.
func (v *DenseVector) PointwiseMul(other Vector) error {
	if err := checkOperand(other, len(v.data)); err != nil {
		return err
	}

	if o, ok := other.(*DenseVector); ok {
		return Provider().MulElem(v.data, v.data, o.data)
	}

	for i := range v.data {
		x, err := other.At(i)
		if err != nil {
			return err
		}
		v.data[i] *= x
	}
	return nil
}

// PointwiseMulTo computes dst = v .* other without mutating v or other,
// with the same aliasing discipline as AddVecTo.
func (v *DenseVector) PointwiseMulTo(other, dst Vector) error {
	if isNilVector(other) || isNilVector(dst) {
		return ErrNilOperand
	}
	if err := checkOperand(other, len(v.data)); err != nil {
		return err
	}
	if err := checkOperand(dst, len(v.data)); err != nil {
		return err
	}

	if d, ok := dst.(*DenseVector); ok {
		o, otherDense := other.(*DenseVector)

		target := d.data
		aliased := sharesStorage(d.data, v.data) || (otherDense && sharesStorage(d.data, o.data))
		if aliased {
			target = make([]float64, len(v.data))
		}

		if otherDense {
			if err := Provider().MulElem(target, v.data, o.data); err != nil {
				return err
			}
		} else {
			for i := range v.data {
				x, err := other.At(i)
				if err != nil {
					return err
				}
				target[i] = v.data[i] * x
			}
		}
		if aliased {
			copy(d.data, target)
		}
		return nil
	}

	for i := range v.data {
		x, err := other.At(i)
		if err != nil {
			return err
		}
		if err := dst.SetAt(i, v.data[i]*x); err != nil {
			return err
		}
	}
	return nil
}

// Dot returns the inner product with other, delegating to the provider when
// other is dense.
func (v *DenseVector) Dot(other Vector) (float64, error) {
	if err := checkOperand(other, len(v.data)); err != nil {
		return 0, err
	}

	if o, ok := other.(*DenseVector); ok {
		return Provider().Dot(v.data, o.data)
	}

	var sum float64
	for i := range v.data {
		x, err := other.At(i)
		if err != nil {
			return 0, err
		}
		sum += v.data[i] * x
	}
	return sum, nil
}

// Package-level operation wrappers. These carry the precondition contract of
// the original operator surface: operands are nil-checked before they are
// size-checked, then the work is delegated to the corresponding method.

// Add returns a + b as a new vector of a's kind.
func Add(a, b Vector) (Vector, error) {
	return combine(a, b, 1)
}

// Sub returns a - b as a new vector of a's kind.
func Sub(a, b Vector) (Vector, error) {
	return combine(a, b, -1)
}

func combine(a, b Vector, scale float64) (Vector, error) {
	if isNilVector(a) || isNilVector(b) {
		return nil, ErrNilOperand
	}
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("lengths %d and %d: %w", a.Len(), b.Len(), ErrSizeMismatch)
	}

	out, err := a.NewOfLen(a.Len())
	if err != nil {
		return nil, err
	}

	if da, ok := a.(*DenseVector); ok {
		if err := da.combineVecTo(scale, b, out); err != nil {
			return nil, err
		}
		return out, nil
	}

	for i := range a.Len() {
		av, err := a.At(i)
		if err != nil {
			return nil, err
		}
		bv, err := b.At(i)
		if err != nil {
			return nil, err
		}
		if err := out.SetAt(i, av+scale*bv); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Neg returns the elementwise negation of a as a new vector.
func Neg(a Vector) (Vector, error) {
	if isNilVector(a) {
		return nil, ErrNilOperand
	}
	if da, ok := a.(*DenseVector); ok {
		return da.Negate(), nil
	}

	out, err := a.NewOfLen(a.Len())
	if err != nil {
		return nil, err
	}
	for i := range a.Len() {
		x, err := a.At(i)
		if err != nil {
			return nil, err
		}
		if err := out.SetAt(i, -x); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Scaled returns s * a as a new vector.
func Scaled(s float64, a Vector) (Vector, error) {
	if isNilVector(a) {
		return nil, ErrNilOperand
	}

	out := a.Clone()
	if d, ok := out.(*DenseVector); ok {
		if err := d.Scale(s); err != nil {
			return nil, err
		}
		return out, nil
	}
	if s == 1 {
		return out, nil
	}
	for i := range out.Len() {
		x, err := out.At(i)
		if err != nil {
			return nil, err
		}
		if err := out.SetAt(i, s*x); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Div returns a / s as a new vector.
func Div(a Vector, s float64) (Vector, error) {
	return Scaled(1/s, a)
}

// Dot returns the inner product of a and b.
func Dot(a, b Vector) (float64, error) {
	if isNilVector(a) || isNilVector(b) {
		return 0, ErrNilOperand
	}
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("lengths %d and %d: %w", a.Len(), b.Len(), ErrSizeMismatch)
	}

	if da, ok := a.(*DenseVector); ok {
		return da.Dot(b)
	}

	var sum float64
	for i := range a.Len() {
		av, err := a.At(i)
		if err != nil {
			return 0, err
		}
		bv, err := b.At(i)
		if err != nil {
			return 0, err
		}
		sum += av * bv
	}
	return sum, nil
}

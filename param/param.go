/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package param validates sampler parameters.
//
// Each type class is one pure function taking an optional value and
// an optional default: a nil value with a non-nil default returns
// the default untouched; otherwise the class's checks run in order
// and the first violation aborts with an error wrapping the class's
// sentinel. Validating an already valid value returns it unchanged,
// so validation is idempotent.
package param

import (
	"math"

	"github.com/pkg/errors"
)

// Sentinel errors, one per class of invalid parameter. Individual
// checks wrap these with the specific violation, so callers can
// match the class with errors.Is and still read the exact cause.
var (
	ErrCount          = errors.New("count must be a positive whole number")
	ErrProbability    = errors.New("probability must be a number in [0, 1]")
	ErrPositive       = errors.New("value must be a finite number greater than 0")
	ErrReal           = errors.New("value must be a finite number")
	ErrNonNegative    = errors.New("value must be a finite number of at least 0")
	ErrNonNegativeInt = errors.New("value must be a finite whole number of at least 0")
	ErrSize           = errors.New("size must be a whole number of at least 1")
)

// Count validates a sample count. Go's int type already rules out
// non-numeric, fractional and infinite counts; zero and negative
// values remain to be rejected.
func Count(n int) (int, error) {
	if n == 0 {
		return 0, errors.Wrap(ErrCount, "count is zero")
	}
	if n < 0 {
		return 0, errors.Wrap(ErrCount, "count is negative")
	}
	return n, nil
}

// Probability validates a probability in [0, 1].
func Probability(v, def *float64) (float64, error) {
	if v == nil {
		if def != nil {
			return *def, nil
		}
		return 0, errors.Wrap(ErrProbability, "probability not given")
	}
	p := *v
	if math.IsNaN(p) {
		return 0, errors.Wrap(ErrProbability, "probability is not a number")
	}
	if p > 1 {
		return 0, errors.Wrap(ErrProbability, "probability is greater than 1")
	}
	if p < 0 {
		return 0, errors.Wrap(ErrProbability, "probability is less than 0")
	}
	return p, nil
}

// Positive validates a strictly positive finite real.
func Positive(v, def *float64) (float64, error) {
	if v == nil {
		if def != nil {
			return *def, nil
		}
		return 0, errors.Wrap(ErrPositive, "value not given")
	}
	x := *v
	if math.IsNaN(x) {
		return 0, errors.Wrap(ErrPositive, "value is not a number")
	}
	if x <= 0 {
		return 0, errors.Wrap(ErrPositive, "value is not greater than 0")
	}
	if math.IsInf(x, 0) {
		return 0, errors.Wrap(ErrPositive, "value is infinite")
	}
	return x, nil
}

// Real validates any finite real.
func Real(v, def *float64) (float64, error) {
	if v == nil {
		if def != nil {
			return *def, nil
		}
		return 0, errors.Wrap(ErrReal, "value not given")
	}
	x := *v
	if math.IsNaN(x) {
		return 0, errors.Wrap(ErrReal, "value is not a number")
	}
	if math.IsInf(x, 0) {
		return 0, errors.Wrap(ErrReal, "value is infinite")
	}
	return x, nil
}

// NonNegative validates a finite real of at least 0.
func NonNegative(v, def *float64) (float64, error) {
	if v == nil {
		if def != nil {
			return *def, nil
		}
		return 0, errors.Wrap(ErrNonNegative, "value not given")
	}
	x := *v
	if math.IsNaN(x) {
		return 0, errors.Wrap(ErrNonNegative, "value is not a number")
	}
	if x < 0 {
		return 0, errors.Wrap(ErrNonNegative, "value is negative")
	}
	if math.IsInf(x, 0) {
		return 0, errors.Wrap(ErrNonNegative, "value is infinite")
	}
	return x, nil
}

// NonNegativeInt validates a finite whole number of at least 0.
func NonNegativeInt(v, def *float64) (float64, error) {
	if v == nil {
		if def != nil {
			return *def, nil
		}
		return 0, errors.Wrap(ErrNonNegativeInt, "value not given")
	}
	x := *v
	if math.IsNaN(x) {
		return 0, errors.Wrap(ErrNonNegativeInt, "value is not a number")
	}
	if x != math.Trunc(x) {
		return 0, errors.Wrap(ErrNonNegativeInt, "value is not a whole number")
	}
	if x < 0 {
		return 0, errors.Wrap(ErrNonNegativeInt, "value is negative")
	}
	if math.IsInf(x, 0) {
		return 0, errors.Wrap(ErrNonNegativeInt, "value is infinite")
	}
	return x, nil
}

// Size validates the size parameter of the negative binomial
// sampler: a whole number of at least 1.
func Size(v *float64, def float64) (float64, error) {
	if v == nil {
		return def, nil
	}
	x := *v
	if math.IsNaN(x) {
		return 0, errors.Wrap(ErrSize, "size is not a number")
	}
	if x != math.Trunc(x) {
		return 0, errors.Wrap(ErrSize, "size is not a whole number")
	}
	if x < 1 {
		return 0, errors.Wrap(ErrSize, "size is less than 1")
	}
	if math.IsInf(x, 0) {
		return 0, errors.Wrap(ErrSize, "size is infinite")
	}
	return x, nil
}

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

// Package entropy converts cryptographically secure random bytes
// into uniform real numbers in the interval [0, 1).
//
// The Source interface is the collaborator every sampler in the
// dist package draws from. Device is the default implementation,
// backed by crypto/rand; Stream is a deterministic, seed-keyed
// implementation intended for reproducible runs.
package entropy

import (
	"crypto/rand"
	"io"
	"math"

	"github.com/pkg/errors"
)

// DefaultByteLen is the number of random bytes behind one Float
// call: 16 bytes give roughly 128 bits of resolution, enough to
// treat the result as a continuous uniform for every transform
// built on top of it.
const DefaultByteLen = 16

// ErrByteLen is returned when a non-positive byte length is
// requested from a source.
var ErrByteLen = errors.New("entropy: byte length must be positive")

// Source yields uniform random values from [0, 1). Float never
// returns a value below 0 or at or above 1; byteLen controls the
// resolution of the result.
type Source interface {
	Float(byteLen int) (float64, error)
}

// Device reads random bytes from an underlying reader, by default
// the operating system CSPRNG exposed through crypto/rand.
type Device struct {
	r io.Reader
}

// NewDevice returns a Device backed by crypto/rand.Reader.
func NewDevice() *Device {
	return &Device{r: rand.Reader}
}

// NewDeviceFrom returns a Device backed by the given reader. The
// reader must produce unbiased, independent bytes; any
// cryptographically secure byte source satisfies the contract.
func NewDeviceFrom(r io.Reader) *Device {
	return &Device{r: r}
}

// Float reads byteLen random bytes and interprets them as the
// digits of a base-256 fraction: byte i contributes
// byte[i] / 256^(i+1). The sum is uniform on [0, 1).
func (d *Device) Float(byteLen int) (float64, error) {
	if byteLen <= 0 {
		return 0, ErrByteLen
	}
	buf := make([]byte, byteLen)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return 0, errors.Wrap(err, "error reading random bytes")
	}
	return fraction(buf), nil
}

// fraction folds a byte slice into a base-256 positional fraction.
func fraction(buf []byte) float64 {
	f := 0.0
	den := 1.0
	for _, b := range buf {
		den /= 256
		f += float64(b) * den
	}
	// A long run of leading 0xff bytes can round the sum up to
	// exactly 1.0 in float64; the contract is [0, 1).
	if f >= 1 {
		f = math.Nextafter(1, 0)
	}
	return f
}

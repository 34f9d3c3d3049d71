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

package entropy

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// Stream is a deterministic Source keyed by a 32-byte seed. Two
// Streams with equal seeds produce identical value sequences, which
// makes sampling runs reproducible. A Stream is not safe for
// concurrent use.
type Stream struct {
	key [32]byte
	ctr uint64
}

// NewStream returns a Stream seeded with the given key.
func NewStream(key *[32]byte) *Stream {
	s := &Stream{}
	s.key = *key
	return s
}

// Float derives byteLen bytes from the salsa20 keystream under a
// per-call counter nonce and folds them into a uniform value in
// [0, 1), exactly as Device does with device bytes.
func (s *Stream) Float(byteLen int) (float64, error) {
	if byteLen <= 0 {
		return 0, ErrByteLen
	}
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], s.ctr)
	s.ctr++

	buf := make([]byte, byteLen)
	salsa20.XORKeyStream(buf, buf, nonce[:], &s.key)
	return fraction(buf), nil
}

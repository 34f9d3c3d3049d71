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

// Package dist generates arrays of random variates drawn from
// common probability distributions.
//
// Every sampler validates all of its parameters up front through
// the param package and then draws exactly n independent values
// from an entropy.Source, so a call either returns a fully
// populated slice of length n or fails with a descriptive error
// and no partial result.
//
// Parameters with documented defaults are optional pointer fields
// on per-distribution params structs; a nil field selects the
// default. The Float and Int helpers build such pointers inline:
//
//	draws, err := dist.Norm(1000, dist.NormParams{SD: dist.Float(2)})
//
// Package-level functions draw from a shared crypto/rand backed
// sampler. Construct a Sampler with an entropy.Stream instead when
// runs have to be reproducible.
package dist

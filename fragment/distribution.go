// Copyright 2020-2021 Dolthub, Inc.
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

// Package fragment holds the distribution algebra and the Fragment /
// FragmentBuilder / SubPlan data model of spec §3–§4.1: the part of the
// fragmenter that is not itself a rewrite rule, but the state every rewrite
// rule reads and mutates.
package fragment

// Distribution is the fragmenter's four-way classification of how many,
// and which kind of, workers a fragment runs on (spec §3).
type Distribution int

const (
	// Source reads a partitioned base table; cardinality is determined by
	// the source's splits.
	Source Distribution = iota
	// Fixed runs on a configurable number of workers, each receiving a
	// hash-partitioned slice.
	Fixed
	// CoordinatorOnly runs as exactly one instance, and that instance must
	// be the coordinator.
	CoordinatorOnly
	// None runs as exactly one instance, on any worker ("single-node").
	None
)

func (d Distribution) String() string {
	switch d {
	case Source:
		return "SOURCE"
	case Fixed:
		return "FIXED"
	case CoordinatorOnly:
		return "COORDINATOR_ONLY"
	default:
		return "NONE"
	}
}

// IsDistributed reports whether a fragment with this distribution may have
// more than one running instance (spec §3).
func (d Distribution) IsDistributed() bool {
	return d == Source || d == Fixed
}

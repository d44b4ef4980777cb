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

package sql

// FunctionInfo describes one resolved aggregate function signature, as
// reported by the metadata catalog (spec §6). The Aggregation rewrite rule
// consults it to decide whether the PARTIAL/FINAL split is legal and, when
// it is, to type each intermediate symbol.
type FunctionInfo interface {
	// Name is the function's catalog name (e.g. "sum", "approx_percentile").
	// The FINAL stage rewrites each aggregate as a call on its intermediate
	// symbol under this same name.
	Name() string

	// IsDecomposable reports whether this aggregate factors into a partial
	// step over disjoint partitions plus an associative combiner over the
	// partial results. Non-decomposable aggregates (e.g. exact percentiles
	// without a mergeable sketch) force the whole Aggregation onto a single
	// instance.
	IsDecomposable() bool

	// IntermediateType is the type of the fresh symbol the PARTIAL stage
	// emits for this aggregate. Only meaningful when IsDecomposable is true.
	IntermediateType() Type
}

// Catalog is the read-only metadata-catalog external collaborator of spec
// §6. It must be immutable or internally synchronized since the fragmenter
// treats it as shared, read-only state (spec §5).
type Catalog interface {
	// ResolveFunction looks up a function by its call signature (typically
	// just its name, but catalogs may distinguish by argument types).
	// A miss is a fatal ErrUnknownFunction, never recovered locally.
	ResolveFunction(signature string) (FunctionInfo, error)
}

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

import "gopkg.in/src-d/go-errors.v1"

// The fragmenter surfaces five error kinds (spec §7, with unsupported
// operator and unsupported join type as separate kinds). All are
// fatal: the fragmenter is a pure rewrite and any failure aborts the whole
// pass, no partial SubPlan is ever returned.
var (
	// ErrUnsupportedOperator is raised when the rewrite dispatch encounters
	// a plan.Node variant it has no rule for.
	ErrUnsupportedOperator = errors.NewKind("fragmenter: unsupported operator %T")

	// ErrUnsupportedJoinType is raised by the Join rule for anything other
	// than INNER, LEFT or RIGHT.
	ErrUnsupportedJoinType = errors.NewKind("fragmenter: unsupported join type %s")

	// ErrSanityCheck is raised by the SubPlan finalization pass when the
	// assembled fragment DAG violates one of its invariants. It always
	// indicates a bug in a rewrite rule, never a malformed input plan.
	ErrSanityCheck = errors.NewKind("fragmenter: sanity check failed: %s")

	// ErrUnknownFunction is raised when the catalog has no registered
	// signature for an aggregate function referenced by an Aggregation
	// operator.
	ErrUnknownFunction = errors.NewKind("fragmenter: unknown function %s")

	// ErrMissingDependency is raised at Fragmenter construction when a
	// required collaborator (session, catalog, allocator) is nil.
	ErrMissingDependency = errors.NewKind("fragmenter: missing required dependency: %s")
)

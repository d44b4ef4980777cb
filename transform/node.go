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

// Package transform holds small tree-walking helpers shared by the
// fragmenter's sanity check and diagnostics code, in the idiom of the
// teacher's own sql/transform package (TreeIdentity / SameTree / NewTree,
// a NodeFunc visited bottom-up).
package transform

import "github.com/dolthub/go-mysql-server-fragmenter/plan"

// TreeIdentity records whether a tree-walking operation actually changed
// anything, the same convention the teacher's sql/transform.TreeIdentity
// uses to let callers skip unnecessary rebuilding.
type TreeIdentity bool

const (
	SameTree TreeIdentity = false
	NewTree  TreeIdentity = true
)

// NodeFunc is applied to each node of a tree, bottom-up.
type NodeFunc func(n plan.Node) error

// Inspect walks n and every descendant, children before parent, calling fn
// on each. It never rebuilds the tree (this module's plan.Node values are
// immutable once constructed; rewrite rules build new nodes directly
// instead of mutating in place per spec §9), so it only ever needs to
// report errors, not a replacement node.
func Inspect(n plan.Node, fn NodeFunc) error {
	if n == nil {
		return nil
	}
	for _, c := range n.Children() {
		if err := Inspect(c, fn); err != nil {
			return err
		}
	}
	return fn(n)
}

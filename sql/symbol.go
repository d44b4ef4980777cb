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

import "fmt"

// Type is an opaque value-type tag. The fragmenter never inspects a Type's
// contents; it only threads Types through from the logical plan to freshly
// allocated intermediate symbols (see the Aggregation rule).
type Type interface {
	// TypeName is used only for diagnostics (logging, String()).
	TypeName() string
}

// BasicType is the stand-in Type implementation used by fixtures and tests.
// Production callers are expected to plug in their own type system.
type BasicType string

func (t BasicType) TypeName() string { return string(t) }

// Symbol is an opaque, identity-compared output column. Two symbols are the
// same column iff they are the same *Symbol pointer. Names serve
// diagnostics, and fragment.OutputPartitioning.SameKeySet compares key sets
// by name.
type Symbol struct {
	name string
	typ  Type
}

// NewSymbol constructs a Symbol directly. Most callers should go through a
// SymbolAllocator instead so that generated names stay unique in logs.
func NewSymbol(name string, typ Type) *Symbol {
	return &Symbol{name: name, typ: typ}
}

func (s *Symbol) Name() string { return s.name }
func (s *Symbol) Type() Type   { return s.typ }

func (s *Symbol) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s", s.name)
}

// SymbolList is an ordered list of output symbols, the output schema of a
// plan.Node.
type SymbolList []*Symbol

// Contains reports whether sym appears in the list, compared by identity.
func (l SymbolList) Contains(sym *Symbol) bool {
	for _, s := range l {
		if s == sym {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every symbol in syms appears in the list.
func (l SymbolList) ContainsAll(syms []*Symbol) bool {
	for _, s := range syms {
		if !l.Contains(s) {
			return false
		}
	}
	return true
}

func (l SymbolList) String() string {
	out := "["
	for i, s := range l {
		if i > 0 {
			out += ", "
		}
		out += s.String()
	}
	return out + "]"
}

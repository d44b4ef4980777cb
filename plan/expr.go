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

package plan

import (
	"fmt"
	"strings"

	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

// Expr is the minimal scalar-expression contract the fragmenter needs:
// enough to know which symbols an operator reads, without re-implementing
// the expression optimizer that produced the input tree (explicitly out of
// scope per spec §1 — "logical planning and optimization passes ... are
// external collaborators"). Project/Filter/Join conditions are built from
// these.
type Expr interface {
	fmt.Stringer
	// Symbols returns every symbol this expression reads. The fragmenter's
	// sanity check does not call it.
	Symbols() sql.SymbolList
}

// Ref is a direct reference to one input symbol, analogous to the teacher's
// expression.GetField.
type Ref struct {
	Sym *sql.Symbol
}

func NewRef(sym *sql.Symbol) *Ref { return &Ref{Sym: sym} }

func (r *Ref) Symbols() sql.SymbolList { return sql.SymbolList{r.Sym} }
func (r *Ref) String() string          { return r.Sym.String() }

// Call is a scalar function call over sub-expressions (comparison,
// arithmetic, boolean connective, ...). Aggregate calls use the richer
// AggregateCall type in aggregation.go instead.
type Call struct {
	Func string
	Args []Expr
}

func NewCall(fn string, args ...Expr) *Call { return &Call{Func: fn, Args: args} }

func (c *Call) Symbols() sql.SymbolList {
	var out sql.SymbolList
	for _, a := range c.Args {
		out = append(out, a.Symbols()...)
	}
	return out
}

func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Func, strings.Join(parts, ", "))
}

// SortItem is one ORDER BY key.
type SortItem struct {
	Sym        *sql.Symbol
	Descending bool
	NullsFirst bool
}

func (s SortItem) String() string {
	dir := "ASC"
	if s.Descending {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s", s.Sym, dir)
}

func sortItemsString(items []SortItem) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, ", ")
}

func symbolsFromSortItems(items []SortItem) sql.SymbolList {
	var out sql.SymbolList
	for _, it := range items {
		out = append(out, it.Sym)
	}
	return out
}

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

// Package fragmenter is the bottom-up tree rewriter of spec §2: dispatch on
// operator variant to a per-variant rewrite rule, driven by the Fragmenter
// type below. It plays the role the teacher's sql/analyzer package plays
// for go-mysql-server (NewBuilder().Build() style construction, rule
// dispatch, logrus-backed tracing of what each pass decided), generalized
// from "rewrite a tree in place" to "rewrite a tree into a fragment DAG".
package fragmenter

import (
	"context"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/go-mysql-server-fragmenter/fragment"
	"github.com/dolthub/go-mysql-server-fragmenter/plan"
	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

// defaultMaxFragments bounds a single pass against runaway recursive
// rewrite chains, the same role the teacher analyzer's maxAnalysisIterations
// plays against unbounded rule application.
const defaultMaxFragments = 10000

// Options are the three boolean planner options of spec §6.
type Options struct {
	// CreateSingleNodePlan forces every fragment to distribution NONE.
	CreateSingleNodePlan bool
	// DistributedIndexJoins allows the IndexJoin rule to re-hash its probe
	// side instead of always running wherever the probe side already is.
	DistributedIndexJoins bool
	// DistributedJoins allows the Join rule to hash-redistribute both
	// sides of an INNER/LEFT/RIGHT join instead of always broadcasting the
	// build side to wherever the probe side already is.
	DistributedJoins bool
}

// Config carries the ambient-stack collaborators: logging, tracing, and
// the soft fragment-count guard.
type Config struct {
	// Logger receives rewrite-decision trace; defaults to a discarding
	// logrus.Logger if nil.
	Logger *logrus.Logger
	// Tracer opens spans around the pass and each top-level dispatch;
	// defaults to opentracing.NoopTracer{} if nil.
	Tracer opentracing.Tracer
	// MaxFragments is the soft cap on fragment count per pass; 0 uses
	// defaultMaxFragments.
	MaxFragments int
}

// Fragmenter rewrites one logical plan tree into one fragment DAG per call
// to Fragment. It is safe to reuse across calls (spec §5: "no shared
// mutable state across queries") provided Session/Catalog/allocators are
// themselves safe for that reuse.
type Fragmenter struct {
	session sql.Session
	catalog sql.Catalog
	symbols *sql.SymbolAllocator
	nodeIds *sql.NodeIdAllocator
	options Options

	log          *logrus.Entry
	tracer       opentracing.Tracer
	maxFragments int
}

// New constructs a Fragmenter. Per spec §7, a nil session, catalog, or
// allocator is a fatal ErrMissingDependency detected here, at construction,
// rather than surfacing later as a nil-pointer panic mid-rewrite.
func New(session sql.Session, catalog sql.Catalog, symbols *sql.SymbolAllocator, nodeIds *sql.NodeIdAllocator, options Options, cfg Config) (*Fragmenter, error) {
	if session == nil {
		return nil, sql.ErrMissingDependency.New("session")
	}
	if catalog == nil {
		return nil, sql.ErrMissingDependency.New("catalog")
	}
	if symbols == nil {
		return nil, sql.ErrMissingDependency.New("symbol allocator")
	}
	if nodeIds == nil {
		return nil, sql.ErrMissingDependency.New("node id allocator")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
		logger.Out = io.Discard
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = opentracing.NoopTracer{}
	}

	maxFragments := cfg.MaxFragments
	if maxFragments <= 0 {
		maxFragments = defaultMaxFragments
	}

	return &Fragmenter{
		session:      session,
		catalog:      catalog,
		symbols:      symbols,
		nodeIds:      nodeIds,
		options:      options,
		log:          logger.WithField("component", "fragmenter"),
		tracer:       tracer,
		maxFragments: maxFragments,
	}, nil
}

// bigQueryEnabled reads the big_query_enabled session flag consulted by the
// MarkDistinct rule (spec §4.3).
func (f *Fragmenter) bigQueryEnabled() bool {
	return sql.GetBool(f.session, sql.BigQueryEnabledKey, false)
}

// rewriteState is threaded through every rule: the collaborators a single
// Fragment() call needs, bundled so rule functions don't carry a dozen
// positional arguments.
type rewriteState struct {
	f       *Fragmenter
	fragIds *sql.FragmentIdAllocator
	span    opentracing.Span
}

// Fragment rewrites root into a SubPlan (spec §4.4). Every fragment id
// handed out by this call starts counting from 1: fragment ids are
// per-invocation, not process-global (spec §5 — "no shared mutable state
// across queries").
func (f *Fragmenter) Fragment(ctx context.Context, root plan.Node) (*fragment.SubPlan, error) {
	span, _ := opentracing.StartSpanFromContextWithTracer(ctx, f.tracer, "plan.fragment")
	defer span.Finish()

	st := &rewriteState{f: f, fragIds: sql.NewFragmentIdAllocator(), span: span}

	b, err := rewrite(st, root)
	if err != nil {
		return nil, err
	}

	if st.fragIds.Count() > int64(f.maxFragments) {
		return nil, sql.ErrSanityCheck.New("fragment count exceeded MaxFragments")
	}

	rootFragment, err := b.Build()
	if err != nil {
		return nil, errors.Wrap(err, "sealing root fragment")
	}

	sp := fragment.NewSubPlan(rootFragment)
	if err := checkSanity(sp); err != nil {
		return nil, err
	}

	f.log.WithFields(logrus.Fields{
		"fragments": st.fragIds.Count(),
	}).Debug("fragmented plan")

	return sp, nil
}

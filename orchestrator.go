// Copyright © 2021 The crass-go Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package crass

import (
	"io"

	"github.com/shenwei356/go-logging"
	"github.com/twotwotwo/sorts/sortutil"
)

// readKey identifies one read within one file, for excluding pass-1
// assigned reads from the pass-2 singleton scan (spec §4.6).
type readKey struct {
	path string
	name string
}

// Group is one canonical-repeat partition of the run: every ReadRecord
// canonicalizing (pass 1) or matching (pass 2) to the same repeat
// string, plus the NodeManager built from them (spec §4.7).
type Group struct {
	CanonicalRepeat string
	Manager         *NodeManager
}

// Result is the outcome of a full Orchestrator.Run (spec §6): the
// per-canonical-repeat groups, in the order their canonical repeat was
// first observed, plus the failure counters spec §7 asks for.
type Result struct {
	Groups         []*Group
	MalformedReads int
	FileErrors     map[string]error
}

// Orchestrator drives passes 1 and 2, groups reads by canonical repeat,
// and owns one NodeManager per group (spec §4.7). It holds the
// process-wide StringPool (write-during-build, read-only after, spec
// §5) and a logger threaded through instead of a package global (design
// note, spec §9); a nil logger means silent.
type Orchestrator struct {
	cfg    Config
	pool   *StringPool
	finder *SingleReadFinder
	logger *logging.Logger
}

// NewOrchestrator validates cfg (spec §7, "fatal at startup before
// reading") and returns an Orchestrator ready to Run.
func NewOrchestrator(cfg Config, logger *logging.Logger) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Orchestrator{
		cfg:    cfg,
		pool:   NewStringPool(),
		finder: NewSingleReadFinder(cfg),
		logger: logger,
	}, nil
}

func (o *Orchestrator) warnf(format string, args ...interface{}) {
	if o.logger != nil {
		o.logger.Warningf(format, args...)
	}
}

// Run executes the whole pipeline over paths (spec §4.7): every file is
// opened up front via OpenMany so an unreadable file is fatal only for
// itself, then pass 1 runs over every source that opened successfully,
// pass 2 does the singleton scan, and finally each group's NodeManager
// is collapsed and cleaned (colors are computed on demand by
// NodeManager.Colors). It never returns a Go error for
// per-read or per-file problems (spec §7 propagation policy); those
// surface in the returned Result and ExitCode.
func (o *Orchestrator) Run(paths []string) (*Result, ExitCode) {
	res := &Result{FileErrors: make(map[string]error)}
	groupIndex := make(map[string]int)
	assigned := make(map[readKey]bool)

	sources, errs := OpenMany(paths)
	for path, err := range errs {
		res.FileErrors[path] = err
		o.warnf("%s", err)
	}
	for _, src := range sources {
		o.runPass1Source(src, res, groupIndex, assigned)
	}

	if len(res.Groups) > 0 {
		patterns := make([]string, len(res.Groups))
		for i, g := range res.Groups {
			patterns[i] = g.CanonicalRepeat
		}
		// Sort canonical repeats before building the pass-2 matcher so its
		// shift/hash tables are built in a deterministic order regardless of
		// which file first produced each group (spec §4.7).
		sortutil.Strings(patterns)
		if sf, err := NewSingletonFinder(patterns); err == nil {
			for _, path := range paths {
				if _, failed := res.FileErrors[path]; failed {
					continue
				}
				o.runPass2File(path, sf, res, groupIndex, assigned)
			}
		}
	}

	for _, g := range res.Groups {
		g.Manager.CollapseVariants(o.cfg.SimilarityThreshold)
		g.Manager.CleanGraph()
	}

	return res, o.exitCode(res)
}

// runPass1Source drives one already-opened source (opened up front via
// OpenMany, spec §4.7 step 1) to completion.
func (o *Orchestrator) runPass1Source(src *SequenceSource, res *Result, groupIndex map[string]int, assigned map[readKey]bool) {
	defer src.Close()
	path := src.Path()

	for {
		name, bases, err := src.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			res.FileErrors[path] = err
			o.warnf("%s", err)
			return
		}

		read, merr := NewRawRead(name, bases)
		if merr != nil {
			res.MalformedReads++
			o.warnf("%v", merr)
			continue
		}

		rr, reason := o.finder.Find(read)
		if reason != RejectNone {
			continue
		}
		rr = Canonicalize(rr)
		canon := representativeRepeat(rr.Read, rr.Positions)

		o.assign(res, groupIndex, canon, rr)
		assigned[readKey{path: path, name: name}] = true
	}
}

func (o *Orchestrator) runPass2File(path string, sf *SingletonFinder, res *Result, groupIndex map[string]int, assigned map[readKey]bool) {
	src, err := Open(path)
	if err != nil {
		// Already fatal for this file in pass 1; do not report twice.
		return
	}
	defer src.Close()

	for {
		name, bases, err := src.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			return
		}
		if assigned[readKey{path: path, name: name}] {
			continue
		}

		read, merr := NewRawRead(name, bases)
		if merr != nil {
			continue // already counted in pass 1
		}

		rr, canon, ok := sf.Find(read)
		if !ok {
			continue
		}
		o.assign(res, groupIndex, canon, rr)
		assigned[readKey{path: path, name: name}] = true
	}
}

func (o *Orchestrator) assign(res *Result, groupIndex map[string]int, canon string, rr ReadRecord) {
	idx, ok := groupIndex[canon]
	if !ok {
		idx = len(res.Groups)
		groupIndex[canon] = idx
		res.Groups = append(res.Groups, &Group{
			CanonicalRepeat: canon,
			Manager:         NewNodeManager(canon, o.pool),
		})
	}
	res.Groups[idx].Manager.AddRead(rr)
}

// exitCode implements the whole-pipeline exit-status taxonomy (spec
// §6). A file I/O failure is reported even when other files succeeded,
// since it is the more specific fault; "no CRISPRs found" is a
// warning-level status reserved for a run where every file was
// readable but nothing passed QC.
func (o *Orchestrator) exitCode(res *Result) ExitCode {
	if len(res.FileErrors) > 0 {
		return ExitIOError
	}
	if len(res.Groups) == 0 {
		return ExitNoneFound
	}
	return ExitSuccess
}

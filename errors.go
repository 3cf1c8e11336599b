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

import "errors"

// ErrInvalidConfig means the pipeline configuration is internally
// inconsistent (minRep > maxRep, etc). Fatal at startup, before any read
// is examined.
var ErrInvalidConfig = errors.New("crass: invalid configuration")

// ErrNoPatterns means SingletonFinder was asked to search with an empty
// pattern set.
var ErrNoPatterns = errors.New("crass: no patterns to search for")

// ExitCode mirrors the whole-pipeline exit status taxonomy (spec §6).
type ExitCode int

// Exit codes for Orchestrator.Run.
const (
	ExitSuccess   ExitCode = 0
	ExitUsage     ExitCode = 1
	ExitIOError   ExitCode = 2
	ExitNoneFound ExitCode = 3
)

// RejectReason names why RepeatQC or SingleReadFinder discarded a
// candidate. The matcher and QC layers return these instead of raising
// errors: the orchestrator never sees exceptions from them (spec §7).
type RejectReason int

// Reasons a candidate repeat array never becomes a ReadRecord.
const (
	RejectNone RejectReason = iota
	RejectTooFewSeeds
	RejectLengthOutOfBounds
	RejectSpacerLengthOutOfBounds
	RejectSpacerLengthVariance
	RejectLowComplexity
	RejectRepeatSpacerSimilarity
	RejectAbundantKmer
)

func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "accepted"
	case RejectTooFewSeeds:
		return "too few seeds"
	case RejectLengthOutOfBounds:
		return "repeat length out of bounds"
	case RejectSpacerLengthOutOfBounds:
		return "spacer length out of bounds"
	case RejectSpacerLengthVariance:
		return "spacer length variance too high"
	case RejectLowComplexity:
		return "low complexity repeat"
	case RejectRepeatSpacerSimilarity:
		return "repeat too similar to its spacer"
	case RejectAbundantKmer:
		return "abundant k-mer in repeat"
	default:
		return "unknown"
	}
}

// MalformedReadError records a read skipped for being malformed (empty,
// or containing characters outside {A,C,G,T,N} that coercion could not
// fix). It is never fatal; the caller counts and warns (spec §7).
type MalformedReadError struct {
	ReadName string
	Reason   string
}

func (e *MalformedReadError) Error() string {
	return "crass: malformed read " + e.ReadName + ": " + e.Reason
}

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

import "fmt"

// Default parameter values, taken from the original crass headers
// (crass_defines.h / Search.h) and spec §4.3-§4.4.
const (
	DefaultMinRepeatLength        = 23
	DefaultMaxRepeatLength        = 47
	DefaultMinSpacerLength        = 26
	DefaultMaxSpacerLength        = 50
	DefaultSearchWindowLength     = 8
	DefaultScanRange              = 30
	DefaultMinSeedCount           = 3
	DefaultMaxMismatches          = 0
	DefaultKmerSize               = 7
	DefaultSpacerLengthDiff       = 12
	DefaultLowComplexityThreshold = 0.75
	DefaultSimilarityThreshold    = 0.82
	DefaultAbundantKmerThreshold  = 0.23

	// maxPatternLength is a sanity ceiling unrelated to maxRepeatLength,
	// inherited from CRASS_DEF_MAX_PATTERN_LENGTH in the original
	// headers: it bounds pathological configuration, not biology.
	maxPatternLength = 1024
)

// Config is the immutable, validated configuration threaded through the
// whole call tree (Orchestrator, SingleReadFinder, RepeatQC, ...)
// instead of being read from globals (design note, spec §9).
type Config struct {
	MinRepeatLength int
	MaxRepeatLength int
	MinSpacerLength int
	MaxSpacerLength int

	SearchWindowLength int
	ScanRange          int
	MinSeedCount       int
	MaxMismatches      int

	KmerSize               int
	SpacerLengthDiff       int
	LowComplexityThreshold float64
	SimilarityThreshold    float64
	AbundantKmerThreshold  float64

	OutputDir string
}

// DefaultConfig returns the configuration crass uses when the caller
// supplies none, matching the defaults stated in spec §4.3.
func DefaultConfig() Config {
	return Config{
		MinRepeatLength:        DefaultMinRepeatLength,
		MaxRepeatLength:        DefaultMaxRepeatLength,
		MinSpacerLength:        DefaultMinSpacerLength,
		MaxSpacerLength:        DefaultMaxSpacerLength,
		SearchWindowLength:     DefaultSearchWindowLength,
		ScanRange:              DefaultScanRange,
		MinSeedCount:           DefaultMinSeedCount,
		MaxMismatches:          DefaultMaxMismatches,
		KmerSize:               DefaultKmerSize,
		SpacerLengthDiff:       DefaultSpacerLengthDiff,
		LowComplexityThreshold: DefaultLowComplexityThreshold,
		SimilarityThreshold:    DefaultSimilarityThreshold,
		AbundantKmerThreshold:  DefaultAbundantKmerThreshold,
	}
}

// Validate checks the configuration-inconsistency taxonomy from spec §7:
// minRep > maxRep, w > minRep/2, minSpa > maxSpa are all fatal at
// startup, before any file is opened.
func (c Config) Validate() error {
	switch {
	case c.MinRepeatLength <= 0 || c.MaxRepeatLength <= 0:
		return fmt.Errorf("%w: repeat lengths must be positive", ErrInvalidConfig)
	case c.MinRepeatLength > c.MaxRepeatLength:
		return fmt.Errorf("%w: minRepeatLength (%d) > maxRepeatLength (%d)", ErrInvalidConfig, c.MinRepeatLength, c.MaxRepeatLength)
	case c.MaxRepeatLength > maxPatternLength:
		return fmt.Errorf("%w: maxRepeatLength (%d) exceeds hard ceiling %d", ErrInvalidConfig, c.MaxRepeatLength, maxPatternLength)
	case c.MinSpacerLength <= 0 || c.MaxSpacerLength <= 0:
		return fmt.Errorf("%w: spacer lengths must be positive", ErrInvalidConfig)
	case c.MinSpacerLength > c.MaxSpacerLength:
		return fmt.Errorf("%w: minSpacerLength (%d) > maxSpacerLength (%d)", ErrInvalidConfig, c.MinSpacerLength, c.MaxSpacerLength)
	case c.SearchWindowLength <= 0:
		return fmt.Errorf("%w: searchWindowLength must be positive", ErrInvalidConfig)
	case c.SearchWindowLength > c.MinRepeatLength/2:
		return fmt.Errorf("%w: searchWindowLength (%d) > minRepeatLength/2 (%d)", ErrInvalidConfig, c.SearchWindowLength, c.MinRepeatLength/2)
	case c.MinSeedCount < 2:
		return fmt.Errorf("%w: minSeedCount must be >= 2", ErrInvalidConfig)
	case c.ScanRange <= 0:
		return fmt.Errorf("%w: scanRange must be positive", ErrInvalidConfig)
	case c.MaxMismatches < 0:
		return fmt.Errorf("%w: maxMismatches must be >= 0", ErrInvalidConfig)
	case c.KmerSize <= 0 || c.KmerSize > c.MinRepeatLength:
		return fmt.Errorf("%w: kmerSize (%d) must be in (0, minRepeatLength]", ErrInvalidConfig, c.KmerSize)
	}
	return nil
}

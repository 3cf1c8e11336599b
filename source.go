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

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seqio/fastx"
)

// SequenceSource iterates reads out of one gzip-capable FASTA/FASTQ
// file (spec §2, §6): the explicit external collaborator for gzip
// decoding and record parsing. It wraps fastx.Reader, which in turn
// uses xopen under the hood for transparent gzip/stdin handling, the
// same pairing the teacher uses throughout unikmer/cmd (count.go,
// locate.go, map.go).
type SequenceSource struct {
	path   string
	reader *fastx.Reader
}

// Open opens path for streaming read iteration. A missing file,
// unreadable file, or corrupt gzip stream surfaces here as a wrapped
// error; per spec §7 that is fatal for this file only, never for the
// whole run.
func Open(path string) (*SequenceSource, error) {
	r, err := fastx.NewDefaultReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "crass: open %s", path)
	}
	return &SequenceSource{path: path, reader: r}, nil
}

// OpenMany opens every path, returning one SequenceSource per file that
// opened successfully, in the same relative order, and the errors for
// any that did not (spec §7, "an unreadable input file is fatal for
// that file but does not abort other files"). It is also the minimum
// hook a future paired-read mode would need to step through N files in
// lock-step (one Next() call per file per round, §9 "Supplemented
// Features" #3); Orchestrator.Run drives each returned source to
// completion independently, per spec §4.7 step 1.
func OpenMany(paths []string) (sources []*SequenceSource, errs map[string]error) {
	errs = make(map[string]error)
	for _, p := range paths {
		s, err := Open(p)
		if err != nil {
			errs[p] = err
			continue
		}
		sources = append(sources, s)
	}
	return sources, errs
}

// Path returns the file path this source was opened from.
func (s *SequenceSource) Path() string {
	return s.path
}

// Next returns the next read's name and bases. It returns io.EOF once
// the file is exhausted, and any other error is an I/O failure for
// this file (spec §7).
func (s *SequenceSource) Next() (name, bases string, err error) {
	rec, err := s.reader.Read()
	if err != nil {
		if err == io.EOF {
			return "", "", io.EOF
		}
		return "", "", errors.Wrapf(err, "crass: read %s", s.path)
	}
	return string(rec.ID), string(rec.Seq.Seq), nil
}

// Close is a no-op kept for symmetry with Open: fastx.Reader (like the
// teacher's every fastx.NewDefaultReader call site) closes its
// underlying xopen handle itself once Next reports io.EOF or a read
// error, satisfying "guaranteed release on all exit paths" (spec §5)
// without a second handle for the caller to manage.
func (s *SequenceSource) Close() {}

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
	"os"
	"path/filepath"
	"testing"
)

func writeFasta(t *testing.T, records map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reads.fasta")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp fasta: %v", err)
	}
	defer f.Close()
	for name, bases := range records {
		if _, err := f.WriteString(">" + name + "\n" + bases + "\n"); err != nil {
			t.Fatalf("write temp fasta: %v", err)
		}
	}
	return path
}

func TestSequenceSourceNext(t *testing.T) {
	path := writeFasta(t, map[string]string{"read1": "ACGTACGTACGT"})

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	name, bases, err := src.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if name != "read1" || bases != "ACGTACGTACGT" {
		t.Errorf("Next() = (%q, %q), want (read1, ACGTACGTACGT)", name, bases)
	}

	if _, _, err := src.Next(); err != io.EOF {
		t.Errorf("second Next() error = %v, want io.EOF", err)
	}
}

func TestOpenManySkipsMissingFiles(t *testing.T) {
	ok := writeFasta(t, map[string]string{"r": "ACGT"})
	missing := filepath.Join(t.TempDir(), "does-not-exist.fasta")

	sources, errs := OpenMany([]string{ok, missing})
	if len(sources) != 1 {
		t.Fatalf("expected 1 opened source, got %d", len(sources))
	}
	if _, ok := errs[missing]; !ok {
		t.Errorf("expected an error for %s", missing)
	}
}

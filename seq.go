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

import "strings"

// complement maps each recognized base to its Watson-Crick complement.
// Anything outside {A,C,G,T,N} is coerced to N by NormalizeBases before
// it ever reaches this table (spec §6).
var complement = [256]byte{}

func init() {
	for i := range complement {
		complement[i] = 'N'
	}
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['N'] = 'N'
}

// NormalizeBases upper-cases bases and coerces any character outside
// {A,C,G,T,N} to N, per spec §6 ("other characters are coerced to N").
func NormalizeBases(bases string) string {
	b := []byte(strings.ToUpper(bases))
	for i, c := range b {
		switch c {
		case 'A', 'C', 'G', 'T', 'N':
		default:
			b[i] = 'N'
		}
	}
	return string(b)
}

// revComp returns the reverse complement of s. s is assumed already
// normalized to {A,C,G,T,N}.
func revComp(s string) string {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = complement[s[i]]
	}
	return string(out)
}

// baseFraction returns, for each of A/C/G/T/N, the fraction of bytes in
// s equal to that base. Used by the low-complexity QC gate (§4.4).
func baseFraction(s string) map[byte]float64 {
	if len(s) == 0 {
		return nil
	}
	counts := map[byte]int{}
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}
	out := make(map[byte]float64, len(counts))
	for b, c := range counts {
		out[b] = float64(c) / float64(len(s))
	}
	return out
}

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

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shenwei356/go-logging"
	"github.com/spf13/cobra"

	"github.com/skennerton/crass"
)

var findCmd = &cobra.Command{
	Use:   "find [flags] file.fasta[.gz] [file2.fasta[.gz] ...]",
	Short: "find CRISPR repeat/spacer arrays in raw reads",
	Long: `find CRISPR repeat/spacer arrays in raw reads

Scans every read in the given FASTA/FASTQ files for a repeated
short sequence separated by roughly-equal-length spacers, groups
reads that share a repeat, and writes one JSON graph description
per group to --out-dir (or to stdout, one JSON object per line, if
--out-dir is not given).
`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)

		files := getFileListFromArgsAndFile(cmd, args)
		if len(files) == 0 {
			checkError(fmt.Errorf("no input files given, see crass find -h for help"))
		}
		checkFilesExist(files...)

		cfg := configFromFlags(cmd)

		var logger *logging.Logger
		if opt.Verbose {
			logger = log
		}

		orch, err := crass.NewOrchestrator(cfg, logger)
		checkError(err)

		res, code := orch.Run(files)

		if opt.Verbose {
			log.Infof("%d malformed read(s) skipped", res.MalformedReads)
			for path, ferr := range res.FileErrors {
				log.Warningf("%s: %v", path, ferr)
			}
			log.Infof("%d CRISPR array group(s) found", len(res.Groups))
		}

		if err := writeGroups(res.Groups, cfg.OutputDir); err != nil {
			checkError(err)
		}

		os.Exit(int(code))
	},
}

func init() {
	RootCmd.AddCommand(findCmd)

	findCmd.Flags().StringP("out-dir", "o", "", `directory to write one JSON graph description per group ("" for stdout)`)

	findCmd.Flags().IntP("min-repeat-length", "", crass.DefaultMinRepeatLength, "minimum repeat length")
	findCmd.Flags().IntP("max-repeat-length", "", crass.DefaultMaxRepeatLength, "maximum repeat length")
	findCmd.Flags().IntP("min-spacer-length", "", crass.DefaultMinSpacerLength, "minimum spacer length")
	findCmd.Flags().IntP("max-spacer-length", "", crass.DefaultMaxSpacerLength, "maximum spacer length")
	findCmd.Flags().IntP("search-window-length", "w", crass.DefaultSearchWindowLength, "seed window length")
	findCmd.Flags().IntP("scan-range", "", crass.DefaultScanRange, "lookahead distance when chaining seeds")
	findCmd.Flags().IntP("min-seed-count", "", crass.DefaultMinSeedCount, "minimum number of chained seeds to accept a read")
	findCmd.Flags().IntP("max-mismatches", "", crass.DefaultMaxMismatches, "maximum mismatches allowed per seed")
	findCmd.Flags().IntP("kmer-size", "k", crass.DefaultKmerSize, "k-mer size for the abundant-k-mer QC gate")
	findCmd.Flags().IntP("spacer-length-diff", "", crass.DefaultSpacerLengthDiff, "maximum allowed spread between spacer lengths in one read")
	findCmd.Flags().Float64P("low-complexity-threshold", "", crass.DefaultLowComplexityThreshold, "reject repeats where one base exceeds this fraction")
	findCmd.Flags().Float64P("similarity-threshold", "", crass.DefaultSimilarityThreshold, "repeat/spacer similarity and repeat-variant collapsing threshold")
	findCmd.Flags().Float64P("abundant-kmer-threshold", "", crass.DefaultAbundantKmerThreshold, "reject repeats where one k-mer exceeds this fraction of windows")
}

func configFromFlags(cmd *cobra.Command) crass.Config {
	cfg := crass.Config{
		MinRepeatLength:        getFlagPositiveInt(cmd, "min-repeat-length"),
		MaxRepeatLength:        getFlagPositiveInt(cmd, "max-repeat-length"),
		MinSpacerLength:        getFlagPositiveInt(cmd, "min-spacer-length"),
		MaxSpacerLength:        getFlagPositiveInt(cmd, "max-spacer-length"),
		SearchWindowLength:     getFlagPositiveInt(cmd, "search-window-length"),
		ScanRange:              getFlagPositiveInt(cmd, "scan-range"),
		MinSeedCount:           getFlagPositiveInt(cmd, "min-seed-count"),
		MaxMismatches:          getFlagInt(cmd, "max-mismatches"),
		KmerSize:               getFlagPositiveInt(cmd, "kmer-size"),
		SpacerLengthDiff:       getFlagInt(cmd, "spacer-length-diff"),
		LowComplexityThreshold: getFlagFloat64(cmd, "low-complexity-threshold"),
		SimilarityThreshold:    getFlagFloat64(cmd, "similarity-threshold"),
		AbundantKmerThreshold:  getFlagFloat64(cmd, "abundant-kmer-threshold"),
		OutputDir:              getFlagString(cmd, "out-dir"),
	}
	if err := cfg.Validate(); err != nil {
		checkError(err)
	}
	return cfg
}

// writeGroups serializes each group's graph description, one file per
// group under dir (named by the group's position), or one JSON object
// per line to stdout if dir is empty.
func writeGroups(groups []*crass.Group, dir string) error {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	for i, g := range groups {
		desc := crass.Describe(g.Manager)

		if dir == "" {
			if err := enc.Encode(desc); err != nil {
				return err
			}
			continue
		}

		b, err := json.MarshalIndent(desc, "", "  ")
		if err != nil {
			return err
		}
		path := filepath.Join(dir, fmt.Sprintf("group_%04d.json", i+1))
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return err
		}
	}
	return nil
}

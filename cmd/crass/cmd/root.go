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
	"fmt"
	"os"

	"github.com/shenwei356/go-logging"
	"github.com/spf13/cobra"
)

// VERSION is the crass CLI version string.
const VERSION = "0.1.0"

var log = logging.MustGetLogger("crass")

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "crass",
	Short: "CRISPR repeat/spacer array detector for raw, unassembled reads",
	Long: fmt.Sprintf(`crass - CRISPR repeat/spacer array detector

A command-line tool for finding CRISPR repeat/spacer arrays directly in
raw sequencing reads, without needing genome assembly first: it finds
candidate repeats with a seed-and-extend search, groups reads by their
canonical repeat, and assembles each group into a repeat/spacer graph.

Version: %s

`, VERSION),
}

// Execute adds all child commands to RootCmd and runs the selected one.
// Called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "", false, "print progress and warnings to stderr")
	RootCmd.PersistentFlags().StringP("infile-list", "i", "", "file of input files list (one file per line); if given, files from CLI arguments are ignored")
}

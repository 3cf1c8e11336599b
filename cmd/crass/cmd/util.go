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

	"github.com/shenwei356/breader"
	"github.com/shenwei356/util/pathutil"
	"github.com/spf13/cobra"
)

// Options contains the global flags shared by every subcommand.
type Options struct {
	Verbose bool
}

func getOptions(cmd *cobra.Command) *Options {
	return &Options{
		Verbose: getFlagBool(cmd, "verbose"),
	}
}

// checkError prints err and exits with status 1 if err is non-nil. Every
// cobra Run func in this tree funnels its errors through here instead of
// returning them, matching the teacher's convention of a fatal-on-first-
// error CLI rather than propagating *cobra.Command errors.
func checkError(err error) {
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func getFlagString(cmd *cobra.Command, flag string) string {
	v, err := cmd.Flags().GetString(flag)
	checkError(err)
	return v
}

func getFlagBool(cmd *cobra.Command, flag string) bool {
	v, err := cmd.Flags().GetBool(flag)
	checkError(err)
	return v
}

func getFlagInt(cmd *cobra.Command, flag string) int {
	v, err := cmd.Flags().GetInt(flag)
	checkError(err)
	return v
}

func getFlagPositiveInt(cmd *cobra.Command, flag string) int {
	v := getFlagInt(cmd, flag)
	if v <= 0 {
		checkError(fmt.Errorf("value of --%s should be positive", flag))
	}
	return v
}

func getFlagFloat64(cmd *cobra.Command, flag string) float64 {
	v, err := cmd.Flags().GetFloat64(flag)
	checkError(err)
	return v
}

// getFileListFromArgsAndFile returns args verbatim unless --infile-list
// names a file, in which case the file list is read from it (one path
// per line) instead, following the RootCmd convention that infile-list
// overrides positional args.
func getFileListFromArgsAndFile(cmd *cobra.Command, args []string) []string {
	listFile := getFlagString(cmd, "infile-list")
	if listFile == "" {
		return args
	}

	reader, err := breader.NewDefaultBufferedReader(listFile)
	checkError(err)

	var files []string
	for chunk := range reader.Ch {
		checkError(chunk.Err)
		for _, data := range chunk.Data {
			line := data.(string)
			if line == "" {
				continue
			}
			files = append(files, line)
		}
	}
	return files
}

func checkFilesExist(files ...string) {
	for _, file := range files {
		ok, err := pathutil.Exists(file)
		checkError(err)
		if !ok {
			checkError(fmt.Errorf("file does not exist: %s", file))
		}
	}
}

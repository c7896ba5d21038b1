// Copyright 2025 The bio2parquet Authors
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

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mathysgrapotte/bio2parquet/internal/converr"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Process exit codes. Domain failures (anything in the converr taxonomy) and
// usage mistakes are distinguishable to scripts.
const (
	exitDomainError = 1
	exitUsageError  = 2
)

// usageError marks failures the user caused at the command line: bad flags,
// wrong extension, missing input path.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

var debugLogging bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "bio2parquet",
	Short:   "Convert bioinformatics files to Parquet",
	Long:    `Convert FASTA and CSV files to Parquet, optionally pushing the result to a remote dataset store.`,
	Version: Version,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if debugLogging {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Enable debug logging")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	rootCmd.AddCommand(fastaCmd)
	rootCmd.AddCommand(csvCmd)
	rootCmd.AddCommand(catCmd)
}

// Execute runs the root command and translates failures into exit codes:
// 0 success, 1 domain error, 2 usage error.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, converr.FormatChain(err))
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *usageError
	if errors.As(err, &ue) {
		return exitUsageError
	}
	return exitDomainError
}

// singlePathArg validates that exactly one positional argument was given,
// reporting violations as usage errors.
func singlePathArg(name string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return usageErrorf("expected exactly one %s argument, got %d", name, len(args))
		}
		return nil
	}
}

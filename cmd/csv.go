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
	"github.com/spf13/cobra"

	"github.com/mathysgrapotte/bio2parquet/internal/filereader"
)

var csvExtensions = []string{".csv", ".csv.gz"}

var csvOpts convertOptions

var csvCmd = &cobra.Command{
	Use:   "csv CSV_FILE",
	Short: "Convert a CSV file to Parquet",
	Long:  `Convert a CSV file with header and sequence columns (optionally gzipped) to a Parquet file. All values are kept as text.`,
	Args:  singlePathArg("CSV_FILE"),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]
		if err := validateInput(inputPath, csvExtensions, "CSV"); err != nil {
			return err
		}
		return runConvert(cmd, inputPath, csvOpts, csvExtensions, func(path string) (filereader.Reader, error) {
			r, err := filereader.NewCSVReader(path)
			if err != nil {
				return nil, err
			}
			return r, nil
		})
	},
}

func init() {
	addConvertFlags(csvCmd, &csvOpts)
}

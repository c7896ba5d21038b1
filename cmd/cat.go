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
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mathysgrapotte/bio2parquet/internal/dataset"
)

var catCmd = &cobra.Command{
	Use:   "cat PARQUET_FILE",
	Short: "Print the rows of a Parquet file",
	Args:  singlePathArg("PARQUET_FILE"),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.ReadParquet(args[0])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		columns := ds.Columns()
		if _, err := w.Write([]byte(strings.Join(columns, "\t") + "\n")); err != nil {
			return err
		}
		for _, row := range ds.Rows() {
			values := make([]string, len(columns))
			for i, name := range columns {
				values[i] = row[name]
			}
			if _, err := w.Write([]byte(strings.Join(values, "\t") + "\n")); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}

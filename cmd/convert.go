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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathysgrapotte/bio2parquet/config"
	"github.com/mathysgrapotte/bio2parquet/internal/converr"
	"github.com/mathysgrapotte/bio2parquet/internal/dataset"
	"github.com/mathysgrapotte/bio2parquet/internal/filereader"
	"github.com/mathysgrapotte/bio2parquet/internal/publish"
)

// convertOptions is the flag surface shared by the fasta and csv commands.
type convertOptions struct {
	outputFile string
	hfRepoID   string
	hfToken    string
	s3URI      string
}

func addConvertFlags(cmd *cobra.Command, opts *convertOptions) {
	cmd.Flags().StringVarP(&opts.outputFile, "output-file", "o", "",
		"Path to the output Parquet file. Defaults to the input's base name with a .parquet extension in the current directory.")
	cmd.Flags().StringVar(&opts.hfRepoID, "hf-repo-id", "",
		"Hugging Face Hub dataset repository to push to (e.g. 'username/my_dataset'). Requires a token.")
	cmd.Flags().StringVar(&opts.hfToken, "hf-token", "",
		"Hugging Face Hub token for uploading. Can also be set via the HF_TOKEN environment variable.")
	cmd.Flags().StringVar(&opts.s3URI, "s3-uri", "",
		"S3 destination (s3://bucket/key) to upload the Parquet file to.")
}

// validateInput enforces the CLI-boundary preconditions: the path must exist,
// be a regular file, and carry one of the expected extensions. Violations are
// usage errors; the readers re-check existence so library callers still get
// the full error taxonomy.
func validateInput(path string, extensions []string, format string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return usageErrorf("input file does not exist: %s", path)
		}
		return err
	}
	if !info.Mode().IsRegular() {
		return usageErrorf("input path is not a file: %s", path)
	}
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return nil
		}
	}
	return usageErrorf("input file must be a %s file (one of %s): %s",
		format, strings.Join(extensions, ", "), path)
}

// defaultOutputPath strips the recognized format extension (including .gz
// variants) from the input's base name and lands the .parquet file in the
// current working directory.
func defaultOutputPath(inputPath string, extensions []string) string {
	base := filepath.Base(inputPath)
	for _, ext := range extensions {
		if strings.HasSuffix(base, ext) {
			base = strings.TrimSuffix(base, ext)
			break
		}
	}
	return base + ".parquet"
}

// runConvert is the shared pipeline: read, materialize, write parquet, then
// publish if asked to. Publishing only happens after the local file exists.
func runConvert(cmd *cobra.Command, inputPath string, opts convertOptions, extensions []string, open func(string) (filereader.Reader, error)) error {
	slog.Info("Processing input file", slog.String("path", inputPath))

	reader, err := open(inputPath)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	ds, err := dataset.FromReader(reader)
	if err != nil {
		return err
	}
	if ds.Len() == 0 {
		return converr.EmptyResult(inputPath)
	}

	outputPath := opts.outputFile
	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath, extensions)
	}

	if err := ds.WriteParquet(outputPath); err != nil {
		return err
	}
	slog.Info("Wrote parquet file",
		slog.String("path", outputPath),
		slog.Int("rows", ds.Len()))
	fmt.Fprintf(cmd.OutOrStdout(), "Successfully converted to Parquet: %s\n", outputPath)

	return publishOutput(cmd, outputPath, opts)
}

func publishOutput(cmd *cobra.Command, outputPath string, opts convertOptions) error {
	ctx := cmd.Context()

	if opts.hfRepoID != "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		token := opts.hfToken
		if token == "" {
			token = cfg.Hub.Token
		}
		if token == "" {
			return converr.Publish("--hf-repo-id was provided, but no token is available: pass --hf-token or set HF_TOKEN", nil)
		}
		hub := publish.NewHubPublisher(cfg.Hub.Endpoint, opts.hfRepoID, token)
		if err := hub.Publish(ctx, outputPath); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Dataset pushed successfully.")
	}

	if opts.s3URI != "" {
		uploader, err := publish.NewS3Publisher(ctx, opts.s3URI)
		if err != nil {
			return err
		}
		if err := uploader.Publish(ctx, outputPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded to %s\n", opts.s3URI)
	}

	return nil
}

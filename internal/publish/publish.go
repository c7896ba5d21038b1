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

// Package publish uploads a written parquet file to a remote dataset store:
// the Hugging Face Hub or an S3 bucket.
package publish

import "context"

// Publisher uploads a local file to a remote destination. Implementations
// report failures as converr.KindPublish.
type Publisher interface {
	Publish(ctx context.Context, localPath string) error
}

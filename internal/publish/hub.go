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

package publish

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mathysgrapotte/bio2parquet/internal/converr"
)

// DefaultHubEndpoint is the public Hugging Face Hub.
const DefaultHubEndpoint = "https://huggingface.co"

// remotePath is where the parquet file lands inside the dataset repo,
// following the layout the datasets loader expects.
const remotePath = "data/train.parquet"

// HubPublisher pushes a parquet file to a Hugging Face dataset repository,
// creating the repository if it does not exist yet.
type HubPublisher struct {
	endpoint string
	repoID   string
	token    string
	client   *http.Client
}

var _ Publisher = (*HubPublisher)(nil)

// NewHubPublisher builds a publisher for repoID (e.g. "user/my-dataset").
// An empty endpoint selects the public Hub. The token is required; callers
// should verify it is present before reaching for the network, but Publish
// re-checks anyway.
func NewHubPublisher(endpoint, repoID, token string) *HubPublisher {
	if endpoint == "" {
		endpoint = DefaultHubEndpoint
	}
	return &HubPublisher{
		endpoint: strings.TrimRight(endpoint, "/"),
		repoID:   repoID,
		token:    token,
		client:   &http.Client{Timeout: 120 * time.Second},
	}
}

// Publish uploads localPath as data/train.parquet in the dataset repo.
func (p *HubPublisher) Publish(ctx context.Context, localPath string) error {
	if p.token == "" {
		return converr.Publish("credential missing: provide --hf-token or set HF_TOKEN", nil)
	}

	if err := p.ensureRepo(ctx); err != nil {
		return err
	}

	content, err := os.ReadFile(localPath)
	if err != nil {
		return converr.Publish(fmt.Sprintf("read %s", localPath), err)
	}

	slog.Info("Pushing dataset to Hugging Face Hub",
		slog.String("repo", p.repoID),
		slog.Int("bytes", len(content)))

	return p.commitFile(ctx, content)
}

// ensureRepo creates the dataset repository; an already-existing repo (409)
// is not an error.
func (p *HubPublisher) ensureRepo(ctx context.Context) error {
	body, err := json.Marshal(map[string]string{
		"type": "dataset",
		"name": p.repoID,
	})
	if err != nil {
		return converr.Publish("encode repo creation request", err)
	}

	resp, err := p.post(ctx, p.endpoint+"/api/repos/create", "application/json", bytes.NewReader(body))
	if err != nil {
		return converr.Publish(fmt.Sprintf("create repo %q", p.repoID), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusConflict {
		return converr.Publish(fmt.Sprintf("create repo %q: %s", p.repoID, responseDetail(resp)), nil)
	}
	return nil
}

// commitFile uses the Hub commit API: an NDJSON payload with a commit header
// line followed by one base64-encoded file line.
func (p *HubPublisher) commitFile(ctx context.Context, content []byte) error {
	var payload bytes.Buffer
	enc := json.NewEncoder(&payload)

	if err := enc.Encode(map[string]any{
		"key":   "header",
		"value": map[string]string{"summary": "Upload " + remotePath + " with bio2parquet"},
	}); err != nil {
		return converr.Publish("encode commit header", err)
	}
	if err := enc.Encode(map[string]any{
		"key": "file",
		"value": map[string]string{
			"path":     remotePath,
			"content":  base64.StdEncoding.EncodeToString(content),
			"encoding": "base64",
		},
	}); err != nil {
		return converr.Publish("encode commit file", err)
	}

	url := fmt.Sprintf("%s/api/datasets/%s/commit/main", p.endpoint, p.repoID)
	resp, err := p.post(ctx, url, "application/x-ndjson", &payload)
	if err != nil {
		return converr.Publish(fmt.Sprintf("commit to %q", p.repoID), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return converr.Publish(fmt.Sprintf("commit to %q: %s", p.repoID, responseDetail(resp)), nil)
	}
	return nil
}

func (p *HubPublisher) post(ctx context.Context, url, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Content-Type", contentType)
	return p.client.Do(req)
}

func responseDetail(resp *http.Response) string {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	text := strings.TrimSpace(string(detail))
	if text == "" {
		return resp.Status
	}
	return resp.Status + ": " + text
}

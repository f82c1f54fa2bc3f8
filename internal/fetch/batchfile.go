// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-radar/pkg/types"
)

// BatchFile is the on-disk representation of a fetched paper batch. The
// fetch and score stages communicate through these files so a batch can be
// re-scored under different profiles without re-querying the API.
type BatchFile struct {
	Query     BatchQuery    `yaml:"query"`
	FetchedAt time.Time     `yaml:"fetched_at"`
	Papers    []types.Paper `yaml:"papers"`
}

// BatchQuery records the parameters that produced the batch.
type BatchQuery struct {
	Keywords   []string `yaml:"keywords,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
	MaxResults int      `yaml:"max_results"`
}

// WriteBatchFile saves a fetched batch to a YAML file.
func WriteBatchFile(path string, query BatchQuery, papers []types.Paper) error {
	bf := BatchFile{
		Query:     query,
		FetchedAt: time.Now().UTC(),
		Papers:    papers,
	}
	data, err := yaml.Marshal(&bf)
	if err != nil {
		return fmt.Errorf("marshaling batch file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadBatchFile loads a previously saved batch file from disk.
func ReadBatchFile(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	var bf BatchFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parsing batch file %s: %w", path, err)
	}
	return &bf, nil
}

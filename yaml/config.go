// Package yaml loads batch configuration files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/mediacsv"
	"gopkg.in/yaml.v3"
)

// LoadBatchConfig reads and validates the batch configuration at path.
func LoadBatchConfig(path string) (*mediacsv.BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mediacsv.Errorf(mediacsv.ENOTFOUND, "config file %s does not exist", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseBatchConfig(data)
}

// ParseBatchConfig decodes a batch configuration document. Unknown keys
// are rejected so typos do not silently fall back to defaults.
func ParseBatchConfig(data []byte) (*mediacsv.BatchConfig, error) {
	var cfg mediacsv.BatchConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, mediacsv.Errorf(mediacsv.EINVALID, "parse config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Package config loads the YAML job file used for repeatable non-interactive
// runs. A job mirrors the generate command's flags; explicit flags win over
// job values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-kwgen/pkg/keyword"
)

// Job describes one batch generation run.
type Job struct {
	Core       string   `yaml:"core"`
	CoreColumn string   `yaml:"core_column"`
	Secondary  []string `yaml:"secondary"`
	Template   string   `yaml:"template"`
	Output     string   `yaml:"output"`
	MinFields  *int     `yaml:"min_fields"`
	MatchType  string   `yaml:"match_type"`
	GroupBy    string   `yaml:"group_by"`
	SkipHeader bool     `yaml:"skip_header"`
	KeepDupes  bool     `yaml:"keep_duplicates"`
}

// Load reads a job file. A job may be partial: required fields can arrive as
// flag overrides, so callers run Validate only after merging those in.
func Load(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var job Job
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&job); err != nil {
		return Job{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return job, nil
}

// Validate checks field-level constraints that do not need file access.
func (j Job) Validate() error {
	if j.Core == "" {
		return errors.New("core file is required")
	}
	if len(j.Secondary) == 0 {
		return errors.New("at least one secondary file is required")
	}
	if j.Output == "" {
		return errors.New("output path is required")
	}
	if _, err := keyword.ParseMatchType(j.MatchType); err != nil {
		return err
	}
	if j.MinFields != nil && *j.MinFields < 0 {
		return fmt.Errorf("min_fields must be non-negative, got %d", *j.MinFields)
	}
	if j.GroupBy != "" && j.KeepDupes {
		return errors.New("group_by requires de-duplication; drop keep_duplicates")
	}
	return nil
}

// Match returns the parsed match type. Call after Validate.
func (j Job) Match() keyword.MatchType {
	m, _ := keyword.ParseMatchType(j.MatchType)
	return m
}

// Group returns the grouping key. The spellings "none" and "" disable
// grouping; "core" groups by core phrase; anything else names a field.
func (j Job) Group() keyword.GroupKey {
	if j.GroupBy == "" || j.GroupBy == "none" {
		return keyword.GroupNone
	}
	return keyword.GroupKey(j.GroupBy)
}

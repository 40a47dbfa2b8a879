// Package chart reads declarative reporting charts and replays them into an
// orgtree.Tree.
package chart

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/phroun/orgtree"
)

// ErrInvalidChart indicates a chart document that is structurally incomplete.
var ErrInvalidChart = errors.New("invalid chart")

// Chart describes a tree as a root and the inserts that grow it, in order.
type Chart struct {
	Root    string   `yaml:"root"`
	Reports []Report `yaml:"reports"`
}

// Report is a single insert: Name becomes Parent's report on Side.
type Report struct {
	Parent string `yaml:"parent"`
	Name   string `yaml:"name"`
	Side   string `yaml:"side"`
}

// Demo returns the five-member reference chart.
func Demo() *Chart {
	return &Chart{
		Root: "Dr. Croft",
		Reports: []Report{
			{Parent: "Dr. Croft", Name: "Dr. Goldsmith", Side: "right"},
			{Parent: "Dr. Croft", Name: "Dr. Phan", Side: "left"},
			{Parent: "Dr. Phan", Name: "Dr. Carson", Side: "right"},
			{Parent: "Dr. Phan", Name: "Dr. Morgan", Side: "left"},
		},
	}
}

// Load reads and parses a chart file.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML chart document and validates its shape.
func Parse(data []byte) (*Chart, error) {
	var c Chart
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse chart: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the chart names a root and that every report names
// both a parent and a child. Side tokens and parent existence are left to
// the tree, which reports them during Build.
func (c *Chart) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("%w: missing root", ErrInvalidChart)
	}
	for i, r := range c.Reports {
		if r.Parent == "" {
			return fmt.Errorf("%w: report %d: missing parent", ErrInvalidChart, i)
		}
		if r.Name == "" {
			return fmt.Errorf("%w: report %d: missing name", ErrInvalidChart, i)
		}
	}
	return nil
}

// Build replays the chart into a new tree. Reports are applied in order and
// the first failing insert aborts the build; its error wraps the orgtree
// sentinel so callers can classify it with errors.Is.
func (c *Chart) Build(logger *slog.Logger) (*orgtree.Tree, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	tree := orgtree.New()
	if err := tree.SetRoot(c.Root); err != nil {
		return nil, err
	}
	logger.Debug("chart root set", "root", c.Root)

	for i, r := range c.Reports {
		if err := tree.Insert(r.Parent, r.Name, orgtree.Side(r.Side)); err != nil {
			return nil, fmt.Errorf("report %d (%s): %w", i, r.Name, err)
		}
		logger.Debug("report attached", "parent", r.Parent, "name", r.Name, "side", r.Side)
	}
	logger.Info("chart built", "root", c.Root, "members", tree.Len())
	return tree, nil
}

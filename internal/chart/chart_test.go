package chart

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phroun/orgtree"
)

var quiet = slog.New(slog.DiscardHandler)

func TestLoadDemo(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	c, err := Load(filepath.Join("testdata", "demo.yaml"))
	require.NoError(err)
	assert.Equal(Demo(), c)

	tree, err := c.Build(quiet)
	require.NoError(err)
	assert.Equal(5, tree.Len())
	assert.Equal([]string{"Dr. Croft", "Dr. Phan", "Dr. Morgan", "Dr. Carson", "Dr. Goldsmith"}, tree.Preorder())
	assert.Equal([]string{"Dr. Morgan", "Dr. Phan", "Dr. Carson", "Dr. Croft", "Dr. Goldsmith"}, tree.Inorder())
	assert.Equal([]string{"Dr. Morgan", "Dr. Carson", "Dr. Phan", "Dr. Goldsmith", "Dr. Croft"}, tree.Postorder())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read chart")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"root only", "root: A\n", ""},
		{"flow reports", "root: A\nreports: [{parent: A, name: B, side: left}]\n", ""},
		{"missing root", "reports: []\n", "missing root"},
		{"missing parent", "root: A\nreports: [{name: B, side: left}]\n", "report 0: missing parent"},
		{"missing name", "root: A\nreports: [{parent: A, side: left}]\n", "report 0: missing name"},
		{"unknown field", "root: A\nboss: B\n", "failed to parse chart"},
		{"not yaml", "root: [\n", "failed to parse chart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.doc))
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "A", c.Root)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParseInvalidChartSentinel(t *testing.T) {
	_, err := Parse([]byte("reports: []\n"))
	assert.ErrorIs(t, err, ErrInvalidChart)
}

func TestBuildStopsAtFirstFailure(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "occupied.yaml"))
	require.NoError(t, err)

	tree, err := c.Build(quiet)
	assert.Nil(t, tree)
	assert.ErrorIs(t, err, orgtree.ErrSlotOccupied)
	assert.ErrorContains(t, err, "report 1 (C)")
}

func TestBuildClassifiesErrors(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   error
	}{
		{"bad side", Report{Parent: "A", Name: "B", Side: "up"}, orgtree.ErrInvalidSide},
		{"missing parent", Report{Parent: "Z", Name: "Y", Side: "right"}, orgtree.ErrParentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Chart{Root: "A", Reports: []Report{tt.report}}
			_, err := c.Build(quiet)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorContains(t, err, "report 0")
		})
	}
}

func TestBuildNilLogger(t *testing.T) {
	tree, err := (&Chart{Root: "solo"}).Build(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, tree.Postorder())
}

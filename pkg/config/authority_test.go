package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAuthorityTable_Embedded(t *testing.T) {
	table, err := LoadAuthorityTable("")
	require.NoError(t, err)

	assert.InDelta(t, 0.5, table.DefaultScore, 0.001)
	assert.InDelta(t, 0.9, table.Score("arxiv.org"), 0.001)
	assert.InDelta(t, 0.95, table.Score("www.nature.com"), 0.001)
	assert.InDelta(t, 0.5, table.Score("blog.example.dev"), 0.001)
}

func TestLoadAuthorityTable_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authority.yaml")
	content := "default_score: 0.4\nhosts:\n  journals.example.org: 0.9\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := LoadAuthorityTable(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.9, table.Score("journals.example.org"), 0.001)
	assert.InDelta(t, 0.4, table.Score("anything-else.example"), 0.001)
}

func TestLoadAuthorityTable_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadAuthorityTable(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read authority table")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("hosts: [unclosed"), 0o644))

		_, err := LoadAuthorityTable(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse authority table")
	})
}

func TestAuthorityTable_ScoreClamping(t *testing.T) {
	table := &AuthorityTable{
		DefaultScore: 0.5,
		Hosts:        map[string]float64{"low.example": -0.5, "high.example": 1.5},
	}

	assert.Equal(t, 0.0, table.Score("low.example"))
	assert.Equal(t, 1.0, table.Score("high.example"))
	assert.Equal(t, 0.5, table.Score("absent.example"))
}

func TestLoadAuthorityTable_ZeroDefaultNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authority.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hosts:\n  a.example: 0.8\n"), 0o644))

	table, err := LoadAuthorityTable(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, table.DefaultScore, 0.001)
}

package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed authority.yaml
var defaultAuthorityYAML []byte

// AuthorityTable maps source hosts to authority scores in [0,1] used by
// evidence quality scoring. Hosts not present score DefaultScore.
type AuthorityTable struct {
	DefaultScore float64            `yaml:"default_score"`
	Hosts        map[string]float64 `yaml:"hosts"`
}

// Score returns the authority score for a host, falling back to the table
// default. Scores are clamped to [0,1].
func (t *AuthorityTable) Score(host string) float64 {
	score, ok := t.Hosts[host]
	if !ok {
		score = t.DefaultScore
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// LoadAuthorityTable parses the embedded authority table, or the file at
// path when non-empty.
func LoadAuthorityTable(path string) (*AuthorityTable, error) {
	data := defaultAuthorityYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read authority table %s: %w", path, err)
		}
		data = b
	}

	var table AuthorityTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse authority table: %w", err)
	}
	if table.DefaultScore == 0 {
		table.DefaultScore = 0.5
	}
	if table.Hosts == nil {
		table.Hosts = map[string]float64{}
	}
	return &table, nil
}

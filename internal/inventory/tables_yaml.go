package inventory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tablesFile is the on-disk YAML shape for custom classification tables.
// Sections left empty fall back to the built-in defaults, so a file can
// override just one dimension.
type tablesFile struct {
	Languages       map[string]string `yaml:"languages"`
	Categories      []categoryRule    `yaml:"categories"`
	BinaryExts      []string          `yaml:"binary_extensions"`
	DataExts        []string          `yaml:"data_extensions"`
	DependencyFiles map[string]string `yaml:"dependency_files"`
	SkipDirs        []string          `yaml:"skip_dirs"`
}

type categoryRule struct {
	Category   string   `yaml:"category"`
	Extensions []string `yaml:"extensions"`
}

// LoadTables reads custom classification tables from a YAML file and
// returns a resolved Tables value. Missing sections keep their defaults.
func LoadTables(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tables file: %w", err)
	}

	var tf tablesFile
	if err := yaml.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("parsing tables file %s: %w", path, err)
	}

	t := DefaultTables()
	if len(tf.Languages) > 0 {
		t.LanguageByExt = tf.Languages
	}
	if len(tf.Categories) > 0 {
		rules := make([]CategoryRule, 0, len(tf.Categories))
		for _, r := range tf.Categories {
			rules = append(rules, CategoryRule{Category: r.Category, Extensions: r.Extensions})
		}
		t.CategoryOverrides = rules
	}
	if len(tf.BinaryExts) > 0 {
		t.BinaryExts = extSet(tf.BinaryExts...)
	}
	if len(tf.DataExts) > 0 {
		t.DataExts = extSet(tf.DataExts...)
	}
	if len(tf.DependencyFiles) > 0 {
		t.DependencyKindByName = tf.DependencyFiles
	}
	if len(tf.SkipDirs) > 0 {
		t.SkipDirs = extSet(tf.SkipDirs...)
	}
	t.resolve()
	return t, nil
}

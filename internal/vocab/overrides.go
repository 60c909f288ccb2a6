package vocab

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Overrides extends the built-in vocabularies from a YAML file. Menus from
// regional cuisines routinely use section names and sides the defaults
// don't carry.
type Overrides struct {
	SectionHeadings []string          `yaml:"section_headings"`
	ComboFoods      []string          `yaml:"combo_foods"`
	Toppings        []string          `yaml:"toppings"`
	Abbreviations   []string          `yaml:"abbreviations"`
	Typos           map[string]string `yaml:"typos"`
}

// LoadOverrides reads a YAML override file and merges it into the
// vocabulary tables. Missing file is not an error; malformed YAML is.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading vocab overrides: %w", err)
	}

	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("parsing vocab overrides: %w", err)
	}
	Merge(&ov)
	return nil
}

// Merge applies overrides to the in-memory tables.
func Merge(ov *Overrides) {
	for _, h := range ov.SectionHeadings {
		sectionPhrases[strings.ToLower(strings.TrimSpace(h))] = true
	}
	for _, c := range ov.ComboFoods {
		comboFoods[strings.ToLower(strings.TrimSpace(c))] = true
	}
	for _, t := range ov.Toppings {
		toppings[strings.ToLower(strings.TrimSpace(t))] = true
	}
	for _, a := range ov.Abbreviations {
		nameAbbreviations[strings.ToLower(strings.TrimSpace(a))] = true
	}
	for from, to := range ov.Typos {
		typoMap[strings.ToLower(strings.TrimSpace(from))] = to
	}
}

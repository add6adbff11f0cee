package service

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

// CategoryRule maps description keywords to a category name. An empty Kind
// applies the rule to both incomes and expenses.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind"`
	Keywords []string `yaml:"keywords"`
}

// CategoryRulesConfig is the layout of the category rules YAML file:
//
//	categories:
//	  - name: Software
//	    kind: expense
//	    keywords: [github, aws, atlassian]
type CategoryRulesConfig struct {
	Categories []CategoryRule `yaml:"categories"`
}

// Categorizer suggests a category for imported rows by keyword match.
// A nil Categorizer suggests nothing.
type Categorizer struct {
	rules []CategoryRule
}

// NewCategorizer validates the rules and lower-cases their keywords.
func NewCategorizer(rules []CategoryRule) (*Categorizer, error) {
	normalized := make([]CategoryRule, 0, len(rules))
	for i, rule := range rules {
		rule.Name = strings.TrimSpace(rule.Name)
		if rule.Name == "" {
			return nil, fmt.Errorf("category rule %d: name is required", i+1)
		}
		if rule.Kind != "" {
			kind, err := ledgerDomain.ParseKind(rule.Kind)
			if err != nil {
				return nil, fmt.Errorf("category rule %q: %w", rule.Name, err)
			}
			rule.Kind = string(kind)
		}

		keywords := make([]string, 0, len(rule.Keywords))
		for _, keyword := range rule.Keywords {
			if keyword = normalizeText(keyword); keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
		rule.Keywords = keywords
		normalized = append(normalized, rule)
	}
	return &Categorizer{rules: normalized}, nil
}

// ParseCategoryRules builds a Categorizer from YAML.
func ParseCategoryRules(data []byte) (*Categorizer, error) {
	var cfg CategoryRulesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse category rules: %w", err)
	}
	return NewCategorizer(cfg.Categories)
}

// LoadCategoryRules reads the rules file at path. An empty path yields a
// Categorizer without rules.
func LoadCategoryRules(path string) (*Categorizer, error) {
	if path == "" {
		return &Categorizer{}, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read category rules: %w", err)
	}
	return ParseCategoryRules(data)
}

// Suggest returns the first rule name whose keyword appears in any of texts,
// or "" when nothing matches. Rules are tried in file order.
func (c *Categorizer) Suggest(kind ledgerDomain.Kind, texts ...string) string {
	if c == nil {
		return ""
	}

	normalized := make([]string, 0, len(texts))
	for _, text := range texts {
		if text = normalizeText(text); text != "" {
			normalized = append(normalized, text)
		}
	}

	for _, rule := range c.rules {
		if rule.Kind != "" && rule.Kind != string(kind) {
			continue
		}
		for _, keyword := range rule.Keywords {
			for _, text := range normalized {
				if strings.Contains(text, keyword) {
					return rule.Name
				}
			}
		}
	}
	return ""
}

// Package types provides type definitions for structured data used throughout the ats-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Category is a keyword bucket in a KeywordSet
type Category string

// Keyword categories
const (
	CategoryTool      Category = "tool"
	CategoryConcept   Category = "concept"
	CategoryFramework Category = "framework"
	CategoryCustom    Category = "custom"
)

// Categories lists every keyword category in reporting order.
var Categories = []Category{CategoryTool, CategoryConcept, CategoryFramework, CategoryCustom}

// KeywordSet holds lowercase keywords extracted from a job posting, grouped by category.
// Keywords are unique within a category and kept in insertion order.
type KeywordSet struct {
	Tools      []string `json:"tool"`
	Concepts   []string `json:"concept"`
	Frameworks []string `json:"framework"`
	Custom     []string `json:"custom"`
}

// KeywordEntry is a single keyword together with its category
type KeywordEntry struct {
	Category Category `json:"category"`
	Keyword  string   `json:"keyword"`
}

// NewKeywordSet returns an empty KeywordSet whose categories marshal as empty arrays.
func NewKeywordSet() KeywordSet {
	return KeywordSet{
		Tools:      []string{},
		Concepts:   []string{},
		Frameworks: []string{},
		Custom:     []string{},
	}
}

func (ks *KeywordSet) bucket(cat Category) *[]string {
	switch cat {
	case CategoryTool:
		return &ks.Tools
	case CategoryConcept:
		return &ks.Concepts
	case CategoryFramework:
		return &ks.Frameworks
	case CategoryCustom:
		return &ks.Custom
	default:
		return nil
	}
}

// Add inserts a keyword into a category. The keyword is trimmed and lowercased.
// Returns false if the keyword is empty, the category is unknown, or the keyword is already present.
func (ks *KeywordSet) Add(cat Category, keyword string) bool {
	list := ks.bucket(cat)
	if list == nil {
		return false
	}
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return false
	}
	for _, existing := range *list {
		if existing == keyword {
			return false
		}
	}
	*list = append(*list, keyword)
	return true
}

// Keywords returns a copy of the keywords in a category
func (ks KeywordSet) Keywords(cat Category) []string {
	list := ks.bucket(cat)
	if list == nil {
		return nil
	}
	out := make([]string, len(*list))
	copy(out, *list)
	return out
}

// Has reports whether the category contains the keyword (case-insensitive)
func (ks KeywordSet) Has(cat Category, keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	for _, k := range ks.Keywords(cat) {
		if k == keyword {
			return true
		}
	}
	return false
}

// Len returns the number of keywords across all categories
func (ks KeywordSet) Len() int {
	return len(ks.Tools) + len(ks.Concepts) + len(ks.Frameworks) + len(ks.Custom)
}

// IsEmpty reports whether the set holds no keywords
func (ks KeywordSet) IsEmpty() bool {
	return ks.Len() == 0
}

// Entries flattens the set in category order
func (ks KeywordSet) Entries() []KeywordEntry {
	entries := make([]KeywordEntry, 0, ks.Len())
	for _, cat := range Categories {
		for _, k := range ks.Keywords(cat) {
			entries = append(entries, KeywordEntry{Category: cat, Keyword: k})
		}
	}
	return entries
}

// Merge returns a new set containing the keywords of both sets.
// Keywords from ks come first within each category.
func (ks KeywordSet) Merge(other KeywordSet) KeywordSet {
	merged := NewKeywordSet()
	for _, e := range ks.Entries() {
		merged.Add(e.Category, e.Keyword)
	}
	for _, e := range other.Entries() {
		merged.Add(e.Category, e.Keyword)
	}
	return merged
}

package analyzer

import (
	"sort"

	"github.com/xewelus/obsidian-fm/internal/frontmatter"
)

// Analyzer accumulates frontmatter statistics over one vault scan. It is
// built in a single ingestion pass and read-only afterwards; the internal
// counters are not safe for concurrent mutation.
type Analyzer struct {
	totalFiles      int
	withFrontmatter int

	// usage counts files per attribute, regardless of how many values the
	// attribute holds in a file.
	usage map[string]int

	// occurrence and members are keyed attribute -> canonical value key.
	// Sequence-valued attributes contribute one entry per element; a file
	// counts at most once per distinct value.
	occurrence map[string]map[string]int
	members    map[string]map[string][]string

	// display retains one normalized Value per canonical key so query
	// results can be denormalized for output.
	display map[string]map[string]frontmatter.Value
}

func New() *Analyzer {
	return &Analyzer{
		usage:      make(map[string]int),
		occurrence: make(map[string]map[string]int),
		members:    make(map[string]map[string][]string),
		display:    make(map[string]map[string]frontmatter.Value),
	}
}

// Ingest folds one file's record into the index. Every call counts toward
// the file total; only records with at least one attribute contribute to
// the attribute statistics. Callers are expected to ingest each file at
// most once.
func (a *Analyzer) Ingest(path string, rec frontmatter.Record) {
	a.totalFiles++
	if !rec.HasAttrs() {
		return
	}
	a.withFrontmatter++

	for attr, value := range rec.Attrs {
		a.usage[attr]++

		if value.Kind() == frontmatter.KindSequence {
			seen := make(map[string]struct{})
			for _, item := range value.Items() {
				a.record(attr, item, path, seen)
			}
			continue
		}
		a.record(attr, value, path, nil)
	}
}

func (a *Analyzer) record(
	attr string,
	value frontmatter.Value,
	path string,
	seen map[string]struct{},
) {
	key := value.Key()
	if seen != nil {
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
	}

	occ := a.occurrence[attr]
	if occ == nil {
		occ = make(map[string]int)
		a.occurrence[attr] = occ
		a.members[attr] = make(map[string][]string)
		a.display[attr] = make(map[string]frontmatter.Value)
	}

	occ[key]++
	a.members[attr][key] = append(a.members[attr][key], path)
	if _, ok := a.display[attr][key]; !ok {
		a.display[attr][key] = value
	}
}

// Attributes returns every attribute name seen across the scan, sorted.
func (a *Analyzer) Attributes() []string {
	attrs := make([]string, 0, len(a.usage))
	for attr := range a.usage {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)
	return attrs
}

// AttributeStats returns a copy of the per-attribute usage counts.
func (a *Analyzer) AttributeStats() map[string]int {
	stats := make(map[string]int, len(a.usage))
	for attr, count := range a.usage {
		stats[attr] = count
	}
	return stats
}

func (a *Analyzer) TotalFiles() int {
	return a.totalFiles
}

func (a *Analyzer) FilesWithFrontmatter() int {
	return a.withFrontmatter
}

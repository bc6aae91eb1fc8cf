package analyzer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/xewelus/obsidian-fm/internal/frontmatter"
)

// ErrInvalidLimit rejects explicit non-positive limits. A nil limit means
// unlimited; zero is never a valid way to ask for that.
var ErrInvalidLimit = errors.New("limit must be a positive integer")

// ValueCount is one row of a value distribution.
type ValueCount struct {
	Value frontmatter.Value
	Count int
}

// ValueFiles extends ValueCount with member files. Count is the true
// occurrence count even when Files has been truncated by a limit.
type ValueFiles struct {
	Value frontmatter.Value
	Count int
	Files []string
}

// ValuesFor returns the value distribution for one attribute, ordered by
// count descending with ties broken by display string. Unknown attributes
// yield an empty distribution.
func (a *Analyzer) ValuesFor(attribute string, limitValues *int) ([]ValueCount, error) {
	if err := checkLimit(limitValues); err != nil {
		return nil, err
	}

	occ := a.occurrence[attribute]
	counts := make([]ValueCount, 0, len(occ))
	for key, count := range occ {
		counts = append(counts, ValueCount{Value: a.display[attribute][key], Count: count})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		// Distinct values can share a display string (int 5 vs "5"), so
		// the canonical key settles what the display tie-break cannot.
		si, sj := counts[i].Value.String(), counts[j].Value.String()
		if si != sj {
			return si < sj
		}
		return counts[i].Value.Key() < counts[j].Value.Key()
	})

	if limitValues != nil && len(counts) > *limitValues {
		counts = counts[:*limitValues]
	}
	return counts, nil
}

// FilesFor returns the files holding the given attribute. With a non-nil
// value the lookup is exact against the normalized form; without one it is
// the deduplicated union across all of the attribute's values, in the
// distribution order of ValuesFor with insertion order within each value.
func (a *Analyzer) FilesFor(attribute string, value any, limit *int) ([]string, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}

	if value != nil {
		key := frontmatter.Normalize(value).Key()
		files := append([]string(nil), a.members[attribute][key]...)
		return truncate(files, limit), nil
	}

	counts, err := a.ValuesFor(attribute, nil)
	if err != nil {
		return nil, err
	}

	var files []string
	seen := make(map[string]struct{})
	for _, vc := range counts {
		for _, path := range a.members[attribute][vc.Value.Key()] {
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}
	return truncate(files, limit), nil
}

// ValuesWithFiles combines the ValuesFor ordering with per-value member
// lists, each independently truncated to limitNotes.
func (a *Analyzer) ValuesWithFiles(
	attribute string,
	limitValues *int,
	limitNotes *int,
) ([]ValueFiles, error) {
	if err := checkLimit(limitNotes); err != nil {
		return nil, err
	}

	counts, err := a.ValuesFor(attribute, limitValues)
	if err != nil {
		return nil, err
	}

	out := make([]ValueFiles, 0, len(counts))
	for _, vc := range counts {
		files := append([]string(nil), a.members[attribute][vc.Value.Key()]...)
		out = append(out, ValueFiles{
			Value: vc.Value,
			Count: vc.Count,
			Files: truncate(files, limitNotes),
		})
	}
	return out, nil
}

// ChildCount reports how many distinct files point at hub through either
// the parent attribute or the refs attribute.
func (a *Analyzer) ChildCount(hub, parentAttribute, refsAttribute string) int {
	key := frontmatter.Normalize(hub).Key()

	seen := make(map[string]struct{})
	for _, attr := range []string{parentAttribute, refsAttribute} {
		for _, path := range a.members[attr][key] {
			seen[path] = struct{}{}
		}
	}
	return len(seen)
}

func checkLimit(limit *int) error {
	if limit != nil && *limit <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidLimit, *limit)
	}
	return nil
}

func truncate(files []string, limit *int) []string {
	if limit != nil && len(files) > *limit {
		return files[:*limit]
	}
	return files
}

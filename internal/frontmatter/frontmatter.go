package frontmatter

import (
	"os"
	"regexp"
	"strconv"

	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"
)

var fenceRe = regexp.MustCompile(`(?ms)^---\s*\n(.*?)\n---\s*\n?`)

// Record is the outcome of reading one note's frontmatter. Absent marks a
// file that could not be read or whose block failed to decode; an empty
// Attrs map with Absent unset means the note simply carries no frontmatter.
type Record struct {
	Absent bool
	Attrs  map[string]Value
}

// HasAttrs reports whether the record contributes attribute statistics.
func (r Record) HasAttrs() bool {
	return !r.Absent && len(r.Attrs) > 0
}

// Parse reads the note at path and extracts its frontmatter block. It never
// fails: unreadable files and undecodable blocks collapse into an absent
// record so a single bad note cannot abort a vault scan.
func Parse(path string) Record {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{Absent: true}
	}
	return Decode(data)
}

// Decode extracts the frontmatter block from raw note content. Only a
// block at the very start of the note counts; fenced sections further down
// are body text (horizontal rules), not metadata.
func Decode(data []byte) Record {
	loc := fenceRe.FindSubmatchIndex(data)
	if len(loc) < 4 || loc[0] != 0 {
		return Record{Attrs: map[string]Value{}}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data[loc[2]:loc[3]], &doc); err != nil {
		return Record{Absent: true}
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Record{Attrs: map[string]Value{}}
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return Record{Absent: true}
	}

	attrs := make(map[string]Value, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		attrs[mapping.Content[i].Value] = nodeValue(mapping.Content[i+1])
	}
	return Record{Attrs: attrs}
}

func nodeValue(node *yaml.Node) Value {
	switch node.Kind {
	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			items = append(items, nodeValue(child))
		}
		return Sequence(items)
	case yaml.MappingNode:
		pairs := make([]Pair, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			pairs = append(pairs, Pair{
				Key:   node.Content[i].Value,
				Value: nodeValue(node.Content[i+1]),
			})
		}
		return Mapping(pairs)
	case yaml.AliasNode:
		if node.Alias != nil {
			return nodeValue(node.Alias)
		}
		return String(node.Value)
	case yaml.ScalarNode:
		return scalarNodeValue(node)
	default:
		return String(node.Value)
	}
}

// scalarNodeValue maps resolved YAML scalar tags onto typed values. Scalars
// that fail their tagged conversion fall back to their literal text rather
// than erroring, keeping parsing total.
func scalarNodeValue(node *yaml.Node) Value {
	switch node.Tag {
	case "!!int":
		if i, err := strconv.ParseInt(node.Value, 0, 64); err == nil {
			return Int(i)
		}
	case "!!float":
		if f, err := strconv.ParseFloat(node.Value, 64); err == nil {
			return Float(f)
		}
	case "!!bool":
		if b, err := strconv.ParseBool(node.Value); err == nil {
			return Bool(b)
		}
	case "!!timestamp":
		if t, err := dateparse.ParseAny(node.Value); err == nil {
			return Time(t)
		}
	case "!!null":
		return Null()
	}
	return String(node.Value)
}

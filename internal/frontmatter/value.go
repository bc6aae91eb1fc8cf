package frontmatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the closed set of value shapes frontmatter can hold.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

// Pair is a single key/value entry of a normalized mapping.
type Pair struct {
	Key   string
	Value Value
}

// Value is the canonical form of one frontmatter value. Mappings are sorted
// by key at construction, so two values with equal contents always produce
// equal keys regardless of the order they appeared in on disk.
type Value struct {
	kind   Kind
	scalar any
	seq    []Value
	pairs  []Pair
}

func String(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

func Int(i int64) Value {
	return Value{kind: KindScalar, scalar: i}
}

func Float(f float64) Value {
	return Value{kind: KindScalar, scalar: f}
}

func Bool(b bool) Value {
	return Value{kind: KindScalar, scalar: b}
}

func Time(t time.Time) Value {
	return Value{kind: KindScalar, scalar: t}
}

// Null represents an explicit YAML null. It is a value like any other and
// participates in counting.
func Null() Value {
	return Value{kind: KindScalar, scalar: nil}
}

// Sequence preserves element order and does not deduplicate.
func Sequence(items []Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, seq: items}
}

// Mapping copies and sorts the provided pairs by key so equal contents
// normalize equal regardless of insertion order.
func Mapping(pairs []Pair) Value {
	sorted := append([]Pair(nil), pairs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})
	if sorted == nil {
		sorted = []Pair{}
	}
	return Value{kind: KindMapping, pairs: sorted}
}

// Normalize converts an arbitrary Go value into its canonical Value. It is
// total: unrecognized types fall back to their string representation.
func Normalize(v any) Value {
	switch val := v.(type) {
	case Value:
		return val
	case nil:
		return Null()
	case string:
		return String(val)
	case int:
		return Int(int64(val))
	case int32:
		return Int(int64(val))
	case int64:
		return Int(val)
	case uint64:
		return Int(int64(val))
	case float32:
		return Float(float64(val))
	case float64:
		return Float(val)
	case bool:
		return Bool(val)
	case time.Time:
		return Time(val)
	case []any:
		items := make([]Value, 0, len(val))
		for _, item := range val {
			items = append(items, Normalize(item))
		}
		return Sequence(items)
	case map[string]any:
		pairs := make([]Pair, 0, len(val))
		for k, item := range val {
			pairs = append(pairs, Pair{Key: k, Value: Normalize(item)})
		}
		return Mapping(pairs)
	default:
		return String(fmt.Sprint(v))
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Scalar returns the underlying scalar, or nil for composite values.
func (v Value) Scalar() any {
	return v.scalar
}

// Items returns the elements of a sequence in order.
func (v Value) Items() []Value {
	return append([]Value(nil), v.seq...)
}

// Pairs returns the sorted key/value pairs of a mapping.
func (v Value) Pairs() []Pair {
	return append([]Pair(nil), v.pairs...)
}

// Key returns a deterministic encoding usable as a map key. Two values with
// the same normalized contents always encode identically; strings are quoted
// so delimiters inside them cannot collide with the structure markers.
func (v Value) Key() string {
	switch v.kind {
	case KindSequence:
		parts := make([]string, len(v.seq))
		for i, item := range v.seq {
			parts[i] = item.Key()
		}
		return "[" + strings.Join(parts, ",") + "]"
	case KindMapping:
		parts := make([]string, len(v.pairs))
		for i, pair := range v.pairs {
			parts[i] = strconv.Quote(pair.Key) + "=" + pair.Value.Key()
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return scalarKey(v.scalar)
	}
}

func scalarKey(scalar any) string {
	switch val := scalar.(type) {
	case nil:
		return "z"
	case string:
		return "s" + strconv.Quote(val)
	case int64:
		return "i" + strconv.FormatInt(val, 10)
	case float64:
		return "f" + strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return "b" + strconv.FormatBool(val)
	case time.Time:
		return "t" + val.UTC().Format(time.RFC3339Nano)
	default:
		return "s" + strconv.Quote(fmt.Sprint(val))
	}
}

// Equal reports whether two values have identical normalized contents.
func (v Value) Equal(other Value) bool {
	return v.Key() == other.Key()
}

// String renders the display form: scalars as themselves, sequences as a
// comma separated list, mappings as {key: value, ...}.
func (v Value) String() string {
	switch v.kind {
	case KindSequence:
		parts := make([]string, len(v.seq))
		for i, item := range v.seq {
			parts[i] = item.String()
		}
		return strings.Join(parts, ", ")
	case KindMapping:
		parts := make([]string, len(v.pairs))
		for i, pair := range v.pairs {
			parts[i] = pair.Key + ": " + pair.Value.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return scalarString(v.scalar)
	}
}

func scalarString(scalar any) string {
	switch val := scalar.(type) {
	case nil:
		return "null"
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}

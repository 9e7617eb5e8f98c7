package repositories

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fields is the field map of a stored document.
type Fields = map[string]interface{}

// Document is a stored document with its id.
type Document struct {
	ID     string
	Fields Fields
}

type serverTimestamp struct{}

// ServerTimestamp is a field value the store replaces with its write time.
var ServerTimestamp = serverTimestamp{}

// ResolveFields returns a deep copy of fields with every ServerTimestamp replaced by now.
func ResolveFields(fields Fields, now time.Time) Fields {
	out := make(Fields, len(fields))
	for k, v := range fields {
		out[k] = resolveValue(v, now)
	}
	return out
}

func resolveValue(v interface{}, now time.Time) interface{} {
	switch t := v.(type) {
	case serverTimestamp:
		return now
	case map[string]interface{}:
		return ResolveFields(t, now)
	case primitive.M:
		return ResolveFields(map[string]interface{}(t), now)
	case primitive.D:
		return ResolveFields(map[string]interface{}(t.Map()), now)
	case []interface{}:
		return resolveSlice(t, now)
	case primitive.A:
		return resolveSlice([]interface{}(t), now)
	default:
		return v
	}
}

func resolveSlice(in []interface{}, now time.Time) []interface{} {
	out := make([]interface{}, len(in))
	for i, v := range in {
		out[i] = resolveValue(v, now)
	}
	return out
}

// CopyFields returns a deep copy of fields.
func CopyFields(fields Fields) Fields {
	return ResolveFields(fields, time.Time{})
}

// MergeFields deep-merges src into dst. Non-empty nested maps merge; everything else is replaced.
func MergeFields(dst, src Fields) Fields {
	if dst == nil {
		dst = Fields{}
	}
	for k, v := range src {
		srcMap, srcIsMap := asMap(v)
		dstMap, dstIsMap := asMap(dst[k])
		if srcIsMap && dstIsMap && len(srcMap) > 0 {
			dst[k] = MergeFields(dstMap, srcMap)
			continue
		}
		dst[k] = v
	}
	return dst
}

// FlattenFields converts nested maps into dotted paths so a merge only touches the given leaves.
func FlattenFields(fields Fields) Fields {
	out := Fields{}
	flattenInto(out, "", fields)
	return out
}

func flattenInto(out Fields, prefix string, fields Fields) {
	for k, v := range fields {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if m, ok := asMap(v); ok && len(m) > 0 {
			flattenInto(out, path, m)
			continue
		}
		out[path] = v
	}
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch t := v.(type) {
	case map[string]interface{}:
		return t, true
	case primitive.M:
		return map[string]interface{}(t), true
	case primitive.D:
		return map[string]interface{}(t.Map()), true
	default:
		return nil, false
	}
}

// SortDocuments orders documents by id.
func SortDocuments(docs []*Document) {
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
}

package utils

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToTransportDocument rewrites a raw store document so every value is a
// JSON-safe scalar: ObjectIDs become hex strings and timestamps become
// RFC3339 strings. No native driver type leaks to callers.
func ToTransportDocument(doc bson.M) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for key, value := range doc {
		switch v := value.(type) {
		case primitive.ObjectID:
			out[key] = v.Hex()
		case primitive.DateTime:
			out[key] = FormatTimeISO(v.Time().UTC())
		case time.Time:
			out[key] = FormatTimeISO(v.UTC())
		default:
			out[key] = value
		}
	}
	return out
}

// ToTransportDocuments applies ToTransportDocument to each document,
// preserving order. A nil input yields an empty, non-nil slice so list
// responses marshal as [] rather than null.
func ToTransportDocuments(docs []bson.M) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		out = append(out, ToTransportDocument(doc))
	}
	return out
}

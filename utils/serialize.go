package utils

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToPublic rewrites a stored document for API output: the store-internal
// "_id" is removed and exposed as a string "id" field. Applied to every
// record that leaves the service, single or listed.
func ToPublic(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}
	if raw, ok := doc["_id"]; ok {
		switch v := raw.(type) {
		case primitive.ObjectID:
			doc["id"] = v.Hex()
		case string:
			doc["id"] = v
		}
		delete(doc, "_id")
	}
	return doc
}

// SerializeList applies ToPublic to every document in a result set.
func SerializeList(docs []bson.M) []bson.M {
	for i, doc := range docs {
		docs[i] = ToPublic(doc)
	}
	return docs
}

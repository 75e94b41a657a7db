package utility

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID converts a hex string into an ObjectID, returning
// NilObjectID on malformed input.
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}

// ObjectID2String converts an ObjectID into its hex form.
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

// P2Int64 parses a string into int64, returning 0 on failure.
func P2Int64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

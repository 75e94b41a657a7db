package utility

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ToMap converts a struct into a bson map through marshalling, so the
// struct's bson tags decide the keys.
func ToMap(data interface{}) (map[string]interface{}, error) {
	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	return result, nil
}

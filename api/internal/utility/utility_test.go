package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGoProtectRecoversPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		GoProtect(func() { panic("background job failure") })
	})

	ran := false
	GoProtect(func() { ran = true })
	assert.True(t, ran)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "a"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains([]int{}, 1))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@leoni.com"))
	assert.NoError(t, ValidateEmail("prenom.nom@leoni-tunisie.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("user@"))
	assert.Error(t, ValidateEmail(""))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough"))
	assert.Error(t, ValidatePassword("short"))
}

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id, String2ObjectID(id.Hex()))
	assert.Equal(t, primitive.NilObjectID, String2ObjectID("garbage"))
	assert.Equal(t, id.Hex(), ObjectID2String(id))
}

func TestP2Int64(t *testing.T) {
	assert.Equal(t, int64(42), P2Int64("42"))
	assert.Equal(t, int64(-3), P2Int64("-3"))
	assert.Equal(t, int64(0), P2Int64("abc"))
	assert.Equal(t, int64(0), P2Int64(""))
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(30*time.Millisecond, 10*time.Millisecond)
	defer cache.Stop()

	cache.Set("code", "123456")

	value, ok := cache.Get("code")
	assert.True(t, ok)
	assert.Equal(t, "123456", value)

	time.Sleep(60 * time.Millisecond)

	_, ok = cache.Get("code")
	assert.False(t, ok, "entry must expire after TTL")
}

func TestCacheDelete(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("k", 1)
	cache.Delete("k")

	_, ok := cache.Get("k")
	assert.False(t, ok)
}

func TestToMap(t *testing.T) {
	type doc struct {
		Name   string `bson:"name"`
		Active bool   `bson:"active"`
	}

	m, err := ToMap(doc{Name: "Production", Active: true})
	assert.NoError(t, err)
	assert.Equal(t, "Production", m["name"])
	assert.Equal(t, true, m["active"])
}

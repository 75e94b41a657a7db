package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("counter", 1)
	assert.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = r.Register("counter", 2)
	assert.NoError(t, err)
	assert.False(t, isNew)

	value, exists := r.Get("counter")
	assert.True(t, exists)
	assert.Equal(t, 2, value)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegistryEmptyName(t *testing.T) {
	r := NewRegistry[string]()

	_, err := r.Register("", "value")
	assert.Error(t, err)

	_, err = r.GetOrCreate("", func() (string, error) { return "", nil })
	assert.Error(t, err)
}

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	calls := 0

	creator := func() (string, error) {
		calls++
		return "created", nil
	}

	value, err := r.GetOrCreate("key", creator)
	assert.NoError(t, err)
	assert.Equal(t, "created", value)

	value, err = r.GetOrCreate("key", creator)
	assert.NoError(t, err)
	assert.Equal(t, "created", value)
	assert.Equal(t, 1, calls, "creator must run only once")
}

func TestRegistryGetOrCreateError(t *testing.T) {
	r := NewRegistry[string]()

	_, err := r.GetOrCreate("key", func() (string, error) {
		return "", fmt.Errorf("boom")
	})
	assert.Error(t, err)

	_, exists := r.Get("key")
	assert.False(t, exists, "failed creation must not register an item")
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("a", 1)
	_, _ = r.Register("b", 2)

	cleaned := 0
	deleted, err := r.Clear("a", func(int) error {
		cleaned++
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 1, cleaned)

	deleted, err = r.Clear("missing", nil)
	assert.NoError(t, err)
	assert.False(t, deleted)

	count, err := r.ClearAll(nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = r.Register(fmt.Sprintf("key-%d", n%10), n)
			_, _ = r.Get(fmt.Sprintf("key-%d", n%10))
		}(i)
	}
	wg.Wait()

	count, err := r.ClearAll(nil)
	assert.NoError(t, err)
	assert.Equal(t, 10, count)
}

package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAllSucceed(t *testing.T) {
	keys := []string{"a.txt", "b.txt", "c.txt"}

	result := Run(context.Background(), keys, func(ctx context.Context, key string) error {
		return nil
	})

	assert.Equal(t, keys, result.Succeeded)
	assert.Empty(t, result.Errors)
}

func TestRunPartialFailure(t *testing.T) {
	keys := []string{"a.txt", "missing.txt", "c.txt"}

	result := Run(context.Background(), keys, func(ctx context.Context, key string) error {
		if key == "missing.txt" {
			return errors.New("NoSuchKey")
		}
		return nil
	})

	assert.Equal(t, []string{"a.txt", "c.txt"}, result.Succeeded)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "missing.txt", result.Errors[0].Key)
	assert.Equal(t, "NoSuchKey", result.Errors[0].Message)
}

func TestRunVisitsEveryKeyDespiteFailures(t *testing.T) {
	var mu sync.Mutex
	visited := map[string]bool{}

	keys := make([]string, 20)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%02d", i)
	}

	result := Run(context.Background(), keys, func(ctx context.Context, key string) error {
		mu.Lock()
		visited[key] = true
		mu.Unlock()
		return errors.New("boom")
	})

	assert.Len(t, visited, len(keys))
	assert.Empty(t, result.Succeeded)
	assert.Len(t, result.Errors, len(keys))
	// input order survives the fan-out
	assert.Equal(t, "key-00", result.Errors[0].Key)
	assert.Equal(t, "key-19", result.Errors[19].Key)
}

func TestRunEmptyKeys(t *testing.T) {
	result := Run(context.Background(), nil, func(ctx context.Context, key string) error {
		t.Fatal("op must not be called")
		return nil
	})

	assert.Empty(t, result.Succeeded)
	assert.Empty(t, result.Errors)
}

package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ Store[string] = (*InMemoryStore[string])(nil)

type state struct {
	agent   string
	history []string
}

func TestInMemoryStore_PutGetDelete(t *testing.T) {
	s := NewInMemoryStore[*state]()

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put("a", &state{agent: "CareerAgent"}))
	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "CareerAgent", got.agent)

	got.history = append(got.history, "hi")
	again, _ := s.Get("a")
	assert.Equal(t, []string{"hi"}, again.history, "pointer values are shared")

	require.NoError(t, s.Delete("a"))
	require.NoError(t, s.Delete("a"))
	_, err = s.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryStore_Concurrent(t *testing.T) {
	s := NewInMemoryStore[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("s-%d", i)
			_ = s.Put(id, i)
			v, err := s.Get(id)
			assert.NoError(t, err)
			assert.Equal(t, i, v)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}

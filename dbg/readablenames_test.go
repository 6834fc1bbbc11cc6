package dbg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	assert.Equal(t, "Ø", Name(nil))
	var p *int
	assert.Equal(t, "Ø", Name(p))

	first := Name(42)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Name(42), "names are memoized")
	assert.Equal(t, first, ColorName(42).Value())

	x := 1
	assert.Equal(t, Name(&x), Name(&x))
}

func TestName_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	names := make([]string, 8)
	for i := range names {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			names[i] = Name("shared")
		}(i)
	}
	wg.Wait()
	for _, name := range names {
		assert.Equal(t, names[0], name)
	}
}

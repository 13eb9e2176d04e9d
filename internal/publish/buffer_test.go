package publish

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_AddAndDrain(t *testing.T) {
	b := newBuffer[int](4)
	assert.Equal(t, 0, b.Size())
	assert.Nil(t, b.GetAndClear())

	b.Add(1)
	b.Add(2)
	b.Add(3)
	assert.Equal(t, 3, b.Size())

	batch := b.GetAndClear()
	assert.Equal(t, []int{1, 2, 3}, batch)
	assert.Equal(t, 0, b.Size())
	assert.Nil(t, b.GetAndClear())
}

func TestBuffer_ConcurrentAdds(t *testing.T) {
	b := newBuffer[int](8)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			b.Add(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, b.Size())
	assert.Len(t, b.GetAndClear(), 100)
}

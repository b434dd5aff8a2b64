package billing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionLocks_LiberaEntradas(t *testing.T) {
	l := newSessionLocks()
	unlock := l.lock("s1")
	assert.Equal(t, 1, l.len())
	unlock()
	assert.Equal(t, 0, l.len())
}

func TestSessionLocks_Concurrente(t *testing.T) {
	l := newSessionLocks()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.lock("s1")
			counter++
			unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, counter)
	assert.Equal(t, 0, l.len())
}

// Copyright 2018 Aleksandr Demakin. All rights reserved.

package spin

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinMutexTryLock(t *testing.T) {
	a := assert.New(t)
	var m Mutex
	a.True(m.TryLock())
	a.False(m.TryLock())
	m.Unlock()
	a.True(m.TryLock())
	m.Unlock()
}

func TestSpinMutexValueInc(t *testing.T) {
	const (
		jobs       = 8
		iterations = 10000
	)
	var m Mutex
	var value int
	var wg sync.WaitGroup
	wg.Add(jobs)
	for i := 0; i < jobs; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				m.Lock()
				value++
				m.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, jobs*iterations, value)
}

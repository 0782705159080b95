package client

import (
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Continue(t *testing.T) {
	r := Registry{}
	r.Initialize()

	// first visit counts
	assert.True(t, r.Continue("10.0.0.1", "exp-1"))
	// reload of the same page does not
	assert.False(t, r.Continue("10.0.0.1", "exp-1"))
	// moving on to another page counts again
	assert.True(t, r.Continue("10.0.0.1", "exp-2"))
	// and so does going back
	assert.True(t, r.Continue("10.0.0.1", "exp-1"))
	// another client on the same page is independent
	assert.True(t, r.Continue("10.0.0.2", "exp-1"))
}

func TestRegistry_ContinueConcurrentFirstView(t *testing.T) {
	r := Registry{}
	r.Initialize()

	// many simultaneous requests for the same page must count one view
	var wg sync.WaitGroup
	var views int32
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Continue("10.0.0.1", "exp-1") {
				atomic.AddInt32(&views, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), views)
}

func TestRegistry_Count(t *testing.T) {
	r := Registry{}
	r.Initialize()

	assert.Equal(t, 0, r.Count())

	r.Continue("10.0.0.1", "exp-1")
	r.Continue("10.0.0.2", "exp-1")
	r.Continue("10.0.0.1", "exp-2") // same client, no new entry

	assert.Equal(t, 2, r.Count())
}

func TestRegistry_FlushKeepsFreshEntries(t *testing.T) {
	r := Registry{}
	r.Initialize()

	for i := 0; i < 5001; i++ {
		r.Continue("10.0."+strconv.Itoa(i/250)+"."+strconv.Itoa(i%250), "exp-1")
	}

	// all entries were just accessed, none may go
	r.Flush()
	assert.Equal(t, 5001, r.Count())
}

func TestRegistry_Dump(t *testing.T) {
	r := Registry{}
	r.Initialize()

	r.Continue("10.0.0.1", "exp-1")
	r.Continue("10.0.0.2", "exp-2")
	r.Continue("10.0.0.3", "exp-3")

	assert.Len(t, r.Dump(2), 2)
	assert.Len(t, r.Dump(10), 3)
}

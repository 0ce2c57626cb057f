package shutdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManager_ReverseOrderOnce(t *testing.T) {
	m := NewManager(nil)

	var order []string
	m.Register("first", Func(func() { order = append(order, "first") }))
	m.Register("second", Func(func() { order = append(order, "second") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, order)

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestManager_StepTimeout(t *testing.T) {
	m := NewManager(nil)
	m.stepTimeout = 20 * time.Millisecond

	release := make(chan struct{})
	defer close(release)

	ran := false
	m.Register("after", Func(func() { ran = true }))
	m.Register("stuck", Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()

	assert.True(t, ran)
	assert.Less(t, time.Since(start), time.Second)
}

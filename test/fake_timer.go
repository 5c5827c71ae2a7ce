package test

import (
	"time"

	"github.com/stevedore-deploy/stevedore/types"
)

func newTimer(_ time.Duration) *time.Timer {
	ch := make(chan time.Time)
	go func() {
		ch <- time.Now()
	}()
	// Back the fake with a real timer so Stop doesn't panic, but keep
	// the immediately-firing channel as C.
	t := time.NewTimer(time.Hour)
	t.C = ch
	return t
}

type fakeTime struct{}

func (t *fakeTime) Now() time.Time {
	return time.Now()
}
func (t *fakeTime) NewTimer(d time.Duration) *time.Timer {
	return newTimer(d)
}

// NewFakeTime returns a clock whose timers fire immediately, so poll
// loops run without waiting.
func NewFakeTime() types.Time {
	return &fakeTime{}
}

package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeSDK 可控的平台实现
type fakeSDK struct {
	initial    chan bool
	listener   func(bool)
	firstFrame int
	gameReady  int
}

func newFakeSDK() *fakeSDK {
	return &fakeSDK{initial: make(chan bool, 1)}
}

func (f *fakeSDK) AudioEnabled() <-chan bool          { return f.initial }
func (f *fakeSDK) OnAudioEnabledChange(cb func(bool)) { f.listener = cb }
func (f *fakeSDK) FirstFrameReady()                   { f.firstFrame++ }
func (f *fakeSDK) GameReady()                         { f.gameReady++ }

func collect(b *PlatformBridge) []bool {
	var got []bool
	b.DrainAudioChanges(func(enabled bool) { got = append(got, enabled) })
	return got
}

func TestPlatformBridge_DeferredInitialValue(t *testing.T) {
	sdk := newFakeSDK()
	b := NewPlatformBridge(sdk)

	assert.Empty(t, collect(b), "nothing before the platform answers")

	sdk.initial <- false
	assert.Equal(t, []bool{false}, collect(b))
	assert.Empty(t, collect(b), "initial value applied once")
}

func TestPlatformBridge_ChangesFromOtherGoroutine(t *testing.T) {
	sdk := newFakeSDK()
	sdk.initial <- true
	b := NewPlatformBridge(sdk)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sdk.listener(false)
	}()
	wg.Wait()

	assert.Equal(t, []bool{true, false}, collect(b))
	assert.Empty(t, collect(b))

	// 多次变化只保留最新值
	sdk.listener(true)
	sdk.listener(false)
	sdk.listener(true)
	assert.Equal(t, []bool{true}, collect(b))
}

func TestPlatformBridge_OneShotSignals(t *testing.T) {
	sdk := newFakeSDK()
	b := NewPlatformBridge(sdk)

	for i := 0; i < 3; i++ {
		b.SignalFirstFrame()
		b.SignalGameReady()
	}
	assert.Equal(t, 1, sdk.firstFrame)
	assert.Equal(t, 1, sdk.gameReady)
}

func TestPlatformBridge_NilSDK(t *testing.T) {
	b := NewPlatformBridge(nil)
	assert.Empty(t, collect(b))
	b.SignalFirstFrame()
	b.SignalGameReady()
}

func TestLoggingPlatform_ImmediateAudio(t *testing.T) {
	b := NewPlatformBridge(NewLoggingPlatform(true))
	assert.Equal(t, []bool{true}, collect(b))
}

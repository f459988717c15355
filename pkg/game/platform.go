package game

import (
	"log"
	"sync"
)

// PlatformSDK 宿主平台（如小游戏/可玩广告容器）提供的能力
//
// 回调可能在任意 goroutine 上触发，游戏代码不直接使用，
// 而是通过 PlatformBridge 在游戏线程上消费。
type PlatformSDK interface {
	// AudioEnabled 返回初始音频许可：立即可知时通道已缓冲一个值，
	// 异步获取时稍后写入；平台不支持时返回 nil
	AudioEnabled() <-chan bool
	// OnAudioEnabledChange 注册音频许可变化回调
	OnAudioEnabledChange(callback func(enabled bool))
	// FirstFrameReady 通知平台首帧已渲染
	FirstFrameReady()
	// GameReady 通知平台游戏可以交互
	GameReady()
}

// NoopPlatform 没有宿主平台时使用的空实现
type NoopPlatform struct{}

func (NoopPlatform) AudioEnabled() <-chan bool       { return nil }
func (NoopPlatform) OnAudioEnabledChange(func(bool)) {}
func (NoopPlatform) FirstFrameReady()                {}
func (NoopPlatform) GameReady()                      {}

// LoggingPlatform 把平台信号写入日志，用于本地调试 --playable 模式
type LoggingPlatform struct {
	initial bool
}

// NewLoggingPlatform 创建日志平台，initialAudio 为初始音频许可
func NewLoggingPlatform(initialAudio bool) *LoggingPlatform {
	return &LoggingPlatform{initial: initialAudio}
}

func (p *LoggingPlatform) AudioEnabled() <-chan bool {
	ch := make(chan bool, 1)
	ch <- p.initial
	return ch
}

func (p *LoggingPlatform) OnAudioEnabledChange(func(bool)) {
	log.Printf("[Platform] Audio change listener registered")
}

func (p *LoggingPlatform) FirstFrameReady() {
	log.Printf("[Platform] firstFrameReady")
}

func (p *LoggingPlatform) GameReady() {
	log.Printf("[Platform] gameReady")
}

// PlatformBridge 在平台 SDK 与游戏线程之间传递消息
//
// 音频许可变化先缓存，在 Update 中由 DrainAudioChanges 取出；
// 两个一次性信号各自最多发送一次。
type PlatformBridge struct {
	sdk     PlatformSDK
	initial <-chan bool

	mu         sync.Mutex
	pending    bool
	hasPending bool

	firstFrame sync.Once
	gameReady  sync.Once
}

// NewPlatformBridge 创建桥接器；sdk 为 nil 时使用 NoopPlatform
func NewPlatformBridge(sdk PlatformSDK) *PlatformBridge {
	if sdk == nil {
		sdk = NoopPlatform{}
	}
	b := &PlatformBridge{
		sdk:     sdk,
		initial: sdk.AudioEnabled(),
	}
	sdk.OnAudioEnabledChange(b.enqueue)
	return b
}

// enqueue 记录最新的音频许可（可在任意 goroutine 调用）
func (b *PlatformBridge) enqueue(enabled bool) {
	b.mu.Lock()
	b.pending = enabled
	b.hasPending = true
	b.mu.Unlock()
}

// DrainAudioChanges 在游戏线程上应用到达的音频许可
// 初始值先于后续变化应用；没有新消息时不调用 apply
func (b *PlatformBridge) DrainAudioChanges(apply func(enabled bool)) {
	if b.initial != nil {
		select {
		case enabled, ok := <-b.initial:
			b.initial = nil
			if ok {
				apply(enabled)
			}
		default:
		}
	}

	b.mu.Lock()
	enabled, has := b.pending, b.hasPending
	b.hasPending = false
	b.mu.Unlock()

	if has {
		apply(enabled)
	}
}

// SignalFirstFrame 通知首帧已渲染（只发送一次）
func (b *PlatformBridge) SignalFirstFrame() {
	b.firstFrame.Do(b.sdk.FirstFrameReady)
}

// SignalGameReady 通知游戏可交互（只发送一次）
func (b *PlatformBridge) SignalGameReady() {
	b.gameReady.Do(b.sdk.GameReady)
}

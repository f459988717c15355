package game

import "time"

// Clock 提供单调递增的模拟时间（毫秒）
type Clock interface {
	Now() float64
}

// SystemClock 基于真实单调时钟的时间源
type SystemClock struct {
	start time.Time
}

// NewSystemClock 创建从当前时刻开始计时的时钟
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now 返回自创建以来经过的毫秒数
func (c *SystemClock) Now() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// ManualClock 可手动推进的时钟，用于测试和无窗口模拟
type ManualClock struct {
	now float64
}

// NewManualClock 创建一个从 start 毫秒开始的手动时钟
func NewManualClock(start float64) *ManualClock {
	return &ManualClock{now: start}
}

// Now 返回当前时间（毫秒）
func (c *ManualClock) Now() float64 {
	return c.now
}

// Set 设置当前时间；时间不会倒退
func (c *ManualClock) Set(ms float64) {
	if ms > c.now {
		c.now = ms
	}
}

// Advance 将时间推进 ms 毫秒（负值被忽略）
func (c *ManualClock) Advance(ms float64) {
	if ms > 0 {
		c.now += ms
	}
}

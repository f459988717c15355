package game

import (
	"errors"
	"testing"

	"github.com/decker502/harvest/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakePlayer 记录播放状态的假播放器
type fakePlayer struct {
	playing bool
	volume  float64
	plays   int
}

func (p *fakePlayer) Play()                    { p.playing = true; p.plays++ }
func (p *fakePlayer) Pause()                   { p.playing = false }
func (p *fakePlayer) Rewind() error            { return nil }
func (p *fakePlayer) SetVolume(volume float64) { p.volume = volume }
func (p *fakePlayer) IsPlaying() bool          { return p.playing }

// MockAudioSource is a testify mock for AudioSource
type MockAudioSource struct {
	mock.Mock
}

func (m *MockAudioSource) NewMusicPlayer(id string) (AudioPlayer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(AudioPlayer), args.Error(1)
}

func (m *MockAudioSource) NewEffectPlayer(id string) (AudioPlayer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(AudioPlayer), args.Error(1)
}

func testAudioConfig() config.AudioConfig {
	return config.DefaultHarvestConfig().Audio
}

func TestAudioManager_EnsureReadyStartsMusicOnce(t *testing.T) {
	music := &fakePlayer{}
	src := &MockAudioSource{}
	src.On("NewMusicPlayer", MusicBackground).Return(music, nil).Once()

	am := NewAudioManager(src, testAudioConfig())
	assert.False(t, am.IsReady())

	am.EnsureReady()
	am.EnsureReady()

	assert.True(t, am.IsReady())
	assert.True(t, music.playing)
	assert.Equal(t, 1, music.plays)
	assert.InDelta(t, 0.35, music.volume, 1e-9)
	src.AssertExpectations(t)
}

func TestAudioManager_PlayEffectGates(t *testing.T) {
	src := &MockAudioSource{}
	src.On("NewMusicPlayer", MusicBackground).Return(&fakePlayer{}, nil)
	harvest := &fakePlayer{}
	src.On("NewEffectPlayer", SoundHarvest).Return(harvest, nil)

	am := NewAudioManager(src, testAudioConfig())

	// 未初始化时不播放
	assert.False(t, am.PlayEffect(SoundHarvest))
	src.AssertNotCalled(t, "NewEffectPlayer", SoundHarvest)

	am.EnsureReady()
	require.True(t, am.PlayEffect(SoundHarvest))
	assert.InDelta(t, 0.6, harvest.volume, 1e-9)
	assert.True(t, harvest.playing)

	// 未知键
	assert.False(t, am.PlayEffect("splash"))

	// 音效关闭
	am.ToggleSound()
	assert.False(t, am.PlayEffect(SoundHarvest))
	am.ToggleSound()

	// 平台禁用
	am.ApplyPlatformAudioState(false)
	assert.False(t, am.PlayEffect(SoundHarvest))
	am.ApplyPlatformAudioState(true)
	assert.True(t, am.PlayEffect(SoundHarvest))
}

func TestAudioManager_MissingEffectIsSilent(t *testing.T) {
	src := &MockAudioSource{}
	src.On("NewMusicPlayer", MusicBackground).Return(nil, errors.New("file missing"))
	src.On("NewEffectPlayer", SoundReveal).Return(nil, errors.New("file missing"))

	am := NewAudioManager(src, testAudioConfig())
	am.EnsureReady()

	assert.False(t, am.PlayEffect(SoundReveal))
	assert.False(t, am.PlayEffect(SoundReveal))
	// 音乐缺失时切换开关不会出错
	am.ToggleMusic()
	am.ToggleMusic()
	assert.True(t, am.MusicEnabled())
}

func TestAudioManager_MusicFollowsToggleAndPlatform(t *testing.T) {
	music := &fakePlayer{}
	src := &MockAudioSource{}
	src.On("NewMusicPlayer", MusicBackground).Return(music, nil)

	am := NewAudioManager(src, testAudioConfig())

	// 初始化前切换只改变状态
	assert.False(t, am.ToggleMusic())
	am.EnsureReady()
	assert.False(t, music.playing, "music stays off while disabled")

	assert.True(t, am.ToggleMusic())
	assert.True(t, music.playing)

	am.ApplyPlatformAudioState(false)
	assert.False(t, music.playing)

	am.ApplyPlatformAudioState(true)
	assert.True(t, music.playing)
}

func TestAudioManager_Labels(t *testing.T) {
	am := NewAudioManager(nil, testAudioConfig())

	assert.Equal(t, "Sound: On", am.SoundLabel())
	assert.Equal(t, "Music: On", am.MusicLabel())

	am.ToggleSound()
	am.ToggleMusic()
	assert.Equal(t, "Sound: Off", am.SoundLabel())
	assert.Equal(t, "Music: Off", am.MusicLabel())

	am.ApplyPlatformAudioState(false)
	assert.Equal(t, "Sound: Muted", am.SoundLabel())
	assert.Equal(t, "Music: Muted", am.MusicLabel())
}

func TestAudioManager_NilSource(t *testing.T) {
	am := NewAudioManager(nil, testAudioConfig())
	am.EnsureReady()
	assert.True(t, am.IsReady())
	assert.False(t, am.PlayEffect(SoundHarvest))
}

package game

import (
	"log"

	"github.com/decker502/harvest/pkg/config"
)

// 音频逻辑键（对应 resources.yaml 中的 id）
const (
	SoundHarvest    = "harvest"
	SoundReveal     = "reveal"
	MusicBackground = "background"
)

// AudioPlayer 播放器接口，*audio.Player 满足该接口
type AudioPlayer interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
	IsPlaying() bool
}

// AudioSource 提供播放器的资源来源（ResourceManager 实现）
type AudioSource interface {
	// NewMusicPlayer 返回循环播放的音乐播放器（可复用）
	NewMusicPlayer(id string) (AudioPlayer, error)
	// NewEffectPlayer 每次返回新的单次播放器，允许音效重叠
	NewEffectPlayer(id string) (AudioPlayer, error)
}

// AudioManager 音频管理器
// 职责：
//   - 首次交互时才初始化音频（EnsureReady），加载背景音乐并按开关播放
//   - 音效播放：未就绪、音效关闭、平台禁用音频或资源缺失时静默忽略
//   - 维护音效/音乐开关与平台音频状态，提供 HUD 按钮文字
type AudioManager struct {
	source AudioSource

	ready           bool // 是否已初始化
	soundEnabled    bool // 音效开关
	musicEnabled    bool // 音乐开关
	platformEnabled bool // 宿主平台是否允许音频

	music         AudioPlayer
	musicVolume   float64
	effectVolumes map[string]float64
	missing       map[string]struct{} // 已记录过警告的缺失音效
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - source: 播放器来源（通常为 ResourceManager，可为 nil 表示无声）
//   - cfg: 音量配置
func NewAudioManager(source AudioSource, cfg config.AudioConfig) *AudioManager {
	return &AudioManager{
		source:          source,
		soundEnabled:    true,
		musicEnabled:    true,
		platformEnabled: true,
		musicVolume:     cfg.MusicVolume,
		effectVolumes: map[string]float64{
			SoundHarvest: cfg.HarvestVolume,
			SoundReveal:  cfg.RevealVolume,
		},
		missing: make(map[string]struct{}),
	}
}

// EnsureReady 初始化音频（只执行一次）
// 浏览器式"首次交互后才能出声"的约束在所有平台上保持一致
func (am *AudioManager) EnsureReady() {
	if am.ready {
		return
	}
	am.ready = true

	if am.source != nil {
		player, err := am.source.NewMusicPlayer(MusicBackground)
		if err != nil {
			log.Printf("[AudioManager] Warning: background music unavailable: %v", err)
		} else {
			player.SetVolume(am.musicVolume)
			am.music = player
		}
	}
	log.Printf("[AudioManager] Audio ready (sound=%v, music=%v, platform=%v)",
		am.soundEnabled, am.musicEnabled, am.platformEnabled)
	am.syncMusic()
}

// IsReady 音频是否已初始化
func (am *AudioManager) IsReady() bool {
	return am.ready
}

// PlayEffect 播放音效
//
// 返回：
//   - bool: 是否实际开始播放
func (am *AudioManager) PlayEffect(key string) bool {
	if !am.ready || !am.soundEnabled || !am.platformEnabled || am.source == nil {
		return false
	}
	volume, known := am.effectVolumes[key]
	if !known {
		return false
	}

	player, err := am.source.NewEffectPlayer(key)
	if err != nil {
		if _, warned := am.missing[key]; !warned {
			am.missing[key] = struct{}{}
			log.Printf("[AudioManager] Warning: sound %s unavailable: %v", key, err)
		}
		return false
	}
	player.SetVolume(volume)
	player.Play()
	return true
}

// ToggleSound 切换音效开关，返回新状态
func (am *AudioManager) ToggleSound() bool {
	am.soundEnabled = !am.soundEnabled
	return am.soundEnabled
}

// ToggleMusic 切换音乐开关，返回新状态
func (am *AudioManager) ToggleMusic() bool {
	am.musicEnabled = !am.musicEnabled
	am.syncMusic()
	return am.musicEnabled
}

// SetEnabled 直接设置音效与音乐开关（启动参数 --muted 使用）
func (am *AudioManager) SetEnabled(sound, music bool) {
	am.soundEnabled = sound
	am.musicEnabled = music
	am.syncMusic()
}

// ApplyPlatformAudioState 应用宿主平台的音频许可状态
func (am *AudioManager) ApplyPlatformAudioState(enabled bool) {
	if am.platformEnabled != enabled {
		log.Printf("[AudioManager] Platform audio enabled: %v", enabled)
	}
	am.platformEnabled = enabled
	am.syncMusic()
}

// SoundEnabled 音效开关状态
func (am *AudioManager) SoundEnabled() bool {
	return am.soundEnabled
}

// MusicEnabled 音乐开关状态
func (am *AudioManager) MusicEnabled() bool {
	return am.musicEnabled
}

// PlatformEnabled 平台音频许可状态
func (am *AudioManager) PlatformEnabled() bool {
	return am.platformEnabled
}

// SoundLabel 音效按钮文字
func (am *AudioManager) SoundLabel() string {
	switch {
	case !am.platformEnabled:
		return "Sound: Muted"
	case am.soundEnabled:
		return "Sound: On"
	default:
		return "Sound: Off"
	}
}

// MusicLabel 音乐按钮文字
func (am *AudioManager) MusicLabel() string {
	switch {
	case !am.platformEnabled:
		return "Music: Muted"
	case am.musicEnabled:
		return "Music: On"
	default:
		return "Music: Off"
	}
}

// syncMusic 根据开关状态播放或暂停背景音乐
func (am *AudioManager) syncMusic() {
	if !am.ready || am.music == nil {
		return
	}
	if am.musicEnabled && am.platformEnabled {
		if !am.music.IsPlaying() {
			am.music.Play()
		}
		return
	}
	am.music.Pause()
}

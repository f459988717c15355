package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/decker502/harvest/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrNoAudioContext 没有可用的音频上下文（无声模式或无头运行）
var ErrNoAudioContext = errors.New("audio context unavailable")

// ImageHandle 图片资源句柄
//
// 文件缺失或解码失败时句柄仍然存在，但 Ready() 返回 false，
// 渲染代码据此切换到程序化绘制。
type ImageHandle struct {
	ID    string
	Image *ebiten.Image
}

// Ready 图片是否已成功加载
func (h *ImageHandle) Ready() bool {
	return h != nil && h.Image != nil
}

// Size 返回图片尺寸，未就绪时返回 0, 0
func (h *ImageHandle) Size() (int, int) {
	if !h.Ready() {
		return 0, 0
	}
	b := h.Image.Bounds()
	return b.Dx(), b.Dy()
}

// ResourceManager is responsible for centralized management of game resources.
// It resolves logical keys from the resource config to files, then loads and
// caches images and decoded audio so that each file is read only once.
//
// Missing files are not errors for the game: images come back as not-ready
// handles and audio lookups fail softly, letting callers degrade.
//
// This implementation is NOT thread-safe; all calls happen on the game thread.
//
// Usage:
//
//	rm := NewResourceManager(audio.NewContext(48000))
//	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
//	    return err
//	}
//	handle := rm.ImageByID("carrot")
type ResourceManager struct {
	audioContext *audio.Context           // nil when audio is unavailable
	imageCache   map[string]*ImageHandle  // logical id -> handle
	pcmCache     map[string][]byte        // file path -> decoded PCM (effects)
	musicCache   map[string]*audio.Player // file path -> looping player
	readFile     func(string) ([]byte, error)

	// YAML resource configuration
	config      *ResourceConfig
	imagePaths  map[string]string // image id -> full path
	soundPaths  map[string]string // sound id -> full path
	musicPaths  map[string]string // music id -> full path
	warnedPaths map[string]struct{}
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// audioContext may be nil, in which case every audio load reports ErrNoAudioContext.
// Files are read through the embedded package (data/ from the binary, assets/ from disk).
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext: audioContext,
		imageCache:   make(map[string]*ImageHandle),
		pcmCache:     make(map[string][]byte),
		musicCache:   make(map[string]*audio.Player),
		readFile:     embedded.ReadFile,
		imagePaths:   make(map[string]string),
		soundPaths:   make(map[string]string),
		musicPaths:   make(map[string]string),
		warnedPaths:  make(map[string]struct{}),
	}
}

// SetFileReader 替换文件读取函数（测试或 --config 目录模式使用）
func (rm *ResourceManager) SetFileReader(read func(string) ([]byte, error)) {
	rm.readFile = read
}

// LoadResourceConfig parses the YAML resource configuration file
// and builds the logical id -> file path mapping.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := rm.readFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}
	cfg, err := ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("resource config %s: %w", configPath, err)
	}
	rm.SetResourceConfig(cfg)
	return nil
}

// SetResourceConfig 使用已解析的配置重建资源映射
func (rm *ResourceManager) SetResourceConfig(cfg *ResourceConfig) {
	rm.config = cfg
	rm.buildResourceMap()
}

// buildResourceMap constructs the mappings from resource IDs to full file paths.
func (rm *ResourceManager) buildResourceMap() {
	rm.imagePaths = make(map[string]string)
	rm.soundPaths = make(map[string]string)
	rm.musicPaths = make(map[string]string)
	if rm.config == nil {
		return
	}
	for _, img := range rm.config.Images {
		rm.imagePaths[img.ID] = buildFullPath(rm.config.BasePath, img.Path)
	}
	for _, s := range rm.config.Sounds {
		rm.soundPaths[s.ID] = buildFullPath(rm.config.BasePath, s.Path)
	}
	for _, m := range rm.config.Music {
		rm.musicPaths[m.ID] = buildFullPath(rm.config.BasePath, m.Path)
	}
}

// LoadImage loads an image file from the specified path.
// Supported formats: PNG and JPEG.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	data, err := rm.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// ImageByID returns the handle for a logical image id, loading it on first use.
// The returned handle is never nil; it is not ready when the id is unknown
// or the file could not be loaded.
func (rm *ResourceManager) ImageByID(id string) *ImageHandle {
	if handle, ok := rm.imageCache[id]; ok {
		return handle
	}

	handle := &ImageHandle{ID: id}
	rm.imageCache[id] = handle

	path, ok := rm.imagePaths[id]
	if !ok {
		log.Printf("[ResourceManager] Warning: image id %q not configured, using fallback", id)
		return handle
	}
	img, err := rm.LoadImage(path)
	if err != nil {
		log.Printf("[ResourceManager] Warning: %v (using fallback)", err)
		return handle
	}
	handle.Image = img
	return handle
}

// PreloadImages 预加载所有配置的图片，返回就绪的数量
func (rm *ResourceManager) PreloadImages() int {
	ready := 0
	if rm.config == nil {
		return 0
	}
	for _, img := range rm.config.Images {
		if rm.ImageByID(img.ID).Ready() {
			ready++
		}
	}
	log.Printf("[ResourceManager] Images ready: %d/%d", ready, len(rm.config.Images))
	return ready
}

// decodeAudio decodes an MP3 / OGG Vorbis / WAV file at the context sample rate.
func (rm *ResourceManager) decodeAudio(path string) (io.ReadSeeker, int64, error) {
	if rm.audioContext == nil {
		return nil, 0, ErrNoAudioContext
	}

	data, err := rm.readFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(data)
	sampleRate := rm.audioContext.SampleRate()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, s.Length(), nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, s.Length(), nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return s, s.Length(), nil
	default:
		return nil, 0, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}
}

// NewMusicPlayer returns the looping player for a music id.
// The player is created once and reused.
func (rm *ResourceManager) NewMusicPlayer(id string) (AudioPlayer, error) {
	path, ok := rm.musicPaths[id]
	if !ok {
		return nil, fmt.Errorf("music id %q not configured", id)
	}
	if player, ok := rm.musicCache[path]; ok {
		return player, nil
	}

	stream, length, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}
	player, err := rm.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}
	rm.musicCache[path] = player
	return player, nil
}

// NewEffectPlayer returns a fresh one-shot player for a sound id.
// The decoded samples are cached, so overlapping plays are cheap.
func (rm *ResourceManager) NewEffectPlayer(id string) (AudioPlayer, error) {
	path, ok := rm.soundPaths[id]
	if !ok {
		return nil, fmt.Errorf("sound id %q not configured", id)
	}
	pcm, ok := rm.pcmCache[path]
	if !ok {
		stream, _, err := rm.decodeAudio(path)
		if err != nil {
			return nil, err
		}
		pcm, err = io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("failed to read audio samples %s: %w", path, err)
		}
		rm.pcmCache[path] = pcm
	}
	return rm.audioContext.NewPlayerFromBytes(pcm), nil
}

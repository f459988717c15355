package systems

import (
	"testing"

	"github.com/decker502/harvest/pkg/config"
	"github.com/decker502/harvest/pkg/game"
	"github.com/stretchr/testify/assert"
)

func TestStatsLines(t *testing.T) {
	lines := StatsLines(game.Stats{Harvested: 17, Combo: 4})
	assert.Equal(t, []string{"Harvested: 17", "Combo: 4"}, lines)
}

func TestHUDRenderSystem_ButtonLabels(t *testing.T) {
	am := game.NewAudioManager(nil, config.DefaultHarvestConfig().Audio)
	hud := NewHUDRenderSystem(nil, am, config.HUDButtons)

	assert.Equal(t, "Reset", hud.ButtonLabel(config.HUDButtonReset))
	assert.Equal(t, "Sound: On", hud.ButtonLabel(config.HUDButtonSound))
	assert.Equal(t, "Music: On", hud.ButtonLabel(config.HUDButtonMusic))

	am.ToggleSound()
	assert.Equal(t, "Sound: Off", hud.ButtonLabel(config.HUDButtonSound))
	assert.Equal(t, "Music: On", hud.ButtonLabel(config.HUDButtonMusic))

	am.ApplyPlatformAudioState(false)
	assert.Equal(t, "Sound: Muted", hud.ButtonLabel(config.HUDButtonSound))
	assert.Equal(t, "Music: Muted", hud.ButtonLabel(config.HUDButtonMusic))
}

package colors

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/casapps/cascolor/internal/color"
	"github.com/casapps/cascolor/internal/config"
)

func TestFor(t *testing.T) {
	assert.Equal(t, Light, For(config.ThemeLight))
	assert.Equal(t, Dark, For(config.ThemeDark))
	assert.Equal(t, Dark, For(config.ThemeSystem))
}

func TestOf(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#0A0B0C"), Of(color.FromRGB(10, 11, 12)))
}

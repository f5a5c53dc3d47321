package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIcon(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"registered key", "Wrench", "/assets/icons/wrench.svg"},
		{"unknown key falls back", "Unicorn", iconFallback},
		{"empty falls back", "", iconFallback},
		{"http url passes through", "https://cdn.example.com/icon.svg", "https://cdn.example.com/icon.svg"},
		{"data uri passes through", "data:image/svg+xml;base64,PHN2Zz4=", "data:image/svg+xml;base64,PHN2Zz4="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveIcon(tt.input))
		})
	}
}

func TestKnownIcon(t *testing.T) {
	assert.True(t, KnownIcon("HardHat"))
	assert.False(t, KnownIcon("Unicorn"))
	assert.False(t, KnownIcon("https://cdn.example.com/icon.svg"))
}

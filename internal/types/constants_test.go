package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedOrigins(t *testing.T) {
	got := AllowedOrigins("https://huddle.example.com", []string{"http://localhost:3000", "https://admin.example.com"})

	assert.Equal(t, []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"https://huddle.example.com",
		"https://admin.example.com",
	}, got)
}

func TestAllowedOrigins_DefaultsOnly(t *testing.T) {
	assert.Equal(t, defaultOrigins, AllowedOrigins("", nil))
}

package media

import (
	"testing"

	"portfolio/config"

	"github.com/stretchr/testify/assert"
)

func TestFormatAllowed(t *testing.T) {
	cases := []struct {
		filename string
		allowed  bool
	}{
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"photo.png", true},
		{"PHOTO.PNG", true},
		{"archive.tar.jpg", true},
		{"animation.gif", false},
		{"document.pdf", false},
		{"noextension", false},
		{"trailingdot.", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, FormatAllowed(tc.filename), tc.filename)
	}
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cloudinary.Folder = "projects"

	_, err := NewClient(cfg)
	assert.Error(t, err)
}

func TestNewClient(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cloudinary.CloudName = "demo"
	cfg.Cloudinary.APIKey = "key"
	cfg.Cloudinary.APISecret = "secret"
	cfg.Cloudinary.Folder = "projects"

	client, err := NewClient(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, client)
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moim/internal/domain"
)

func TestMediaKindForFilename(t *testing.T) {
	cases := []struct {
		filename string
		kind     domain.MediaKind
		ok       bool
	}{
		{"chat.txt", domain.MediaText, true},
		{"CHAT.TXT", domain.MediaText, true},
		{"screenshot.png", domain.MediaImage, true},
		{"photo.JPG", domain.MediaImage, true},
		{"photo.jpeg", domain.MediaImage, true},
		{"iphone.heic", domain.MediaImage, true},
		{"clip.mp4", domain.MediaVideo, true},
		{"clip.MOV", domain.MediaVideo, true},
		{"clip.avi", domain.MediaVideo, true},
		{"resume.pdf", "", false},
		{"noextension", "", false},
		{"archive.tar.gz", "", false},
	}

	for _, tc := range cases {
		kind, ok := domain.MediaKindForFilename(tc.filename)
		assert.Equal(t, tc.ok, ok, tc.filename)
		if tc.ok {
			assert.Equal(t, tc.kind, kind, tc.filename)
		}
	}
}

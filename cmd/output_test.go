package cmd

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "unlimited", in: "http://x/1.png", width: 0, want: "http://x/1.png"},
		{name: "fits", in: "http://x/1.png", width: 14, want: "http://x/1.png"},
		{name: "ellipsis", in: "http://x/1.png", width: 10, want: "http://..."},
		{name: "narrow", in: "http://x/1.png", width: 2, want: "ht"},
		{name: "multibyte fits", in: "http://x/ポケモン.png", width: 17, want: "http://x/ポケモン.png"},
		{name: "multibyte cut", in: "http://x/ポケモン.png", width: 13, want: "http://x/ポ..."},
		{name: "multibyte narrow", in: "ポケモン", width: 3, want: "ポケモ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

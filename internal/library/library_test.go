package library

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardrarity/internal/card"
)

const baseSet = `{"cards":[{"imageUrl":"http://x/1.png","rarity":"RareHolo"},{"imageUrl":"http://x/2.png","rarity":"Common"},{"imageUrl":"http://x/3.png","rarity":"Common"}]}`

func newLibrary(t *testing.T) *Library {
	t.Helper()
	l := New(filepath.Join(t.TempDir(), "collections"))
	require.NoError(t, l.Init())
	return l
}

func write(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestList(t *testing.T) {
	l := newLibrary(t)
	write(t, filepath.Join(l.Path, "base-set.json"), baseSet)
	write(t, filepath.Join(l.Path, "broken.json"), `{"cards":`)
	write(t, filepath.Join(l.Path, "notes.txt"), "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(l.Path, "sub.json"), 0755))

	entries, err := l.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "base-set", entries[0].Name)
	assert.NoError(t, entries[0].Err)
	assert.Equal(t, 3, entries[0].Cards)
	assert.Equal(t, map[card.Rarity]int{card.RareHolo: 1, card.Common: 2}, entries[0].Rarities)

	assert.Equal(t, "broken", entries[1].Name)
	assert.Error(t, entries[1].Err)
}

func TestListMissingLibrary(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "missing"))
	assert.False(t, l.Exists())
	_, err := l.List()
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	l := newLibrary(t)
	inLibrary := filepath.Join(l.Path, "base-set.json")
	write(t, inLibrary, baseSet)

	outside := filepath.Join(t.TempDir(), "loose.json")
	write(t, outside, baseSet)

	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "base-set", want: inLibrary},
		{name: "base-set.json", want: inLibrary},
		{name: outside, want: outside},
		{name: "-", want: Stdin},
		{name: "fossil", wantErr: true},
		{name: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.Resolve(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	l := newLibrary(t)
	write(t, filepath.Join(l.Path, "base-set.json"), baseSet)

	c, err := l.Load("base-set")
	require.NoError(t, err)
	assert.Equal(t, card.Card{Image: "http://x/1.png", Rarity: card.RareHolo}, c.Cards[0])

	_, err = l.Load("fossil")
	assert.Error(t, err)
}

func TestLoadStdin(t *testing.T) {
	l := newLibrary(t).WithStdin(strings.NewReader(`{"cards":[{}]}`))

	c, err := l.Load(Stdin)
	require.NoError(t, err)
	assert.Equal(t, []card.Card{{}}, c.Cards)
}

func TestLoadNotJSON(t *testing.T) {
	l := newLibrary(t)
	write(t, filepath.Join(l.Path, "garbage.json"), "not json")

	c, err := l.Load("garbage")
	assert.Error(t, err)
	assert.NotNil(t, c.Cards)
}

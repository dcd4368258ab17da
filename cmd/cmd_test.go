package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardrarity/internal/config"
)

const baseSet = `{"cards":[
	{"imageUrl":"http://x/1.png","rarity":"RareHolo"},
	{"imageUrl":"http://x/2.png","rarity":"Common"},
	{"imageUrl":"http://x/3.png","rarity":"Uncommon"}
]}`

// isolate points the XDG directories at a temp dir and turns colour off
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	c := config.Default()
	c.Color = config.ColorNever
	require.NoError(t, config.Save(c))
}

// setup isolates the test and seeds a library with base-set
func setup(t *testing.T) {
	t.Helper()
	isolate(t)

	require.NoError(t, os.MkdirAll(config.GetLibraryPath(), 0755))
	writeCollection(t, "base-set", baseSet)
}

func writeCollection(t *testing.T, name, body string) {
	t.Helper()
	path := filepath.Join(config.GetLibraryPath(), name+".json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(RootCmd)

	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	return out.String(), err
}

func TestRarities(t *testing.T) {
	setup(t)

	out, err := run(t, "", "rarities")
	require.NoError(t, err)
	assert.Equal(t, "1. Common\n2. Uncommon\n3. Rare\n4. RareHolo\n5. RareUltra\n6. RareSecret\n", out)
}

func TestDecode(t *testing.T) {
	setup(t)

	out, err := run(t, "", "decode", "base-set")
	require.NoError(t, err)
	assert.Contains(t, out, "Collection: base-set")
	assert.Contains(t, out, "Cards:      3")
	assert.Contains(t, out, "Rarities:   1 Common, 1 Uncommon, 1 RareHolo")
	assert.Contains(t, out, "RareHolo    http://x/1.png")
}

func TestDecodeDefaultCollection(t *testing.T) {
	setup(t)

	out, err := run(t, "", "decode")
	require.NoError(t, err)
	assert.Contains(t, out, "Collection: base-set")
}

func TestDecodeJSONFromStdin(t *testing.T) {
	setup(t)

	out, err := run(t, `{"cards":[{},{"imageUrl":"a","rarity":"Bogus"}],"extra":true}`, "decode", "--json", "-")
	require.NoError(t, err)
	assert.JSONEq(t, `{"cards":[{"imageUrl":"","rarity":"Common"},{"imageUrl":"a","rarity":"Common"}]}`, out)
}

func TestDecodeEmpty(t *testing.T) {
	setup(t)

	out, err := run(t, `{}`, "decode", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Cards:      0")
	assert.Contains(t, out, "Rarities:   empty")
}

func TestDecodeMissingCollection(t *testing.T) {
	setup(t)

	_, err := run(t, "", "decode", "fossil")
	assert.ErrorContains(t, err, "collection not found: fossil")
}

func TestValidate(t *testing.T) {
	setup(t)

	out, err := run(t, "", "validate", "base-set")
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Collection 'base-set' is valid.")

	out, err = run(t, `{"cards":[{"imageUrl":"a","rarity":"Mythic"},{"rarity":"Rare"}]}`, "validate", "-")
	assert.EqualError(t, err, "validation failed")
	assert.Contains(t, out, "has 1 validation errors")
	assert.Contains(t, out, `1. cards[0].rarity "Mythic" is not one of`)
	assert.Contains(t, out, "Warnings:")
	assert.Contains(t, out, "cards[1].imageUrl is missing")
}

func TestRound(t *testing.T) {
	setup(t)

	out, err := run(t, "", "round", "--seed", "42", "--rounds", "3", "base-set")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Winner: "))
	assert.Contains(t, out, "Round 3")
	assert.NotContains(t, out, "Round 4")
	assert.NotContains(t, out, "Score:")

	again, err := run(t, "", "round", "--seed", "42", "--rounds", "3", "base-set")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestRoundGuess(t *testing.T) {
	setup(t)
	writeCollection(t, "pair", `{"cards":[{"imageUrl":"a","rarity":"Common"},{"imageUrl":"b","rarity":"RareSecret"}]}`)

	out, err := run(t, "", "round", "--guess", "1", "--rounds", "4", "pair")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "] is rarer"))
	assert.Contains(t, out, "Score: ")
	assert.Contains(t, out, "/4")
	assert.NotContains(t, out, "Winner: ")
}

func TestRoundErrors(t *testing.T) {
	setup(t)
	writeCollection(t, "commons", `{"cards":[{"imageUrl":"a","rarity":"Common"},{"imageUrl":"b","rarity":"Common"}]}`)

	_, err := run(t, "", "round", "commons")
	assert.ErrorContains(t, err, "no round can be drawn from commons")

	_, err = run(t, "", "round", "--guess", "3", "base-set")
	assert.ErrorContains(t, err, "--guess must be 1 or 2")
}

func TestCollectionCommands(t *testing.T) {
	setup(t)
	writeCollection(t, "jungle", `{"cards":[{"imageUrl":"a","rarity":"Rare"}]}`)

	out, err := run(t, "", "collection", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "* base-set (3 cards: 1 Common, 1 Uncommon, 1 RareHolo) [DEFAULT]")
	assert.Contains(t, out, "  jungle (1 cards: 1 Rare)")

	out, err = run(t, "", "collection", "set-default", "jungle")
	require.NoError(t, err)
	assert.Contains(t, out, "Default collection set to: jungle")

	name, err := config.GetDefaultCollection()
	require.NoError(t, err)
	assert.Equal(t, "jungle", name)

	_, err = run(t, "", "collection", "set-default", "fossil")
	assert.Error(t, err)

	_, err = run(t, `{"cards":[]}`, "collection", "set-default", "-")
	assert.ErrorContains(t, err, "standard input cannot be the default collection")

	name, err = config.GetDefaultCollection()
	require.NoError(t, err)
	assert.Equal(t, "jungle", name)
}

func TestCollectionInit(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "collection", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "does not exist")

	out, err = run(t, "", "collection", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Collection library initialized at: "+config.GetLibraryPath())
	assert.DirExists(t, config.GetLibraryPath())

	out, err = run(t, "", "collection", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "No collections found")
}

package implication_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hasse/implication"
)

// TestParse_Basic reads the reference example of the text format.
func TestParse_Basic(t *testing.T) {
	s := build(t, "a b c d e\na b -> c d\nc d -> e\n")
	assert.Equal(t, "a b c d e", s.GroundSet().String())
	assert.Equal(t, 2, s.SizeRules())
}

// TestParse_DropsUndeclaredTokens silently drops rule tokens missing
// from the ground-set line, and skips rules whose conclusion empties.
func TestParse_DropsUndeclaredTokens(t *testing.T) {
	s := build(t, "a b\na z -> b\na -> z\n")
	rules := s.Rules()
	require.Len(t, rules, 1, "a -> z loses its whole conclusion")
	assert.Equal(t, "a -> b", rules[0].String())
}

// TestParse_EmptyPremise accepts rules firing unconditionally.
func TestParse_EmptyPremise(t *testing.T) {
	s := build(t, "a b\n-> a\n")
	require.Equal(t, 1, s.SizeRules())
	assert.True(t, s.Rules()[0].Premise().IsEmpty())
}

// TestParse_MalformedRule reports a rule line without the arrow.
func TestParse_MalformedRule(t *testing.T) {
	_, err := implication.Parse(strings.NewReader("a b\na b\n"))
	assert.ErrorIs(t, err, implication.ErrMalformedRule)
}

// TestRoundTrip_String verifies parse(serialise(s)) == s structurally.
func TestRoundTrip_String(t *testing.T) {
	for _, fx := range fixtures {
		s := build(t, fx)
		back := build(t, s.String())
		assert.True(t, s.Equal(back), "round trip changed %q", fx)
	}
}

// TestSaveFile_ParseFile round-trips through the filesystem and the
// default factory.
func TestSaveFile_ParseFile(t *testing.T) {
	s := build(t, "a b c\na -> b\nb -> c\n")
	path := filepath.Join(t.TempDir(), "rules.txt")
	require.NoError(t, s.SaveFile(path))

	back, err := implication.ParseFile(path)
	require.NoError(t, err)
	assert.True(t, s.Equal(back))
}

// TestSaveFile_UnknownExtension rejects extensions without a codec.
func TestSaveFile_UnknownExtension(t *testing.T) {
	s := implication.New()
	err := s.SaveFile(filepath.Join(t.TempDir(), "rules.bin"))
	assert.ErrorIs(t, err, implication.ErrUnknownExtension)

	_, err = implication.ParseFile(filepath.Join(t.TempDir(), "rules.bin"))
	assert.ErrorIs(t, err, implication.ErrUnknownExtension)
}

// TestParseFile_MissingFile surfaces the underlying I/O failure.
func TestParseFile_MissingFile(t *testing.T) {
	_, err := implication.ParseFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestSave_SqueezesWhitespaceInElements concatenates fragments of an
// element containing spaces so the output stays tokenisable.
func TestSave_SqueezesWhitespaceInElements(t *testing.T) {
	s := implication.New()
	s.AddElement("a b")
	s.AddElement("c")
	text := s.String()
	assert.Equal(t, "ab c\n", text)
}

// TestCustomFactory registers a codec under a custom extension.
func TestCustomFactory(t *testing.T) {
	f := implication.NewFactory()
	f.Register("rules", implication.TextCodec{})

	s := build(t, "a b\na -> b\n")
	path := filepath.Join(t.TempDir(), "sys.rules")
	require.NoError(t, s.SaveFileWith(f, path))
	back, err := implication.ParseFileWith(f, path)
	require.NoError(t, err)
	assert.True(t, s.Equal(back))
}

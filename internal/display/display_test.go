package display

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/facecards/internal/people"
)

func TestInlineImage(t *testing.T) {
	got := InlineImage([]byte("png-bytes"), "300px", "auto")

	want := "\x1b]1337;File=inline=1;size=9;width=300px;height=auto:" +
		base64.StdEncoding.EncodeToString([]byte("png-bytes")) + "\a\n"
	assert.Equal(t, want, got)
}

func TestInlineImage_DefaultsToAuto(t *testing.T) {
	got := InlineImage([]byte("x"), "", "")
	assert.Contains(t, got, "width=auto;height=auto")
}

func TestITermShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alice_profile.png")
	require.NoError(t, os.WriteFile(path, []byte("image"), 0o644))

	var buf bytes.Buffer
	r := NewITerm(&buf, "200px", "auto")
	require.NoError(t, r.Show(people.Person{ID: "alice", Path: path}))

	assert.True(t, strings.HasPrefix(buf.String(), "\x1b]1337;File=inline=1;"))
	assert.NotContains(t, buf.String(), "alice")
}

func TestITermShow_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := NewITerm(&buf, "", "").Show(people.Person{Path: filepath.Join(t.TempDir(), "gone.png")})

	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Placeholder{W: &buf}).Show(people.Person{ID: "alice_jones", Path: "alice_jones_profile.png"}))

	assert.Equal(t, "[portrait]\n", buf.String())
}

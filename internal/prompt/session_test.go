package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/freshmaven/cli/internal/errors"
)

func newTestSession(input string) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return NewSession(strings.NewReader(input), &out), &out
}

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
		asked int
	}{
		{"answer", "com.example\n", "", "com.example", 1},
		{"blank re-asks without default", "\n  \ncom.example\n", "", "com.example", 3},
		{"blank takes default", "\n", "1.0.0-SNAPSHOT", "1.0.0-SNAPSHOT", 1},
		{"answer overrides default", "2.0\n", "1.0.0-SNAPSHOT", "2.0", 1},
		{"trims", "  demo  \n", "", "demo", 1},
		{"last line without newline", "demo", "", "demo", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newTestSession(tt.input)
			got, err := s.Text("groupId", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			prompt := "groupId: "
			if tt.def != "" {
				prompt = "groupId (" + tt.def + "): "
			}
			assert.Equal(t, tt.asked, strings.Count(out.String(), prompt))
		})
	}
}

func TestText_Quit(t *testing.T) {
	s, _ := newTestSession("q\n")
	_, err := s.Text("groupId", "")
	assert.True(t, errors.Is(err, oerrors.ErrQuit))
}

func TestText_EOF(t *testing.T) {
	s, _ := newTestSession("\n")
	_, err := s.Text("groupId", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestChoose(t *testing.T) {
	s, out := newTestSession("0\nfour\n4\n2\n")
	idx, err := s.Choose("Type of application", []string{"A", "B", "C"}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	o := out.String()
	assert.Contains(t, o, "Select one of the following options:\n  1. A\n  2. B\n  3. C\n")
	assert.Equal(t, 4, strings.Count(o, "Type of application (1-3)? (1): "))
}

func TestChoose_Default(t *testing.T) {
	s, _ := newTestSession("\n")
	idx, err := s.Choose("Type of application", []string{"A", "B"}, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestChoose_BadDefault(t *testing.T) {
	s, _ := newTestSession("")
	_, err := s.Choose("x", []string{"A"}, 2)
	assert.Error(t, err)

	_, err = s.Choose("x", nil, 1)
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	s, out := newTestSession("maybe\nn\n")
	got, err := s.Select("Git files (y/n)", []string{"y", "n"}, "y")
	require.NoError(t, err)
	assert.Equal(t, "n", got)
	assert.Equal(t, 2, strings.Count(out.String(), "Git files (y/n) [y, n] (y): "))
}

func TestSelect_Quit(t *testing.T) {
	s, _ := newTestSession("q\n")
	_, err := s.Select("Git files (y/n)", []string{"y", "n"}, "y")
	assert.True(t, errors.Is(err, oerrors.ErrQuit))
}

package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText_TrimsLine(t *testing.T) {
	var out bytes.Buffer
	reader := newReader("  hello world  \n")

	got, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	reader := newReader("no newline at end")

	got, err := GetSimpleText(reader, "Prompt", &out)
	require.NoError(t, err)
	require.Equal(t, "no newline at end", got)
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	reader := newReader("")

	_, err := GetSimpleText(reader, "Prompt", &out)
	require.Error(t, err)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) {
		return []byte("s3cret"), nil
	}
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), pw)
	require.Contains(t, out.String(), "Enter password:")
}

func TestGetMultiline_StopsAtEmptyLine(t *testing.T) {
	var out bytes.Buffer
	reader := newReader("first line\nsecond line\n\nignored\n")

	got, err := GetMultiline(reader, "Bio", &out)
	require.NoError(t, err)
	require.Equal(t, "first line\nsecond line", got)
}

func TestGetMultiline_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	reader := newReader("\n")

	got, err := GetMultiline(reader, "Bio", &out)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestGetCommaList_TrimsAndDropsEmptyItems(t *testing.T) {
	var out bytes.Buffer
	reader := newReader("go, sqlite , ,rest\n")

	got, err := GetCommaList(reader, "Skills", &out)
	require.NoError(t, err)
	require.Equal(t, []string{"go", "sqlite", "rest"}, got)
}

func TestGetCommaList_EmptyLineIsNil(t *testing.T) {
	var out bytes.Buffer
	reader := newReader("\n")

	got, err := GetCommaList(reader, "Skills", &out)
	require.NoError(t, err)
	require.Nil(t, got)
}

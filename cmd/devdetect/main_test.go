package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdPrintsDetectionForSingleUA(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"name":"Googlebot"`)
}

func TestRootCmdRequiresArgumentWithoutInteractive(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestRootCmdInteractiveModeReadsStdin(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)\n\nMozilla/5.0 (Windows NT 10.0; Win64; x64)\n"))
	cmd.SetArgs([]string{"-i"})

	require.NoError(t, cmd.Execute())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestParseHeaderFlagsRejectsMalformedHeader(t *testing.T) {
	_, err := parseHeaderFlags([]string{"no-colon-here"})
	assert.Error(t, err)
}

func TestParseHeaderFlagsSplitsNameAndValue(t *testing.T) {
	headers, err := parseHeaderFlags([]string{"Sec-CH-UA-Mobile: ?1"})
	require.NoError(t, err)
	require.Len(t, headers, 1)
	assert.Equal(t, "Sec-CH-UA-Mobile", headers[0].Name)
	assert.Equal(t, "?1", headers[0].Value)
}

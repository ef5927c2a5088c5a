package logx_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nileshpatra/gubbins/internal/logx"
)

func TestLogger_SilentWhenNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	lg := logx.New(&buf, false)
	lg.Printf("hello %d", 1)
	lg.Println("world")
	require.Empty(t, buf.String())
	require.False(t, lg.Verbose())
}

func TestLogger_PrintsWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	lg := logx.New(&buf, true)
	lg.Printf("hello %d", 1)
	require.Contains(t, buf.String(), "hello 1")
	require.True(t, lg.Verbose())
}

func TestLogger_PrintlnJoinsWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	lg := logx.New(&buf, true)
	lg.Println("a", "b", "c")
	require.True(t, strings.Contains(buf.String(), "a b c"))
}

package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulldump/ddrmem/api"
	"github.com/fulldump/ddrmem/service"
	"github.com/fulldump/ddrmem/session"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	s := session.NewSession(&session.Config{
		Windows: []session.WindowConfig{
			{Name: "ddr", Base: 0x10000000, Total: 256 * 1024 * 1024},
		},
	})
	require.NoError(t, s.Load())

	b := api.Build(service.NewService(s), "test", "", "")
	b.WithInterceptors(api.PrettyErrorInterceptor)

	ts := httptest.NewServer(b)
	t.Cleanup(ts.Close)
	return ts
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)

	// Reset flags that previous runs may have set.
	window = "ddr"
	jsonOut, quiet, allocStrict, allocLabel, listFilter = false, false, false, "", ""

	err := rootCmd.Execute()
	return out.String(), err
}

func TestDdrctl_AllocDumpFree(t *testing.T) {
	ts := newTestServer(t)

	_, err := run(t, "--server", ts.URL, "alloc", "10", "--p2p", "--label", "iq")
	require.NoError(t, err)

	_, err = run(t, "--server", ts.URL, "alloc", "100000", "-p")
	require.NoError(t, err)

	out, err := run(t, "--server", ts.URL, "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "10000000 (268435456) - 1000000F (268435471) (16 bytes); isAligned = true")
	assert.Contains(t, out, "12000000 (301989888) - 1201869F (302089887) (100000 bytes); isAligned = true")

	out, err = run(t, "--server", ts.URL, "blocks", "--label", "iq")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, `"id":`))
	assert.Contains(t, out, `"address":268435456`)

	_, err = run(t, "--server", ts.URL, "free", "0x12000000")
	require.NoError(t, err)

	_, err = run(t, "--server", ts.URL, "free", "0x12000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block not found")
}

func TestDdrctl_CreateWindow(t *testing.T) {
	ts := newTestServer(t)

	_, err := run(t, "--server", ts.URL, "create", "aux", "0x0", "1024")
	require.NoError(t, err)

	_, err = run(t, "--server", ts.URL, "create", "aux", "0x0", "1024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window already exists")

	_, err = run(t, "--server", ts.URL, "--window", "aux", "alloc", "2048")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of space")

	_, err = run(t, "--server", ts.URL, "alloc", "nope")
	require.Error(t, err)
}

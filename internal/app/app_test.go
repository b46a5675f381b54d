package app

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietConfig(root string) Config {
	return Config{
		ProjectRoot: root,
		Addr:        "127.0.0.1:0",
		Logger:      log.New(io.Discard, "", 0),
		AccessLog:   io.Discard,
	}
}

func fetch(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestNew_RequiresRoot(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	root := t.TempDir()
	a, err := New(Config{ProjectRoot: root, AccessLog: io.Discard})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "data", "doctors.json"), a.Config.DataPath)
	assert.Equal(t, a.Config.DataPath, a.Paths.Doctors)
	assert.Equal(t, DefaultAddr, a.Config.Addr)
	assert.NotNil(t, a.Config.Logger)
	assert.Equal(t, ModeDisk, a.Mode())
	assert.Nil(t, a.Watched)
	assert.Equal(t, a.Config.DataPath, a.Source.Path())
}

func TestNew_RelativeDataPath(t *testing.T) {
	root := t.TempDir()
	cfg := quietConfig(root)
	cfg.DataPath = filepath.Join("fixtures", "docs.json")

	a, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "fixtures", "docs.json"), a.Config.DataPath)
	assert.Equal(t, filepath.Join(root, "fixtures"), a.Paths.DataDir)
}

func TestApp_ServesFromDisk(t *testing.T) {
	root := t.TempDir()
	p := NewPaths(root)
	writeDoctors(t, p.Doctors, `[{"id": 1, "name": "Ana Ruiz"}]`)

	a, err := New(quietConfig(root))
	require.NoError(t, err)
	require.NoError(t, a.Start())
	defer a.Stop()

	code, body := fetch(t, a.URL()+"/api/doctors")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[{"id": 1, "name": "Ana Ruiz"}]`, body)

	code, body = fetch(t, a.URL()+"/")
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body)

	require.NoError(t, a.Stop())
	assert.NoError(t, a.Stop(), "second Stop is a no-op")
}

func TestApp_StartsWithoutDataFile(t *testing.T) {
	a, err := New(quietConfig(t.TempDir()))
	require.NoError(t, err)
	require.NoError(t, a.Start())
	defer a.Stop()

	code, _ := fetch(t, a.URL()+"/api/doctors")
	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestApp_WatchMode(t *testing.T) {
	root := t.TempDir()
	p := NewPaths(root)
	writeDoctors(t, p.Doctors, `[{"id": 1}]`)

	cfg := quietConfig(root)
	cfg.Watch = true
	a, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, a.Watched)
	assert.Equal(t, ModeWatch, a.Mode())

	require.NoError(t, a.Start())
	defer a.Stop()
	time.Sleep(50 * time.Millisecond)

	code, body := fetch(t, a.URL()+"/api/doctors")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[{"id": 1}]`, body)

	code, body = fetch(t, a.URL()+"/api/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"mode":"watch"`)

	require.NoError(t, os.WriteFile(p.Doctors, []byte(`[{"id": 2}]`), 0644))

	assert.Eventually(t, func() bool {
		resp, err := http.Get(a.URL() + "/api/doctors")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		return err == nil && resp.StatusCode == http.StatusOK && string(body) == `[{"id":2}]`
	}, 2*time.Second, 20*time.Millisecond)
}

func TestApp_WatchModeNeedsDataDir(t *testing.T) {
	cfg := quietConfig(t.TempDir())
	cfg.Watch = true
	a, err := New(cfg)
	require.NoError(t, err)

	assert.Error(t, a.Start())
}

func TestApp_AddressInUse(t *testing.T) {
	first, err := New(quietConfig(t.TempDir()))
	require.NoError(t, err)
	require.NoError(t, first.Start())
	defer first.Stop()

	cfg := quietConfig(t.TempDir())
	cfg.Addr = first.Server.Addr()
	second, err := New(cfg)
	require.NoError(t, err)
	assert.Error(t, second.Start())
}

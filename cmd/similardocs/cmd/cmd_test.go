package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RafaelRangel0/Similar-Doctors/internal/domain/doctor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliDoctors = `[
  {"id": 1, "name": "Ana Ruiz", "specialty": "Cardiology", "area": "North", "reviewScore": 4.5},
  {"id": 2, "name": "Ben Osei", "specialty": "Dermatology", "area": "South", "reviewScore": 3.9},
  {"id": 3, "name": "Carla Baker", "specialty": "Cardiology", "area": "South", "reviewScore": 4.4},
  {"id": 4, "name": "Eve Zhou", "specialty": "Cardiology", "area": "North", "reviewScore": 4.9}
]`

func writeCLIData(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doctors.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// run executes the root command with fresh flag values and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagData, flagColor, flagNoColor = "", "auto", false
	flagSpecialty, flagArea, flagMinRating = "", "", 0
	flagLimit = doctor.DefaultSimilarLimit

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, "--color", "never"))
	err := rootCmd.Execute()
	return out.String(), err
}

// lines returns the non-header lines of a listing.
func lines(out string) []string {
	all := strings.Split(strings.TrimRight(out, "\n"), "\n")
	return all[1:]
}

func TestCheck(t *testing.T) {
	path := writeCLIData(t, cliDoctors)

	out, err := run(t, "check", "--data", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Doctors:      4")
	assert.Contains(t, out, "Specialties:  2")
	assert.Contains(t, out, "Areas:        2")
}

func TestCheck_Malformed(t *testing.T) {
	_, err := run(t, "check", "--data", writeCLIData(t, `[{`))
	assert.Error(t, err)
}

func TestCheck_Missing(t *testing.T) {
	_, err := run(t, "check", "--data", filepath.Join(t.TempDir(), "none.json"))
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	path := writeCLIData(t, cliDoctors)

	out, err := run(t, "search", "--data", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "⚡ 4 doctors"))
	got := lines(out)
	require.Len(t, got, 4)
	assert.Contains(t, got[0], "Carla Baker")
	assert.Contains(t, got[3], "Eve Zhou")

	out, err = run(t, "search", "--data", path, "--specialty", "Cardiology", "--area", "North", "--min-rating", "4.6")
	require.NoError(t, err)
	got = lines(out)
	require.Len(t, got, 1)
	assert.Equal(t, "  #4  Eve Zhou  Cardiology  @North  ★4.9", got[0])
}

func TestSearch_NameQuery(t *testing.T) {
	out, err := run(t, "search", "--data", writeCLIData(t, cliDoctors), "ben", "osei")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "Ben Osei")
}

func TestSimilar(t *testing.T) {
	path := writeCLIData(t, cliDoctors)

	out, err := run(t, "similar", "1", "--data", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "⚡ 2 similar to Ana Ruiz"))
	got := lines(out)
	require.Len(t, got, 4)
	assert.Contains(t, got[0], "Ana Ruiz")
	assert.Contains(t, got[2], "Eve Zhou")
	assert.Contains(t, got[3], "Carla Baker")

	out, err = run(t, "similar", "1", "--data", path, "--limit", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "⚡ 1 similar to Ana Ruiz"))
}

func TestSimilar_Errors(t *testing.T) {
	path := writeCLIData(t, cliDoctors)

	_, err := run(t, "similar", "abc", "--data", path)
	assert.Error(t, err)

	_, err = run(t, "similar", "99", "--data", path)
	assert.ErrorIs(t, err, doctor.ErrNotFound)
}

func TestHealth_Running(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","uptime":"2s","mode":"disk","data":"/srv/doctors.json"}`))
	}))
	defer ts.Close()

	out, err := run(t, "health", "--addr", strings.TrimPrefix(ts.URL, "http://"))
	require.NoError(t, err)
	assert.Contains(t, out, "Status:  ok")
	assert.Contains(t, out, "Data:    /srv/doctors.json")
}

func TestHealth_NotRunning(t *testing.T) {
	out, err := run(t, "health", "--addr", "127.0.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not running at 127.0.0.1:1")
	assert.Empty(t, out)
}

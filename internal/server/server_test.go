package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/botionplot/pkg/buildinfo"
	"github.com/matzehuels/botionplot/pkg/outdir"
)

func newTestServer(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	dir, err := outdir.Ensure(root)
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(Config{Addr: ":0", Dir: dir, Logger: log.New(io.Discard)})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestNewValidates(t *testing.T) {
	dir, _ := outdir.Ensure(t.TempDir())
	if _, err := New(Config{Dir: dir}); err == nil {
		t.Error("empty address should fail")
	}
	if _, err := New(Config{Addr: ":0"}); err == nil {
		t.Error("empty directory should fail")
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, body := get(t, ts.URL+"/health")
	if resp.StatusCode != http.StatusOK || body != "ok\n" {
		t.Errorf("GET /health = %d %q", resp.StatusCode, body)
	}
}

func TestArtifacts(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"line_plot.png": "png",
		"animation.gif": "gif89",
		"notes.txt":     "ignored",
	})

	resp, body := get(t, ts.URL+"/api/artifacts")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}
	var arts []outdir.Artifact
	if err := json.Unmarshal([]byte(body), &arts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(arts) != 2 || arts[0].Name != "animation.gif" || arts[1].Name != "line_plot.png" {
		t.Errorf("artifacts = %+v", arts)
	}
	if arts[0].Kind != outdir.KindGIF || arts[0].Size != 5 {
		t.Errorf("gif artifact = %+v", arts[0])
	}
}

func TestArtifactsEmpty(t *testing.T) {
	ts := newTestServer(t, nil)
	_, body := get(t, ts.URL+"/api/artifacts")
	if strings.TrimSpace(body) != "[]" {
		t.Errorf("empty listing = %q, want []", body)
	}
}

func TestIndex(t *testing.T) {
	ts := newTestServer(t, map[string]string{"heatmap.png": "png"})
	resp, body := get(t, ts.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, `src="/files/heatmap.png"`) {
		t.Error("index should link each artifact")
	}
	if !strings.Contains(body, buildinfo.Short()) {
		t.Error("index should show the version")
	}

	ts = newTestServer(t, nil)
	_, body = get(t, ts.URL+"/")
	if !strings.Contains(body, "No figures yet") {
		t.Error("empty gallery should say so")
	}
}

func TestFiles(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"plot.png":  "\x89PNG-data",
		"notes.txt": "secret",
	})

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"artifact", "/files/plot.png", http.StatusOK, "\x89PNG-data"},
		{"missing", "/files/none.png", http.StatusNotFound, ""},
		{"not an artifact", "/files/notes.txt", http.StatusNotFound, ""},
		{"hidden", "/files/.plot.png", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("GET %s = %d, want %d", tt.path, resp.StatusCode, tt.wantStatus)
			}
			if tt.wantBody != "" && body != tt.wantBody {
				t.Errorf("body = %q", body)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	ts := newTestServer(t, nil)
	_, body := get(t, ts.URL+"/api/version")
	var info buildinfo.Info
	if err := json.Unmarshal([]byte(body), &info); err != nil {
		t.Fatal(err)
	}
	if info != buildinfo.Get() {
		t.Errorf("version = %+v", info)
	}
}

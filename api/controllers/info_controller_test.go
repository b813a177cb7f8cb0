package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/moyoez/katana/api/models"
	"github.com/moyoez/katana/types"
)

func TestHandleInfo(t *testing.T) {
	router := setupRouter()
	models.SetRuntime(types.Runtime{Mode: types.RuntimePackaged})
	defer models.SetRuntime(types.Runtime{})

	req := httptest.NewRequest(http.MethodGet, "/api/self/v1/info", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp types.InfoResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Name != types.AppName || resp.Version != types.AppVersion {
		t.Errorf("info = %+v", resp)
	}
	if resp.RuntimeMode != types.RuntimePackaged.String() {
		t.Errorf("runtimeMode = %q", resp.RuntimeMode)
	}
}

func TestHandleRecent(t *testing.T) {
	router := setupRouter()

	t.Run("no source", func(t *testing.T) {
		models.SetRecentSource(nil)
		req := httptest.NewRequest(http.MethodGet, "/api/self/v1/recent", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var resp types.RecentListResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Count != 0 || resp.Uploads == nil {
			t.Errorf("resp = %+v, want empty non-nil list", resp)
		}
	})

	t.Run("with uploads", func(t *testing.T) {
		withRecent(t, []types.RecentUpload{
			{Link: "https://i.example/2", FileName: "b.png"},
			{Link: "https://i.example/1", FileName: "a.png"},
		})
		req := httptest.NewRequest(http.MethodGet, "/api/self/v1/recent", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var resp types.RecentListResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Count != 2 || resp.Uploads[0].Link != "https://i.example/2" {
			t.Errorf("resp = %+v", resp)
		}
	})
}

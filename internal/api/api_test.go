package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/starford/raido/internal/markdown"
	"github.com/starford/raido/internal/posts"
	"github.com/starford/raido/internal/testutil"
)

// testEnv sets up a temp content directory, repository, and router.
func testEnv(t *testing.T) (string, http.Handler) {
	t.Helper()
	dir, store := testutil.TestContent(t)
	repo := posts.NewRepository(store, markdown.NewRenderer())
	return dir, NewRouter(repo, nil)
}

func seed(t *testing.T, dir string) {
	t.Helper()
	testutil.WritePost(t, dir, "ssg-ssr", map[string]string{
		"title": "Pre-rendering", "date": "2020-01-02",
	}, "When to use SSG vs SSR.\n")
	testutil.WritePost(t, dir, "pre-rendering", map[string]string{
		"title": "SSG vs SSR", "date": "2020-01-01",
	}, "# Pre-rendering\n\nTwo forms of *pre-rendering*.\n")
}

func TestListPosts(t *testing.T) {
	dir, router := testEnv(t)
	seed(t, dir)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d, body = %s", w.Code, w.Body.String())
	}

	var resp PostListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 2 || len(resp.Posts) != 2 {
		t.Fatalf("total = %d, posts = %d", resp.Total, len(resp.Posts))
	}
	if resp.Posts[0].ID != "ssg-ssr" || resp.Posts[1].ID != "pre-rendering" {
		t.Errorf("order = [%s %s]", resp.Posts[0].ID, resp.Posts[1].ID)
	}
}

func TestListPosts_SummariesHaveNoBody(t *testing.T) {
	dir, router := testEnv(t)
	seed(t, dir)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var raw map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &raw)
	first := raw["posts"].([]any)[0].(map[string]any)
	if _, ok := first["body_html"]; ok {
		t.Error("summary payload must not carry body_html")
	}
}

func TestListPostIDs(t *testing.T) {
	dir, router := testEnv(t)
	seed(t, dir)

	req := httptest.NewRequest(http.MethodGet, "/posts/ids", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("ids = %d", w.Code)
	}

	var resp PostIDListResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	got := map[string]bool{}
	for _, id := range resp.IDs {
		got[id.ID] = true
	}
	if len(got) != 2 || !got["ssg-ssr"] || !got["pre-rendering"] {
		t.Errorf("ids = %v", resp.IDs)
	}
}

func TestGetPost(t *testing.T) {
	dir, router := testEnv(t)
	seed(t, dir)

	req := httptest.NewRequest(http.MethodGet, "/posts/pre-rendering", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get = %d, body = %s", w.Code, w.Body.String())
	}

	var post PostDetail
	_ = json.Unmarshal(w.Body.Bytes(), &post)
	if post.ID != "pre-rendering" {
		t.Errorf("id = %q", post.ID)
	}
	if post.Metadata["title"] != "SSG vs SSR" {
		t.Errorf("title = %q", post.Metadata["title"])
	}
	if post.BodyHTML == "" {
		t.Error("expected rendered body")
	}
	if w.Header().Get("ETag") == "" {
		t.Error("expected ETag header")
	}
}

func TestGetPost_NotFound(t *testing.T) {
	dir, router := testEnv(t)
	seed(t, dir)

	req := httptest.NewRequest(http.MethodGet, "/posts/does-not-exist", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("get = %d, want 404", w.Code)
	}
}

func TestGetPost_TraversalRejected(t *testing.T) {
	dir, router := testEnv(t)
	seed(t, dir)

	req := httptest.NewRequest(http.MethodGet, "/posts/..%2F..%2Fetc%2Fpasswd", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("get = %d, want 404", w.Code)
	}
}

func TestGetPost_IfNoneMatch(t *testing.T) {
	dir, router := testEnv(t)
	seed(t, dir)

	req := httptest.NewRequest(http.MethodGet, "/posts/ssg-ssr", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	etag := w.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected ETag")
	}

	req = httptest.NewRequest(http.MethodGet, "/posts/ssg-ssr", nil)
	req.Header.Set("If-None-Match", etag)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotModified {
		t.Errorf("conditional get = %d, want 304", w.Code)
	}
}

func TestListPosts_MalformedMetadataFailsListing(t *testing.T) {
	dir, router := testEnv(t)
	seed(t, dir)
	testutil.WriteRaw(t, dir, "broken.md", "no frontmatter\n")

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("list = %d, want 500", w.Code)
	}
}

func TestHello(t *testing.T) {
	_, router := testEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("hello = %d", w.Code)
	}
	var resp HelloResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Text != "Hello" {
		t.Errorf("text = %q, want Hello", resp.Text)
	}
}

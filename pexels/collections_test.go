package pexels

import (
	"context"
	"net/http"
	"testing"
)

func TestCollectionsService_Featured(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/v1/collections/featured", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, http.MethodGet)
		if got := r.URL.Query().Get("per_page"); got != "5" {
			t.Errorf("per_page = %q, want %q", got, "5")
		}
		w.Header().Set("Content-Type", mediaTypeJSON)
		w.Write([]byte(`{
			"total_results": 120,
			"page": 1,
			"per_page": 5,
			"collections": [{"id": "hoxyyjd", "title": "Cool Cars", "media_count": 12, "photos_count": 10, "videos_count": 2}]
		}`))
	})

	page, _, err := client.Collections.Featured(context.Background(), &ListOptions{PerPage: 5})
	if err != nil {
		t.Fatalf("Collections.Featured returned error: %v", err)
	}

	if len(page.Collections) != 1 {
		t.Fatalf("len(Collections) = %d, want 1", len(page.Collections))
	}
	if page.Collections[0].ID != "hoxyyjd" {
		t.Errorf("Collections[0].ID = %q, want %q", page.Collections[0].ID, "hoxyyjd")
	}
}

func TestCollectionsService_Mine(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/v1/collections", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, http.MethodGet)
		w.Header().Set("Content-Type", mediaTypeJSON)
		w.Write([]byte(`{"total_results":1,"page":1,"per_page":15,"collections":[{"id":"abc123","title":"Mine","private":true}]}`))
	})

	page, _, err := client.Collections.Mine(context.Background(), nil)
	if err != nil {
		t.Fatalf("Collections.Mine returned error: %v", err)
	}

	if len(page.Collections) != 1 || !page.Collections[0].Private {
		t.Errorf("Collections = %+v, want one private collection", page.Collections)
	}
}

func TestCollectionsService_Mine_Forbidden(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/v1/collections", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"Access to this endpoint requires additional permissions"}`))
	})

	_, _, err := client.Collections.Mine(context.Background(), nil)
	if err == nil {
		t.Fatal("Collections.Mine expected error, got nil")
	}

	// Upstream authorization failures pass through with their own message.
	apiErr, ok := err.(*ErrorResponse)
	if !ok {
		t.Fatalf("error type = %T, want *ErrorResponse", err)
	}
	if apiErr.Message != "Access to this endpoint requires additional permissions" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestCollectionsService_Media(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/v1/collections/hoxyyjd", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, http.MethodGet)
		q := r.URL.Query()
		if got := q.Get("type"); got != "videos" {
			t.Errorf("type = %q, want %q", got, "videos")
		}
		if got := q.Get("sort"); got != "desc" {
			t.Errorf("sort = %q, want %q", got, "desc")
		}
		w.Header().Set("Content-Type", mediaTypeJSON)
		w.Write([]byte(`{
			"id": "hoxyyjd",
			"total_results": 2,
			"page": 1,
			"per_page": 15,
			"media": [
				{"type": "Video", "id": 2499611, "duration": 22},
				{"type": "Photo", "id": 1181292, "photographer": "Alex"}
			]
		}`))
	})

	opts := &CollectionMediaOptions{Type: "videos", Sort: "desc"}
	page, _, err := client.Collections.Media(context.Background(), "hoxyyjd", opts)
	if err != nil {
		t.Fatalf("Collections.Media returned error: %v", err)
	}

	if page.ID != "hoxyyjd" {
		t.Errorf("ID = %q, want %q", page.ID, "hoxyyjd")
	}
	if len(page.Media) != 2 {
		t.Fatalf("len(Media) = %d, want 2", len(page.Media))
	}
	if page.Media[0].Type != "Video" || page.Media[0].Duration != 22 {
		t.Errorf("Media[0] = %+v, want video with duration 22", page.Media[0])
	}
	if page.Media[1].Type != "Photo" || page.Media[1].Photographer != "Alex" {
		t.Errorf("Media[1] = %+v, want photo by Alex", page.Media[1])
	}
}

func TestCollectionsService_Media_EscapesID(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/v1/collections/", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.EscapedPath(); got != "/v1/collections/a%2Fb" {
			t.Errorf("EscapedPath = %q, want %q", got, "/v1/collections/a%2Fb")
		}
		w.Header().Set("Content-Type", mediaTypeJSON)
		w.Write([]byte(`{"id":"a/b","media":[]}`))
	})

	if _, _, err := client.Collections.Media(context.Background(), "a/b", nil); err != nil {
		t.Fatalf("Collections.Media returned error: %v", err)
	}
}

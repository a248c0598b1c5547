package pexels

import (
	"context"
	"net/http"
	"testing"
)

func TestPhotosService_Search(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, http.MethodGet)
		q := r.URL.Query()
		if got := q.Get("query"); got != "red car" {
			t.Errorf("query = %q, want %q", got, "red car")
		}
		if got := q.Get("orientation"); got != "landscape" {
			t.Errorf("orientation = %q, want %q", got, "landscape")
		}
		if got := q.Get("per_page"); got != "2" {
			t.Errorf("per_page = %q, want %q", got, "2")
		}
		if _, ok := q["page"]; ok {
			t.Error("page parameter sent, want omitted")
		}
		w.Header().Set("Content-Type", mediaTypeJSON)
		w.Write([]byte(`{
			"total_results": 1000,
			"page": 1,
			"per_page": 2,
			"photos": [
				{"id": 1181292, "width": 3756, "height": 5627, "photographer": "Alex", "src": {"original": "https://images.example/1181292.jpg"}},
				{"id": 1181293, "width": 4000, "height": 6000, "photographer": "Sam", "src": {"original": "https://images.example/1181293.jpg"}}
			],
			"next_page": "https://api.pexels.com/v1/search?page=2"
		}`))
	})

	opts := &PhotoSearchOptions{
		Orientation: "landscape",
		ListOptions: ListOptions{PerPage: 2},
	}
	page, _, err := client.Photos.Search(context.Background(), "red car", opts)
	if err != nil {
		t.Fatalf("Photos.Search returned error: %v", err)
	}

	if page.TotalResults != 1000 {
		t.Errorf("TotalResults = %d, want 1000", page.TotalResults)
	}
	if len(page.Photos) != 2 {
		t.Fatalf("len(Photos) = %d, want 2", len(page.Photos))
	}
	if page.Photos[0].ID != 1181292 {
		t.Errorf("Photos[0].ID = %d, want 1181292", page.Photos[0].ID)
	}
	if page.NextPage == "" {
		t.Error("NextPage is empty, want pagination link")
	}
}

func TestPhotosService_Search_NilOptions(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "cat" {
			t.Errorf("query = %q, want %q", got, "cat")
		}
		w.Header().Set("Content-Type", mediaTypeJSON)
		w.Write([]byte(`{"total_results":0,"page":1,"per_page":15,"photos":[]}`))
	})

	if _, _, err := client.Photos.Search(context.Background(), "cat", nil); err != nil {
		t.Fatalf("Photos.Search returned error: %v", err)
	}
}

func TestPhotosService_Curated(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/v1/curated", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, http.MethodGet)
		if got := r.URL.Query().Get("page"); got != "3" {
			t.Errorf("page = %q, want %q", got, "3")
		}
		w.Header().Set("Content-Type", mediaTypeJSON)
		w.Header().Set("X-Ratelimit-Limit", "20000")
		w.Header().Set("X-Ratelimit-Remaining", "19980")
		w.Write([]byte(`{"page":3,"per_page":15,"photos":[{"id":7}]}`))
	})

	page, resp, err := client.Photos.Curated(context.Background(), &ListOptions{Page: 3})
	if err != nil {
		t.Fatalf("Photos.Curated returned error: %v", err)
	}

	if page.Page != 3 {
		t.Errorf("Page = %d, want 3", page.Page)
	}
	if resp.Rate == nil {
		t.Fatal("Response.Rate = nil, want snapshot")
	}
	if resp.Rate.Remaining != 19980 {
		t.Errorf("Rate.Remaining = %d, want 19980", resp.Rate.Remaining)
	}
}

func TestPhotosService_Get(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/v1/photos/1181292", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, http.MethodGet)
		w.Header().Set("Content-Type", mediaTypeJSON)
		w.Write([]byte(`{"id":1181292,"width":3756,"height":5627,"photographer":"Alex","alt":"A red car"}`))
	})

	photo, _, err := client.Photos.Get(context.Background(), 1181292)
	if err != nil {
		t.Fatalf("Photos.Get returned error: %v", err)
	}

	if photo.ID != 1181292 {
		t.Errorf("ID = %d, want 1181292", photo.ID)
	}
	if photo.Alt != "A red car" {
		t.Errorf("Alt = %q, want %q", photo.Alt, "A red car")
	}
}

func TestPhotosService_Get_NotFound(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/v1/photos/999", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":404,"error":"Not Found"}`))
	})

	_, _, err := client.Photos.Get(context.Background(), 999)
	if err == nil {
		t.Fatal("Photos.Get expected error, got nil")
	}

	apiErr, ok := err.(*ErrorResponse)
	if !ok {
		t.Fatalf("error type = %T, want *ErrorResponse", err)
	}
	if apiErr.Message != "Resource not found." {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Resource not found.")
	}
}

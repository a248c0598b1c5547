package pexels

import (
	"context"
	"net/http"
	"testing"
)

func TestVideosService_Search(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/videos/search", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, http.MethodGet)
		q := r.URL.Query()
		if got := q.Get("query"); got != "ocean waves" {
			t.Errorf("query = %q, want %q", got, "ocean waves")
		}
		if got := q.Get("size"); got != "medium" {
			t.Errorf("size = %q, want %q", got, "medium")
		}
		w.Header().Set("Content-Type", mediaTypeJSON)
		w.Write([]byte(`{
			"total_results": 500,
			"page": 1,
			"per_page": 15,
			"videos": [{"id": 2499611, "duration": 22, "video_files": [{"id": 1, "quality": "hd", "link": "https://videos.example/hd.mp4"}]}]
		}`))
	})

	page, _, err := client.Videos.Search(context.Background(), "ocean waves", &VideoSearchOptions{Size: "medium"})
	if err != nil {
		t.Fatalf("Videos.Search returned error: %v", err)
	}

	if page.TotalResults != 500 {
		t.Errorf("TotalResults = %d, want 500", page.TotalResults)
	}
	if len(page.Videos) != 1 || page.Videos[0].ID != 2499611 {
		t.Errorf("Videos = %+v, want one video with ID 2499611", page.Videos)
	}
}

func TestVideosService_Popular(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/videos/popular", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, http.MethodGet)
		q := r.URL.Query()
		if got := q.Get("min_width"); got != "1920" {
			t.Errorf("min_width = %q, want %q", got, "1920")
		}
		if got := q.Get("max_duration"); got != "60" {
			t.Errorf("max_duration = %q, want %q", got, "60")
		}
		if _, ok := q["min_height"]; ok {
			t.Error("min_height parameter sent, want omitted")
		}
		w.Header().Set("Content-Type", mediaTypeJSON)
		w.Write([]byte(`{"page":1,"per_page":15,"videos":[]}`))
	})

	opts := &PopularVideoOptions{MinWidth: 1920, MaxDuration: 60}
	if _, _, err := client.Videos.Popular(context.Background(), opts); err != nil {
		t.Fatalf("Videos.Popular returned error: %v", err)
	}
}

func TestVideosService_Get(t *testing.T) {
	client, mux := setup(t)

	// The upstream path doubles the "videos" segment.
	mux.HandleFunc("/videos/videos/2499611", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, http.MethodGet)
		if got := r.URL.Path; got != "/videos/videos/2499611" {
			t.Errorf("Path = %q, want %q", got, "/videos/videos/2499611")
		}
		w.Header().Set("Content-Type", mediaTypeJSON)
		w.Write([]byte(`{
			"id": 2499611,
			"width": 1080,
			"height": 1920,
			"duration": 22,
			"user": {"id": 680589, "name": "Joey"},
			"video_files": [
				{"id": 125004, "quality": "hd", "file_type": "video/mp4", "link": "https://videos.example/hd.mp4"},
				{"id": 125005, "quality": "sd", "file_type": "video/mp4", "link": "https://videos.example/sd.mp4"}
			]
		}`))
	})

	video, _, err := client.Videos.Get(context.Background(), 2499611)
	if err != nil {
		t.Fatalf("Videos.Get returned error: %v", err)
	}

	if video.ID != 2499611 {
		t.Errorf("ID = %d, want 2499611", video.ID)
	}
	if video.User == nil || video.User.Name != "Joey" {
		t.Errorf("User = %+v, want name Joey", video.User)
	}
	if len(video.VideoFiles) != 2 {
		t.Errorf("len(VideoFiles) = %d, want 2", len(video.VideoFiles))
	}
}

func TestVideosService_Get_NotFound(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/videos/videos/999", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, _, err := client.Videos.Get(context.Background(), 999)
	if err == nil {
		t.Fatal("Videos.Get expected error, got nil")
	}

	apiErr, ok := err.(*ErrorResponse)
	if !ok {
		t.Fatalf("error type = %T, want *ErrorResponse", err)
	}
	if apiErr.Message != "Resource not found." {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Resource not found.")
	}
}

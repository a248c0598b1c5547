package pexels

// ListOptions specifies the pagination parameters shared by all list
// endpoints. The upstream API accepts pages starting at 1 and up to 80
// results per page; values are passed through without local validation.
type ListOptions struct {
	Page    int `url:"page,omitempty"`
	PerPage int `url:"per_page,omitempty"`
}

// PhotoSearchOptions specifies the optional parameters to
// PhotosService.Search.
type PhotoSearchOptions struct {
	// Orientation of the results: landscape, portrait or square.
	Orientation string `url:"orientation,omitempty"`

	// Size is the minimum photo size: large, medium or small.
	Size string `url:"size,omitempty"`

	// Color filters results by a named color or hex code.
	Color string `url:"color,omitempty"`

	// Locale of the search query, e.g. "en-US".
	Locale string `url:"locale,omitempty"`

	ListOptions
}

// VideoSearchOptions specifies the optional parameters to
// VideosService.Search.
type VideoSearchOptions struct {
	Orientation string `url:"orientation,omitempty"`
	Size        string `url:"size,omitempty"`
	Locale      string `url:"locale,omitempty"`

	ListOptions
}

// PopularVideoOptions specifies the optional parameters to
// VideosService.Popular. Dimensions are pixels, durations seconds.
type PopularVideoOptions struct {
	MinWidth    int `url:"min_width,omitempty"`
	MinHeight   int `url:"min_height,omitempty"`
	MinDuration int `url:"min_duration,omitempty"`
	MaxDuration int `url:"max_duration,omitempty"`

	ListOptions
}

// CollectionMediaOptions specifies the optional parameters to
// CollectionsService.Media.
type CollectionMediaOptions struct {
	// Type restricts results to "photos" or "videos".
	Type string `url:"type,omitempty"`

	// Sort orders results "asc" or "desc".
	Sort string `url:"sort,omitempty"`

	ListOptions
}

// Photo represents a Pexels photo. Fields mirror the upstream JSON and
// are passed through without reshaping.
type Photo struct {
	ID              int64        `json:"id"`
	Width           int          `json:"width"`
	Height          int          `json:"height"`
	URL             string       `json:"url"`
	Photographer    string       `json:"photographer"`
	PhotographerURL string       `json:"photographer_url"`
	PhotographerID  int64        `json:"photographer_id"`
	AvgColor        string       `json:"avg_color"`
	Src             *PhotoSource `json:"src"`
	Liked           bool         `json:"liked"`
	Alt             string       `json:"alt"`
}

// PhotoSource holds the download links for the available renditions of
// a photo.
type PhotoSource struct {
	Original  string `json:"original"`
	Large2x   string `json:"large2x"`
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Small     string `json:"small"`
	Portrait  string `json:"portrait"`
	Landscape string `json:"landscape"`
	Tiny      string `json:"tiny"`
}

// SourceBySize returns the download link for the requested rendition.
// When the requested size is absent (or unrecognized) it leniently
// falls back to the original rendition, mirroring upstream behavior.
func (p *Photo) SourceBySize(size string) string {
	if p.Src == nil {
		return ""
	}
	var link string
	switch size {
	case "original":
		link = p.Src.Original
	case "large2x":
		link = p.Src.Large2x
	case "large":
		link = p.Src.Large
	case "medium":
		link = p.Src.Medium
	case "small":
		link = p.Src.Small
	case "portrait":
		link = p.Src.Portrait
	case "landscape":
		link = p.Src.Landscape
	case "tiny":
		link = p.Src.Tiny
	}
	if link == "" {
		link = p.Src.Original
	}
	return link
}

// PhotoPage is a paginated photo result set.
type PhotoPage struct {
	TotalResults int      `json:"total_results"`
	Page         int      `json:"page"`
	PerPage      int      `json:"per_page"`
	Photos       []*Photo `json:"photos"`
	NextPage     string   `json:"next_page,omitempty"`
	PrevPage     string   `json:"prev_page,omitempty"`
}

// Video represents a Pexels video.
type Video struct {
	ID            int64           `json:"id"`
	Width         int             `json:"width"`
	Height        int             `json:"height"`
	URL           string          `json:"url"`
	Image         string          `json:"image"`
	Duration      int             `json:"duration"`
	User          *VideoUser      `json:"user"`
	VideoFiles    []*VideoFile    `json:"video_files"`
	VideoPictures []*VideoPicture `json:"video_pictures"`
}

// VideoFile is one encoded rendition of a video.
type VideoFile struct {
	ID       int64   `json:"id"`
	Quality  string  `json:"quality"`
	FileType string  `json:"file_type"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	FPS      float64 `json:"fps"`
	Link     string  `json:"link"`
}

// VideoPicture is a preview frame of a video.
type VideoPicture struct {
	ID      int64  `json:"id"`
	Nr      int    `json:"nr"`
	Picture string `json:"picture"`
}

// VideoUser identifies the videographer.
type VideoUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FileByQuality returns the video file with the requested quality
// ("hd", "sd", ...). When no file matches it leniently falls back to
// the first available file; nil is returned only when the video has no
// files at all.
func (v *Video) FileByQuality(quality string) *VideoFile {
	for _, f := range v.VideoFiles {
		if f.Quality == quality {
			return f
		}
	}
	if len(v.VideoFiles) > 0 {
		return v.VideoFiles[0]
	}
	return nil
}

// VideoPage is a paginated video result set.
type VideoPage struct {
	TotalResults int      `json:"total_results"`
	Page         int      `json:"page"`
	PerPage      int      `json:"per_page"`
	URL          string   `json:"url,omitempty"`
	Videos       []*Video `json:"videos"`
	NextPage     string   `json:"next_page,omitempty"`
	PrevPage     string   `json:"prev_page,omitempty"`
}

// Collection represents a Pexels collection. Collection IDs are opaque
// strings upstream, unlike the numeric photo and video IDs.
type Collection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	MediaCount  int    `json:"media_count"`
	PhotosCount int    `json:"photos_count"`
	VideosCount int    `json:"videos_count"`
}

// CollectionPage is a paginated collection result set.
type CollectionPage struct {
	TotalResults int           `json:"total_results"`
	Page         int           `json:"page"`
	PerPage      int           `json:"per_page"`
	Collections  []*Collection `json:"collections"`
	NextPage     string        `json:"next_page,omitempty"`
	PrevPage     string        `json:"prev_page,omitempty"`
}

// CollectionMedia is one item of a collection. The upstream API mixes
// photos and videos in a single list and tags each item with a Type of
// "Photo" or "Video"; the photo- and video-specific fields are
// populated accordingly.
type CollectionMedia struct {
	Type string `json:"type"`

	ID     int64  `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	URL    string `json:"url"`

	// Photo fields.
	Photographer    string       `json:"photographer,omitempty"`
	PhotographerURL string       `json:"photographer_url,omitempty"`
	AvgColor        string       `json:"avg_color,omitempty"`
	Src             *PhotoSource `json:"src,omitempty"`
	Alt             string       `json:"alt,omitempty"`

	// Video fields.
	Image         string          `json:"image,omitempty"`
	Duration      int             `json:"duration,omitempty"`
	User          *VideoUser      `json:"user,omitempty"`
	VideoFiles    []*VideoFile    `json:"video_files,omitempty"`
	VideoPictures []*VideoPicture `json:"video_pictures,omitempty"`
}

// CollectionMediaPage is a paginated view of a collection's media.
type CollectionMediaPage struct {
	ID           string             `json:"id"`
	TotalResults int                `json:"total_results"`
	Page         int                `json:"page"`
	PerPage      int                `json:"per_page"`
	Media        []*CollectionMedia `json:"media"`
	NextPage     string             `json:"next_page,omitempty"`
	PrevPage     string             `json:"prev_page,omitempty"`
}

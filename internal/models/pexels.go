package models

// Wire types for the Pexels video API, mirroring the fields this service
// consumes.

type PexelsUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type PexelsVideoFile struct {
	ID       int64  `json:"id"`
	Quality  string `json:"quality"`
	FileType string `json:"file_type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Link     string `json:"link"`
}

type PexelsVideoPicture struct {
	ID      int64  `json:"id"`
	Picture string `json:"picture"`
	NR      int    `json:"nr"`
}

type PexelsVideo struct {
	ID            int64                `json:"id"`
	Width         int                  `json:"width"`
	Height        int                  `json:"height"`
	URL           string               `json:"url"`
	Image         string               `json:"image"`
	Duration      *int                 `json:"duration"`
	User          *PexelsUser          `json:"user"`
	VideoFiles    []PexelsVideoFile    `json:"video_files"`
	VideoPictures []PexelsVideoPicture `json:"video_pictures"`
}

type PexelsVideosResponse struct {
	Page         int           `json:"page"`
	PerPage      int           `json:"per_page"`
	TotalResults int           `json:"total_results"`
	URL          string        `json:"url"`
	Videos       []PexelsVideo `json:"videos"`
}

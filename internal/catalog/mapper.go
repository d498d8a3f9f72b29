// Package catalog turns raw Pexels video records into catalog-shaped
// entries. Every derivation here is a pure function of the record itself:
// mapping the same video twice always yields the same id, genre and
// synthetic rating, and no input shape can make the mapper fail.
package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"popfix-backend/internal/models"
)

// IDPrefix namespaces Pexels-sourced catalog ids so they can never collide
// with locally authored movie ids.
const IDPrefix = "px-"

// UnknownDirector is used when the source record carries no author name.
const UnknownDirector = "Desconocido"

// Entry is the catalog-shaped view of one external video.
type Entry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Rating      float64  `json:"rating"`
	UserRating  *float64 `json:"userRating,omitempty"`
	Duration    *string  `json:"duration"`
	Genre       string   `json:"genre"`
	Description string   `json:"description"`
	Poster      *string  `json:"poster"`
	Source      *string  `json:"source"`
	Director    string   `json:"director"`
}

// Summary is the reduced shape served by genre browsing.
type Summary struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	Genre        string  `json:"genre"`
	Source       *string `json:"source,omitempty"`
}

// SourceOptions steers playable-source selection. When MaxWidth is set it
// takes precedence over Quality.
type SourceOptions struct {
	Quality  string // "low", "sd" (default) or "hd"
	MaxWidth int    // pixel-width ceiling, ignored unless > 0
}

const (
	QualityLow = "low"
	QualitySD  = "sd"
	QualityHD  = "hd"
)

// genreByLastDigit is a fixed policy table indexed by the last digit of the
// external id. The entries are part of the public contract; do not reorder.
var genreByLastDigit = [10]string{
	"accion",          // 0
	"drama",           // 1
	"comedia",         // 2
	"thriller",        // 3
	"terror",          // 4
	"ciencia ficcion", // 5
	"accion",          // 6
	"drama",           // 7
	"comedia",         // 8
	"thriller",        // 9
}

// LocalID returns the namespaced catalog id for an external video id.
func LocalID(videoID int64) string {
	return fmt.Sprintf("%s%d", IDPrefix, videoID)
}

// numericSeed reduces an external id to the non-negative integer every
// deterministic derivation is keyed on.
func numericSeed(videoID int64) int64 {
	if videoID == math.MinInt64 {
		return 0
	}
	if videoID < 0 {
		return -videoID
	}
	return videoID
}

// GenreForID looks the genre up from the fixed 10-entry table.
func GenreForID(videoID int64) string {
	return genreByLastDigit[numericSeed(videoID)%10]
}

// SyntheticRating derives a plausible rating in [2.1, 5.0] from the three
// decimal digits preceding the last one. It only exists to give
// freshly-ingested videos a rating before any real community rating
// accumulates; persisted ratings always win over this value.
func SyntheticRating(videoID int64) float64 {
	last3BeforeLast := (numericSeed(videoID) / 10) % 1000 // 0..999
	value := 2.1 + float64(last3BeforeLast)/999*(5.0-2.1)
	clamped := math.Min(5.0, math.Max(2.1, value))
	return Round1(clamped)
}

// Round1 rounds to one decimal place, the precision every rating in the
// system is exposed at.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatDuration renders whole seconds as "Xh Ym", "Xm" or "Zs". All
// components are floor-divided, never rounded up.
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// SelectSource picks a playable URL among the video's file variants.
// Only mp4-typed variants qualify; with none present the result is nil.
// A width ceiling picks the smallest variant at or below it, falling back
// to the smallest overall. Otherwise the quality tier decides: "low" takes
// the smallest width, "sd" the first sd-tagged variant (smallest width,
// then first encountered, as fallbacks) and "hd" the first hd-tagged
// variant (first encountered as fallback).
func SelectSource(files []models.PexelsVideoFile, opts SourceOptions) *string {
	var mp4Files []models.PexelsVideoFile
	for _, f := range files {
		if strings.Contains(strings.ToLower(f.FileType), "mp4") {
			mp4Files = append(mp4Files, f)
		}
	}
	if len(mp4Files) == 0 {
		return nil
	}

	byWidthAsc := make([]models.PexelsVideoFile, len(mp4Files))
	copy(byWidthAsc, mp4Files)
	sort.SliceStable(byWidthAsc, func(i, j int) bool {
		return byWidthAsc[i].Width < byWidthAsc[j].Width
	})

	if opts.MaxWidth > 0 {
		for _, f := range byWidthAsc {
			if f.Width <= opts.MaxWidth {
				return link(f)
			}
		}
		return link(byWidthAsc[0])
	}

	quality := opts.Quality
	if quality == "" {
		quality = QualitySD
	}

	switch quality {
	case QualityLow:
		return link(byWidthAsc[0])
	case QualitySD:
		for _, f := range mp4Files {
			if f.Quality == QualitySD {
				return link(f)
			}
		}
		if l := link(byWidthAsc[0]); l != nil {
			return l
		}
		return link(mp4Files[0])
	default: // hd
		for _, f := range mp4Files {
			if f.Quality == QualityHD {
				return link(f)
			}
		}
		return link(mp4Files[0])
	}
}

func link(f models.PexelsVideoFile) *string {
	if f.Link == "" {
		return nil
	}
	l := f.Link
	return &l
}

// MapVideo transforms one raw Pexels video into a catalog entry. It never
// fails: absent inputs degrade to nil fields.
func MapVideo(video models.PexelsVideo, opts SourceOptions) Entry {
	entry := Entry{
		ID:          LocalID(video.ID),
		Title:       titleFor(video),
		Rating:      SyntheticRating(video.ID),
		Genre:       GenreForID(video.ID),
		Description: descriptionFor(video),
		Poster:      posterFor(video),
		Source:      SelectSource(video.VideoFiles, opts),
		Director:    UnknownDirector,
	}
	if video.User != nil && video.User.Name != "" {
		entry.Director = video.User.Name
	}
	if video.Duration != nil {
		d := FormatDuration(*video.Duration)
		entry.Duration = &d
	}
	return entry
}

// MapVideoSummary maps a video found through a genre search. The genre is
// the searched one, not a derived value, and the source is always picked at
// the sd tier.
func MapVideoSummary(video models.PexelsVideo, genre string) Summary {
	summary := Summary{
		ID:     LocalID(video.ID),
		Title:  titleFor(video),
		Genre:  genre,
		Source: SelectSource(video.VideoFiles, SourceOptions{Quality: QualitySD}),
	}
	if p := posterFor(video); p != nil {
		summary.ThumbnailURL = p
	}
	return summary
}

func titleFor(video models.PexelsVideo) string {
	if video.User != nil && video.User.Name != "" {
		return fmt.Sprintf("Video %d by %s", video.ID, video.User.Name)
	}
	return fmt.Sprintf("Video %d", video.ID)
}

func descriptionFor(video models.PexelsVideo) string {
	if video.URL != "" {
		return video.URL
	}
	return fmt.Sprintf("Pexels video %d", video.ID)
}

func posterFor(video models.PexelsVideo) *string {
	if video.Image != "" {
		img := video.Image
		return &img
	}
	if len(video.VideoPictures) > 0 && video.VideoPictures[0].Picture != "" {
		pic := video.VideoPictures[0].Picture
		return &pic
	}
	return nil
}

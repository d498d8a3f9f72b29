package catalog

import (
	"math"
	"testing"

	"popfix-backend/internal/models"
)

func TestMapVideoIsDeterministic(t *testing.T) {
	duration := 125
	video := models.PexelsVideo{
		ID:       3571264,
		URL:      "https://www.pexels.com/video/3571264/",
		Image:    "https://images.pexels.com/videos/3571264/thumb.jpg",
		Duration: &duration,
		User:     &models.PexelsUser{ID: 9, Name: "Enrique Hoyos"},
		VideoFiles: []models.PexelsVideoFile{
			{Width: 640, Quality: "sd", FileType: "video/mp4", Link: "https://cdn/sd.mp4"},
			{Width: 1920, Quality: "hd", FileType: "video/mp4", Link: "https://cdn/hd.mp4"},
		},
	}

	first := MapVideo(video, SourceOptions{})
	second := MapVideo(video, SourceOptions{})

	if first.ID != second.ID || first.Genre != second.Genre || first.Rating != second.Rating {
		t.Fatalf("mapping is not deterministic: %+v vs %+v", first, second)
	}
	if first.ID != "px-3571264" {
		t.Fatalf("expected namespaced id px-3571264, got %q", first.ID)
	}
	if first.Title != "Video 3571264 by Enrique Hoyos" {
		t.Fatalf("unexpected title %q", first.Title)
	}
	if first.Director != "Enrique Hoyos" {
		t.Fatalf("unexpected director %q", first.Director)
	}
	if first.Duration == nil || *first.Duration != "2m" {
		t.Fatalf("expected duration 2m, got %v", first.Duration)
	}
}

func TestMapVideoDegradesAbsentFields(t *testing.T) {
	entry := MapVideo(models.PexelsVideo{ID: 42}, SourceOptions{})

	if entry.Duration != nil {
		t.Fatalf("expected nil duration, got %v", *entry.Duration)
	}
	if entry.Poster != nil {
		t.Fatalf("expected nil poster, got %v", *entry.Poster)
	}
	if entry.Source != nil {
		t.Fatalf("expected nil source, got %v", *entry.Source)
	}
	if entry.Director != UnknownDirector {
		t.Fatalf("expected placeholder director, got %q", entry.Director)
	}
	if entry.Title != "Video 42" {
		t.Fatalf("unexpected title %q", entry.Title)
	}
	if entry.Description != "Pexels video 42" {
		t.Fatalf("unexpected description %q", entry.Description)
	}
}

func TestSyntheticRatingRange(t *testing.T) {
	ids := []int64{0, 1, 9, 10, 999, 1000, 9990, 123456789, -123456789, math.MaxInt64}
	for _, id := range ids {
		r := SyntheticRating(id)
		if r < 2.1 || r > 5.0 {
			t.Fatalf("rating %v for id %d outside [2.1, 5.0]", r, id)
		}
		if Round1(r) != r {
			t.Fatalf("rating %v for id %d not rounded to one decimal", r, id)
		}
	}

	// Boundary digits: (seed/10) mod 1000 == 0 maps to the low end, 999 to the top.
	if got := SyntheticRating(5); got != 2.1 {
		t.Fatalf("expected 2.1 for id 5, got %v", got)
	}
	if got := SyntheticRating(9995); got != 5.0 {
		t.Fatalf("expected 5.0 for id 9995, got %v", got)
	}
}

func TestGenreTable(t *testing.T) {
	cases := []struct {
		id   int64
		want string
	}{
		{10, "accion"},
		{11, "drama"},
		{12, "comedia"},
		{13, "thriller"},
		{14, "terror"},
		{15, "ciencia ficcion"},
		{16, "accion"},
		{17, "drama"},
		{18, "comedia"},
		{19, "thriller"},
		{-15, "ciencia ficcion"}, // negative ids derive from the absolute value
	}
	for _, tc := range cases {
		if got := GenreForID(tc.id); got != tc.want {
			t.Fatalf("genre for id %d: expected %q, got %q", tc.id, tc.want, got)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{59, "59s"},
		{60, "1m"},
		{61, "1m"},
		{3599, "59m"},
		{3600, "1h 0m"},
		{3661, "1h 1m"},
		{8040, "2h 14m"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.seconds); got != tc.want {
			t.Fatalf("FormatDuration(%d): expected %q, got %q", tc.seconds, tc.want, got)
		}
	}
}

func TestSelectSource(t *testing.T) {
	files := []models.PexelsVideoFile{
		{Width: 320, Quality: "sd", FileType: "video/mp4", Link: "sd-320"},
		{Width: 1280, Quality: "hd", FileType: "video/mp4", Link: "hd-1280"},
	}

	if got := SelectSource(files, SourceOptions{}); got == nil || *got != "sd-320" {
		t.Fatalf("default tier should pick the sd link, got %v", got)
	}
	if got := SelectSource(files, SourceOptions{MaxWidth: 500}); got == nil || *got != "sd-320" {
		t.Fatalf("maxWidth 500 should pick the 320-wide link, got %v", got)
	}
	if got := SelectSource(files, SourceOptions{Quality: QualityLow}); got == nil || *got != "sd-320" {
		t.Fatalf("low tier should pick the smallest-width link, got %v", got)
	}
	if got := SelectSource(files, SourceOptions{Quality: QualityHD}); got == nil || *got != "hd-1280" {
		t.Fatalf("hd tier should pick the hd link, got %v", got)
	}
}

func TestSelectSourceFallbacks(t *testing.T) {
	// No mp4 variants at all: selection yields absent.
	webm := []models.PexelsVideoFile{{Width: 640, Quality: "sd", FileType: "video/webm", Link: "webm"}}
	if got := SelectSource(webm, SourceOptions{}); got != nil {
		t.Fatalf("expected nil source without mp4 variants, got %v", *got)
	}

	// Ceiling below every variant: fall back to the smallest overall.
	files := []models.PexelsVideoFile{
		{Width: 960, Quality: "sd", FileType: "video/mp4", Link: "sd-960"},
		{Width: 1920, Quality: "hd", FileType: "video/mp4", Link: "hd-1920"},
	}
	if got := SelectSource(files, SourceOptions{MaxWidth: 500}); got == nil || *got != "sd-960" {
		t.Fatalf("ceiling below all widths should pick smallest overall, got %v", got)
	}

	// hd requested but untagged: first encountered wins.
	untagged := []models.PexelsVideoFile{
		{Width: 1920, FileType: "video/mp4", Link: "first"},
		{Width: 640, FileType: "video/mp4", Link: "second"},
	}
	if got := SelectSource(untagged, SourceOptions{Quality: QualityHD}); got == nil || *got != "first" {
		t.Fatalf("hd fallback should pick the first variant, got %v", got)
	}

	// sd requested but untagged: smallest width wins.
	if got := SelectSource(untagged, SourceOptions{Quality: QualitySD}); got == nil || *got != "second" {
		t.Fatalf("sd fallback should pick the smallest-width variant, got %v", got)
	}
}

func TestMapVideoSummary(t *testing.T) {
	video := models.PexelsVideo{
		ID:    77,
		Image: "https://images.pexels.com/videos/77/thumb.jpg",
		VideoFiles: []models.PexelsVideoFile{
			{Width: 640, Quality: "sd", FileType: "video/mp4", Link: "sd-640"},
		},
	}

	s := MapVideoSummary(video, "drama")
	if s.ID != "px-77" {
		t.Fatalf("unexpected id %q", s.ID)
	}
	if s.Genre != "drama" {
		t.Fatalf("summary genre must echo the searched genre, got %q", s.Genre)
	}
	if s.Source == nil || *s.Source != "sd-640" {
		t.Fatalf("expected sd source, got %v", s.Source)
	}
}

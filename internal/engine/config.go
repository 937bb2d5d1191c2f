package engine

// DefaultYouTubeAPIBase is the root endpoint of the YouTube Data API.
const DefaultYouTubeAPIBase = "https://www.googleapis.com/"

// Config holds all engine configuration, injected from main.
type Config struct {
	YouTubeAPIKey  string
	YouTubeAPIBase string // root endpoint; empty = DefaultYouTubeAPIBase
}

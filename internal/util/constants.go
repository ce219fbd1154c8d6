package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeVideo = "video/"
	MimeImage = "image/"
)

// PlaceholderBannerURL is used when banner enrichment fails; the backfill
// script retries these records later.
const PlaceholderBannerURL = "/static/placeholder-banner.png"

var (
	AllowedVideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm"}
	AllowedImageExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}
)

package model

type LessonStatus string

const (
	LessonLocked   LessonStatus = "Locked"
	LessonCurrent  LessonStatus = "Current"
	LessonFinished LessonStatus = "Finished"
)

type LessonView struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      LessonStatus `json:"status"`
}

type ChapterView struct {
	Title   string       `json:"title"`
	Lessons []LessonView `json:"lessons"`
}

// CourseView is the detail projection of a persisted course, rebuilt on every
// read. Duration is the accumulated chapter time; ChaptersCount the stored
// chapter count. Lessons carry no persisted progress, so every status is
// Locked for now.
// swagger:model CourseView
type CourseView struct {
	ID            uint          `json:"id"`
	CID           string        `json:"cid"`
	Topic         string        `json:"topic"`
	Category      string        `json:"category"`
	Description   string        `json:"description"`
	Date          string        `json:"date"`
	Duration      string        `json:"duration"`
	ChaptersCount int           `json:"chaptersCount"`
	Difficulty    CourseLevel   `json:"difficulty"`
	IncludeVideo  bool          `json:"includeVideo"`
	BannerURL     string        `json:"bannerurl"`
	Status        CourseStatus  `json:"status"`
	ChaptersData  []ChapterView `json:"chaptersData"`
}

// CourseSummary is the list-card projection. ChapterLabel is the
// "<n> Chapters" badge; the time-based duration lives on CourseView only.
// swagger:model CourseSummary
type CourseSummary struct {
	ID           uint         `json:"id"`
	CID          string       `json:"cid"`
	Topic        string       `json:"topic"`
	Category     string       `json:"category"`
	Description  string       `json:"description"`
	Outline      string       `json:"outline"`
	Date         string       `json:"date"`
	Status       CourseStatus `json:"status"`
	ChapterLabel string       `json:"chapterLabel"`
	Difficulty   CourseLevel  `json:"difficulty"`
	Chapters     int          `json:"chapters"`
	HasVideo     bool         `json:"hasVideo"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// swagger:model DashboardStats
type DashboardStats struct {
	TotalWorkers      int64           `json:"totalWorkers"`
	ActiveWorkers     int64           `json:"activeWorkers"`
	PendingWorkers    int64           `json:"pendingWorkers"`
	TotalCourses      int64           `json:"totalCourses"`
	CoursesByCategory []CategoryCount `json:"coursesByCategory"`
	RecentCourses     []CourseSummary `json:"recentCourses"`
}

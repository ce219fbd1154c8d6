package model

import (
	"gorm.io/datatypes"
)

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

type CourseStatus string

const (
	CoursePublished CourseStatus = "Published"
)

// CourseDraft is the user-authored creation form. It only lives for the span
// of one generation attempt.
// swagger:model CourseDraft
type CourseDraft struct {
	Name         string      `json:"name" binding:"required"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	Level        CourseLevel `json:"level" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
	IncludeVideo bool        `json:"includeVideo"`
	NoOfChapters int         `json:"noOfChapters" binding:"required,min=1,max=15"`
}

// GeneratedChapter and GeneratedCourse form the wire contract the text model
// must satisfy. Duration is free text ("2h 30m").
type GeneratedChapter struct {
	ChapterName string   `json:"chapterName"`
	Duration    string   `json:"duration"`
	Topics      []string `json:"topics"`
	ImagePrompt string   `json:"imagePrompt"`
}

type GeneratedCourse struct {
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	Category          string             `json:"category"`
	Level             CourseLevel        `json:"level"`
	IncludeVideo      bool               `json:"includeVideo"`
	NoOfChapters      int                `json:"noOfChapters"`
	BannerImagePrompt string             `json:"bannerImagePrompt"`
	Chapters          []GeneratedChapter `json:"chapters"`
}

// Course is the persisted record. CID is generated client side before the
// insert so callers can navigate without waiting for the assigned ID. The
// record is write-once from the generation pipeline; only banner replacement
// and deletion touch it afterwards.
// swagger:model Course
type Course struct {
	BaseModel
	CID          string                              `gorm:"column:cid;size:36;uniqueIndex;not null" json:"cid"`
	Name         string                              `gorm:"size:255;not null" json:"name"`
	Category     string                              `gorm:"size:100" json:"category"`
	Description  string                              `gorm:"type:text" json:"description"`
	Chapters     int                                 `gorm:"not null" json:"chapters"`
	Level        CourseLevel                         `gorm:"size:20" json:"level"`
	IncludeVideo bool                                `gorm:"column:include_video" json:"includeVideo"`
	CourseJSON   datatypes.JSONType[GeneratedCourse] `gorm:"column:course_json" json:"courseJson"`
	BannerURL    string                              `gorm:"column:bannerurl;size:512" json:"bannerurl"`
	Status       CourseStatus                        `gorm:"size:20;default:'Published'" json:"status"`
}

func (Course) TableName() string {
	return "courses"
}

type AssetKind string

const (
	AssetBanner AssetKind = "banner"
	AssetVideo  AssetKind = "video"
)

// CourseAsset records uploaded media attached to a course: replacement
// banners and chapter videos. Duration is probed from the file, in seconds.
// swagger:model CourseAsset
type CourseAsset struct {
	BaseModel
	CourseID uint      `gorm:"index;not null" json:"courseId"`
	Kind     AssetKind `gorm:"size:20;not null" json:"kind"`
	Chapter  int       `json:"chapter"`
	URL      string    `gorm:"size:512" json:"url"`
	Duration float64   `json:"duration"`
	Size     int64     `json:"size"`
}

func (CourseAsset) TableName() string {
	return "course_assets"
}

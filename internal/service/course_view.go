package service

import (
	"course_admin_backend/internal/model"
	"course_admin_backend/internal/util"
	"encoding/json"
	"fmt"
)

// NormalizeCourse rebuilds the detail view from a persisted record. The
// projection is derived fresh on every call and never written back, so
// normalizing twice yields the same view.
func NormalizeCourse(record *model.Course) *model.CourseView {
	generated := record.CourseJSON.Data()

	chaptersData := make([]model.ChapterView, 0, len(generated.Chapters))
	for _, ch := range generated.Chapters {
		lessons := make([]model.LessonView, 0, len(ch.Topics))
		for _, topic := range ch.Topics {
			lessons = append(lessons, model.LessonView{
				Title:       topic,
				Description: "Learn about " + topic,
				Status:      model.LessonLocked,
			})
		}
		chaptersData = append(chaptersData, model.ChapterView{
			Title:   ch.ChapterName,
			Lessons: lessons,
		})
	}

	return &model.CourseView{
		ID:            record.ID,
		CID:           record.CID,
		Topic:         record.Name,
		Category:      record.Category,
		Description:   record.Description,
		Date:          record.CreatedAt.Format(util.DateFormat),
		Duration:      util.ParseTotalDuration(generated.Chapters),
		ChaptersCount: record.Chapters,
		Difficulty:    record.Level,
		IncludeVideo:  record.IncludeVideo,
		BannerURL:     record.BannerURL,
		Status:        record.Status,
		ChaptersData:  chaptersData,
	}
}

// ProjectCourses maps records to list cards, preserving input order. The
// Outline field holds the chapter array re-serialized as indented JSON, or
// "[]" when the stored payload has none.
func ProjectCourses(records []model.Course) []model.CourseSummary {
	summaries := make([]model.CourseSummary, 0, len(records))
	for i := range records {
		record := &records[i]
		generated := record.CourseJSON.Data()

		outline := "[]"
		if generated.Chapters != nil {
			if data, err := json.MarshalIndent(generated.Chapters, "", "  "); err == nil {
				outline = string(data)
			}
		}

		summaries = append(summaries, model.CourseSummary{
			ID:           record.ID,
			CID:          record.CID,
			Topic:        record.Name,
			Category:     record.Category,
			Description:  record.Description,
			Outline:      outline,
			Date:         record.CreatedAt.Format(util.DateFormat),
			Status:       record.Status,
			ChapterLabel: fmt.Sprintf("%d Chapters", record.Chapters),
			Difficulty:   record.Level,
			Chapters:     record.Chapters,
			HasVideo:     record.IncludeVideo,
		})
	}
	return summaries
}

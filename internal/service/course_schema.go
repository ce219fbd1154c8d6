package service

import (
	"bytes"
	"course_admin_backend/internal/model"
	"course_admin_backend/internal/util"
	"encoding/json"
	"strings"
)

// SchemaError wraps a schema sentinel with the raw completion text so the
// caller can log what the model actually produced.
type SchemaError struct {
	Reason error
	Raw    string
}

func (e *SchemaError) Error() string {
	return e.Reason.Error()
}

func (e *SchemaError) Unwrap() error {
	return e.Reason
}

// stripCodeFence removes a leading/trailing markdown fence that models
// sometimes wrap JSON in, plus surrounding whitespace. Nothing inside the
// payload is repaired.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}
	return s
}

type courseEnvelope struct {
	Course json.RawMessage `json:"course"`
}

type courseHead struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	Level             string          `json:"level"`
	IncludeVideo      bool            `json:"includeVideo"`
	NoOfChapters      int             `json:"noOfChapters"`
	BannerImagePrompt string          `json:"bannerImagePrompt"`
	Chapters          json.RawMessage `json:"chapters"`
}

// ParseGeneratedCourse validates the model's completion in stages so each
// failure mode maps to a distinct sentinel:
//
//	malformed JSON      -> util.ErrMalformedJSON
//	no "course" object  -> util.ErrMissingCourse
//	bad chapters array  -> util.ErrInvalidChapters
//	wrong chapter count -> util.ErrChapterCountMismatch
//
// Every error is a *SchemaError carrying the cleaned raw text.
func ParseGeneratedCourse(raw string) (*model.GeneratedCourse, error) {
	cleaned := stripCodeFence(raw)

	var envelope courseEnvelope
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return nil, &SchemaError{Reason: util.ErrMalformedJSON, Raw: cleaned}
	}

	if len(envelope.Course) == 0 || bytes.Equal(bytes.TrimSpace(envelope.Course), []byte("null")) {
		return nil, &SchemaError{Reason: util.ErrMissingCourse, Raw: cleaned}
	}

	var head courseHead
	if err := json.Unmarshal(envelope.Course, &head); err != nil {
		return nil, &SchemaError{Reason: util.ErrMissingCourse, Raw: cleaned}
	}

	if len(head.Chapters) == 0 {
		return nil, &SchemaError{Reason: util.ErrInvalidChapters, Raw: cleaned}
	}

	var chapters []model.GeneratedChapter
	if err := json.Unmarshal(head.Chapters, &chapters); err != nil {
		return nil, &SchemaError{Reason: util.ErrInvalidChapters, Raw: cleaned}
	}
	if chapters == nil {
		return nil, &SchemaError{Reason: util.ErrInvalidChapters, Raw: cleaned}
	}

	if len(chapters) != head.NoOfChapters {
		return nil, &SchemaError{Reason: util.ErrChapterCountMismatch, Raw: cleaned}
	}

	return &model.GeneratedCourse{
		Name:              head.Name,
		Description:       head.Description,
		Category:          head.Category,
		Level:             model.CourseLevel(head.Level),
		IncludeVideo:      head.IncludeVideo,
		NoOfChapters:      head.NoOfChapters,
		BannerImagePrompt: head.BannerImagePrompt,
		Chapters:          chapters,
	}, nil
}

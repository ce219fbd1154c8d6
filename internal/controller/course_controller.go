package controller

import (
	"course_admin_backend/internal/model"
	"course_admin_backend/internal/service"
	"course_admin_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
	AssetService  *service.AssetService
}

func NewCourseController(courseService *service.CourseService, assetService *service.AssetService) *CourseController {
	return &CourseController{
		CourseService: courseService,
		AssetService:  assetService,
	}
}

// Generate godoc
// @Summary Generate a new course
// @Description Run the AI generation pipeline for a course draft and persist the result
// @Tags courses
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body model.CourseDraft true "Course draft"
// @Success 201 {object} util.Response{data=object} "Course created"
// @Failure 400 {object} util.Response "Invalid draft or generation failure"
// @Failure 409 {object} util.Response "A generation is already running"
// @Router /api/courses/generate [post]
func (c *CourseController) Generate(ctx *gin.Context) {
	var draft model.CourseDraft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.CourseService.Generate(ctx.Request.Context(), &draft)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrGenerationInFlight):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrCourseNameRequired),
			errors.Is(err, util.ErrMissingAPIKey),
			errors.Is(err, util.ErrEmptyAIResponse),
			errors.Is(err, util.ErrMalformedJSON),
			errors.Is(err, util.ErrMissingCourse),
			errors.Is(err, util.ErrInvalidChapters),
			errors.Is(err, util.ErrChapterCountMismatch):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	// The refreshed list rides along so the dashboard can update in one
	// round trip. A failed re-read degrades to an empty list.
	courses, err := c.CourseService.List()
	if err != nil {
		courses = []model.CourseSummary{}
	}

	util.Created(ctx, gin.H{
		"course":  record,
		"courses": courses,
	})
}

// List godoc
// @Summary List all courses
// @Description Return dashboard summaries for every course, newest first
// @Tags courses
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.CourseSummary} "Success"
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	courses, err := c.CourseService.List()
	if err != nil {
		// Reads degrade to an empty list so the dashboard still renders.
		courses = []model.CourseSummary{}
	}
	util.Success(ctx, courses)
}

// Get godoc
// @Summary Course detail by ID
// @Description Return the normalized detail view of one course
// @Tags courses
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Course ID"
// @Success 200 {object} util.Response{data=model.CourseView} "Success"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	view, err := c.CourseService.GetView(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, view)
}

// GetByCID godoc
// @Summary Course detail by cid
// @Description Resolve a course by its pipeline-assigned cid
// @Tags courses
// @Produce  json
// @Security ApiKeyAuth
// @Param   cid path string true "Course cid"
// @Success 200 {object} util.Response{data=model.CourseView} "Success"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/cid/{cid} [get]
func (c *CourseController) GetByCID(ctx *gin.Context) {
	view, err := c.CourseService.GetViewByCID(ctx.Param("cid"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, view)
}

// Delete godoc
// @Summary Delete a course
// @Tags courses
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Course ID"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	if err := c.CourseService.Delete(id); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"message": "course deleted"})
}

// UploadBanner godoc
// @Summary Replace a course banner
// @Description Upload an image and swap it in as the course banner
// @Tags courses
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Course ID"
// @Param   file formData file true "Banner image"
// @Success 201 {object} util.Response{data=model.CourseAsset} "Banner replaced"
// @Failure 400 {object} util.Response "Unsupported file"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id}/banner [post]
func (c *CourseController) UploadBanner(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file")
		return
	}

	asset, err := c.AssetService.UploadBanner(ctx.Request.Context(), id, file)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidImageExt):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, asset)
}

// UploadChapterVideo godoc
// @Summary Upload a chapter video
// @Description Attach a video to one chapter of a course
// @Tags courses
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Course ID"
// @Param   chapter formData int true "Chapter number, 1-based"
// @Param   file formData file true "Video file"
// @Success 201 {object} util.Response{data=model.CourseAsset} "Video stored"
// @Failure 400 {object} util.Response "Unsupported file or chapter out of range"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id}/videos [post]
func (c *CourseController) UploadChapterVideo(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	chapter, err := util.ParseUint(ctx.PostForm("chapter"))
	if err != nil {
		util.BadRequest(ctx, "invalid chapter number")
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file")
		return
	}

	asset, err := c.AssetService.UploadChapterVideo(ctx.Request.Context(), id, int(chapter), file)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidVideoExt), errors.Is(err, util.ErrChapterOutOfRange):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, asset)
}

// ListAssets godoc
// @Summary List course media
// @Tags courses
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Course ID"
// @Success 200 {object} util.Response{data=[]model.CourseAsset} "Success"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id}/assets [get]
func (c *CourseController) ListAssets(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	assets, err := c.AssetService.ListByCourse(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, assets)
}

package controller

import (
	"course_admin_backend/internal/service"
	"course_admin_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type WorkerController struct {
	WorkerService *service.WorkerService
}

func NewWorkerController(workerService *service.WorkerService) *WorkerController {
	return &WorkerController{WorkerService: workerService}
}

// Create godoc
// @Summary Invite a new worker
// @Description Generate a login code, mail it, and create the worker record
// @Tags workers
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.WorkerInput true "Worker details"
// @Success 201 {object} util.Response{data=model.Worker} "Worker created"
// @Failure 400 {object} util.Response "Invalid request body"
// @Failure 409 {object} util.Response "Email already registered"
// @Failure 502 {object} util.Response "Invite mail failed"
// @Router /api/admin/workers [post]
func (c *WorkerController) Create(ctx *gin.Context) {
	var input service.WorkerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	worker, err := c.WorkerService.Create(ctx.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Conflict(ctx, err.Error())
		} else {
			util.Error(ctx, 502, "could not send invite mail, worker not created")
		}
		return
	}

	util.Created(ctx, worker)
}

// List godoc
// @Summary List workers
// @Description Search and page through workers, newest first
// @Tags workers
// @Produce  json
// @Security ApiKeyAuth
// @Param   search query string false "Match against name, email, phone or code"
// @Param   page query int false "Page number, 1-based"
// @Param   pageSize query int false "Page size"
// @Success 200 {object} util.Response{data=object} "Success"
// @Router /api/admin/workers [get]
func (c *WorkerController) List(ctx *gin.Context) {
	search := ctx.Query("search")
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))

	workers, total, err := c.WorkerService.List(search, page, pageSize)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"workers":  workers,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}

// Get godoc
// @Summary Worker detail
// @Tags workers
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Worker ID"
// @Success 200 {object} util.Response{data=model.Worker} "Success"
// @Failure 404 {object} util.Response "Worker not found"
// @Router /api/admin/workers/{id} [get]
func (c *WorkerController) Get(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid worker id")
		return
	}

	worker, err := c.WorkerService.Get(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, worker)
}

// Update godoc
// @Summary Update a worker
// @Description Change name, phone or status; email and code are immutable
// @Tags workers
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Worker ID"
// @Param   body body service.WorkerUpdate true "Fields to change"
// @Success 200 {object} util.Response{data=model.Worker} "Success"
// @Failure 400 {object} util.Response "Invalid request body"
// @Failure 404 {object} util.Response "Worker not found"
// @Router /api/admin/workers/{id} [put]
func (c *WorkerController) Update(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid worker id")
		return
	}

	var input service.WorkerUpdate
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	worker, err := c.WorkerService.Update(id, &input)
	if err != nil {
		if errors.Is(err, util.ErrWorkerNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, worker)
}

// Delete godoc
// @Summary Delete a worker
// @Tags workers
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Worker ID"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Worker not found"
// @Router /api/admin/workers/{id} [delete]
func (c *WorkerController) Delete(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid worker id")
		return
	}

	if err := c.WorkerService.Delete(id); err != nil {
		if errors.Is(err, util.ErrWorkerNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"message": "worker deleted"})
}

package service

import (
	"context"
	"course_admin_backend/internal/model"
	"course_admin_backend/internal/repository"
	"course_admin_backend/internal/util"
	"course_admin_backend/pkg/logger"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InviteSender delivers the login code; worker creation never happens
// without a delivered invite.
type InviteSender interface {
	SendInvite(ctx context.Context, name, email, code string) error
}

type WorkerService struct {
	Repo *repository.WorkerRepository
	Mail InviteSender
}

func NewWorkerService(repo *repository.WorkerRepository, mail InviteSender) *WorkerService {
	return &WorkerService{Repo: repo, Mail: mail}
}

type WorkerInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// Create issues a fresh login code, mails it, and only then inserts the
// worker. A failed mail means no row so the worker can be re-added cleanly.
func (s *WorkerService) Create(ctx context.Context, input *WorkerInput) (*model.Worker, error) {
	if _, err := s.Repo.FindByEmail(input.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	code, err := s.uniqueCode()
	if err != nil {
		return nil, err
	}

	if err := s.Mail.SendInvite(ctx, input.Name, input.Email, code); err != nil {
		logger.Log.Error("invite mail failed, worker not created",
			zap.String("email", input.Email),
			zap.Error(err))
		return nil, fmt.Errorf("sending invite mail: %w", err)
	}

	worker := &model.Worker{
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Status: model.WorkerPending,
		Code:   code,
	}

	if err := s.Repo.Create(worker); err != nil {
		return nil, err
	}

	logger.Log.Info("worker invited",
		zap.String("email", worker.Email),
		zap.Uint("id", worker.ID))

	return worker, nil
}

func (s *WorkerService) uniqueCode() (string, error) {
	for i := 0; i < 10; i++ {
		code := util.GenerateInviteCode()
		exists, err := s.Repo.CodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique invite code")
}

func (s *WorkerService) List(search string, page, pageSize int) ([]model.Worker, int64, error) {
	return s.Repo.FindAll(search, page, pageSize)
}

func (s *WorkerService) Get(id uint) (*model.Worker, error) {
	worker, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, util.ErrWorkerNotFound
	}
	return worker, nil
}

type WorkerUpdate struct {
	Name   string             `json:"name"`
	Phone  string             `json:"phone"`
	Status model.WorkerStatus `json:"status" binding:"omitempty,oneof='Pending Login' Active Inactive"`
}

// Update changes name, phone and status. Email and code are immutable after
// the invite goes out.
func (s *WorkerService) Update(id uint, input *WorkerUpdate) (*model.Worker, error) {
	worker, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, util.ErrWorkerNotFound
	}

	if input.Name != "" {
		worker.Name = input.Name
	}
	if input.Phone != "" {
		worker.Phone = input.Phone
	}
	if input.Status != "" {
		worker.Status = input.Status
	}

	if err := s.Repo.Update(worker); err != nil {
		return nil, err
	}
	return worker, nil
}

func (s *WorkerService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return util.ErrWorkerNotFound
	}
	return s.Repo.Delete(id)
}

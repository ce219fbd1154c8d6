package service

import (
	"course_admin_backend/internal/model"
	"course_admin_backend/internal/repository"
)

const recentCourseLimit = 5

type DashboardService struct {
	Workers *repository.WorkerRepository
	Courses *repository.CourseRepository
}

func NewDashboardService(workers *repository.WorkerRepository, courses *repository.CourseRepository) *DashboardService {
	return &DashboardService{Workers: workers, Courses: courses}
}

// Stats aggregates the landing-page numbers in one call.
func (s *DashboardService) Stats() (*model.DashboardStats, error) {
	totalWorkers, err := s.Workers.Count()
	if err != nil {
		return nil, err
	}

	activeWorkers, err := s.Workers.CountByStatus(model.WorkerActive)
	if err != nil {
		return nil, err
	}

	pendingWorkers, err := s.Workers.CountByStatus(model.WorkerPending)
	if err != nil {
		return nil, err
	}

	totalCourses, err := s.Courses.Count()
	if err != nil {
		return nil, err
	}

	byCategory, err := s.Courses.CountByCategory()
	if err != nil {
		return nil, err
	}

	recent, err := s.Courses.FindRecent(recentCourseLimit)
	if err != nil {
		return nil, err
	}

	return &model.DashboardStats{
		TotalWorkers:      totalWorkers,
		ActiveWorkers:     activeWorkers,
		PendingWorkers:    pendingWorkers,
		TotalCourses:      totalCourses,
		CoursesByCategory: byCategory,
		RecentCourses:     ProjectCourses(recent),
	}, nil
}

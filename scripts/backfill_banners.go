// Banner backfill script.
//
// Courses whose banner generation failed during the pipeline are stored with
// the placeholder URL. This script retries those banners from the saved
// bannerImagePrompt and writes the new URL back.
//
// Usage: go run scripts/backfill_banners.go

package main

import (
	"context"
	"course_admin_backend/internal/config"
	"course_admin_backend/internal/service"
	"course_admin_backend/internal/util"
	"course_admin_backend/pkg/database"
	"course_admin_backend/pkg/logger"
	"log"
	"time"

	"course_admin_backend/internal/repository"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	storage := service.NewStorageService(cfg)
	images := service.NewImageService(cfg.ImageGen, storage)
	courses := repository.NewCourseRepository(db)

	pending, err := courses.FindWithPlaceholderBanner(util.PlaceholderBannerURL)
	if err != nil {
		log.Fatalf("Failed to list courses with placeholder banners: %v", err)
	}

	if len(pending) == 0 {
		log.Println("No placeholder banners to backfill")
		return
	}

	log.Printf("Backfilling %d banner(s)...", len(pending))

	for i := range pending {
		course := &pending[i]
		prompt := course.CourseJSON.Data().BannerImagePrompt
		if prompt == "" {
			log.Printf("course %d (%s): no banner prompt stored, skipping", course.ID, course.Name)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.ImageGen.TimeoutSeconds)*time.Second)
		url, err := images.Generate(ctx, prompt)
		cancel()

		if err != nil {
			log.Printf("course %d (%s): banner generation failed: %v", course.ID, course.Name, err)
			continue
		}

		if err := courses.UpdateBanner(course.ID, url); err != nil {
			log.Printf("course %d (%s): banner update failed: %v", course.ID, course.Name, err)
			continue
		}

		log.Printf("course %d (%s): banner backfilled", course.ID, course.Name)
	}

	log.Println("Done")
}

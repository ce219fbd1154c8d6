package database

import (
	"course_admin_backend/internal/config"
	"course_admin_backend/internal/model"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Admin{},
		&model.Worker{},
		&model.Course{},
		&model.CourseAsset{},
	)
	if err != nil {
		return err
	}

	// Bootstrap admin so a fresh deployment can log in.
	var count int64
	db.Model(&model.Admin{}).Count(&count)
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &model.Admin{
			Name:     "Administrator",
			Email:    "admin@platform.com",
			Password: string(hashed),
		}
		if err := db.Create(admin).Error; err != nil {
			return err
		}
		log.Println("Seeded default admin account (admin@platform.com), change its password")
	}

	return nil
}

package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"remedial/internal/config"
	"remedial/internal/db"
	"remedial/internal/model"
	"remedial/internal/repository"
)

var defaultCategories = []string{
	"Programming",
	"Design",
	"Career",
	"Campus Life",
}

func main() {
	logrus.Info("starting seed script")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logrus.WithError(err).Fatal("connect database")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.ArticleCategory{}); err != nil {
		logrus.WithError(err).Fatal("auto-migrate")
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewArticleCategoryRepository(gormDB)

	admin, err := seedAdmin(ctx, userRepo)
	if err != nil {
		logrus.WithError(err).Fatal("seed admin user")
	}

	created := 0
	for _, name := range defaultCategories {
		_, err := categoryRepo.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			logrus.WithError(err).Fatal("check category")
		}

		category := &model.ArticleCategory{
			CategoryName: name,
			CreatedBy:    admin.ID,
		}
		if err := categoryRepo.Create(ctx, category); err != nil {
			logrus.WithError(err).WithField("category", name).Fatal("create category")
		}
		created++
	}

	logrus.WithField("created", created).Info("seed complete")
}

// seedAdmin creates the default admin user if it does not exist yet.
func seedAdmin(ctx context.Context, userRepo repository.UserRepository) (*model.User, error) {
	const adminEmail = "admin@remedial.local"

	existing, err := userRepo.FindByEmail(ctx, adminEmail)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin-change-me"), 10)
	if err != nil {
		return nil, err
	}

	admin := &model.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	logrus.WithField("email", adminEmail).Info("admin user created")
	return admin, nil
}

// Package seed creates demo accounts for development environments.
package seed

import (
	"context"
	"errors"

	"github.com/campuskudos/backend/internal/app/models"
	"github.com/campuskudos/backend/internal/app/repositories"
	"github.com/campuskudos/backend/internal/pkg/apperrors"
	"github.com/campuskudos/backend/internal/pkg/credits"
	"github.com/campuskudos/backend/internal/pkg/logger"
)

type demoStudent struct {
	studentID string
	name      string
	email     string
}

var demoStudents = []demoStudent{
	{"STU001", "Ananya Sharma", "ananya.sharma@campus.example"},
	{"STU002", "Rohan Iyer", "rohan.iyer@campus.example"},
	{"STU003", "Priya Patel", "priya.patel@campus.example"},
	{"STU004", "Arjun Mehta", "arjun.mehta@campus.example"},
	{"STU005", "Sneha Reddy", "sneha.reddy@campus.example"},
}

// DemoStudents inserts a fixed set of demo accounts with the full monthly
// allocation. Idempotent: accounts that already exist are skipped.
func DemoStudents(ctx context.Context, studentRepo *repositories.StudentRepository) error {
	month := credits.CurrentMonth()
	created := 0

	for _, demo := range demoStudents {
		student := &models.Student{
			StudentID:           demo.studentID,
			Name:                demo.name,
			Email:               demo.email,
			Credits:             credits.MonthlyAllocation,
			MonthlySendingLimit: credits.MonthlySendingLimit,
			LastResetMonth:      &month,
		}

		if err := studentRepo.Create(ctx, student); err != nil {
			if errors.Is(err, apperrors.ErrStudentIDAlreadyExists) ||
				errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				continue
			}
			return err
		}
		created++
	}

	logger.Info().Int("created", created).Int("total", len(demoStudents)).Msg("Demo students seeded")
	return nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskudos/backend/internal/app/models"
	"github.com/campuskudos/backend/internal/pkg/apperrors"
	"github.com/campuskudos/backend/internal/pkg/dberrors"
	"github.com/campuskudos/backend/internal/pkg/logger"
)

const studentColumns = "id, student_id, name, email, credits, monthly_sending_limit, " +
	"credits_sent_this_month, total_credits_received, last_reset_month, " +
	"previous_month_unused_credits, created_at, updated_at"

// StudentRepository handles student account database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID, &student.StudentID, &student.Name, &student.Email,
		&student.Credits, &student.MonthlySendingLimit, &student.CreditsSentThisMonth,
		&student.TotalCreditsReceived, &student.LastResetMonth,
		&student.PreviousMonthUnusedCredits, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a new student account with the default full monthly allocation.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("student_id", "name", "email", "credits", "monthly_sending_limit",
			"credits_sent_this_month", "total_credits_received", "last_reset_month",
			"previous_month_unused_credits").
		Values(student.StudentID, student.Name, student.Email, student.Credits,
			student.MonthlySendingLimit, student.CreditsSentThisMonth,
			student.TotalCreditsReceived, student.LastResetMonth,
			student.PreviousMonthUnusedCredits).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
			return apperrors.ErrStudentIDAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("studentID", student.StudentID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByStudentID retrieves a student by business student id.
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetForUpdate retrieves a student inside a transaction with a row lock, so
// that balance checks and the writes they guard see a consistent row.
func (r *StudentRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, studentID string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student for update query: %w", err)
	}

	student, err := scanStudent(tx.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student for update: %w", err)
	}

	return student, nil
}

// UpdateBalances persists all mutable balance fields of a student within a
// transaction.
func (r *StudentRepository) UpdateBalances(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("credits", student.Credits).
		Set("monthly_sending_limit", student.MonthlySendingLimit).
		Set("credits_sent_this_month", student.CreditsSentThisMonth).
		Set("total_credits_received", student.TotalCreditsReceived).
		Set("last_reset_month", student.LastResetMonth).
		Set("previous_month_unused_credits", student.PreviousMonthUnusedCredits).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"student_id": student.StudentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update balances query: %w", err)
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", student.StudentID).Msg("Error updating student balances")
		return fmt.Errorf("error updating student balances: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// ListStaleResetIDs returns ids of accounts whose last reset month differs
// from the given month token (or was never set).
func (r *StudentRepository) ListStaleResetIDs(ctx context.Context, month string) ([]string, error) {
	sql, args, err := r.sb.Select("student_id").
		From("students").
		Where(squirrel.Or{
			squirrel.NotEq{"last_reset_month": month},
			squirrel.Eq{"last_reset_month": nil},
		}).
		OrderBy("student_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build stale reset query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts needing reset: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning student id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// GetNames returns a studentId -> display name map for enrichment of
// recognition and endorsement listings.
func (r *StudentRepository) GetNames(ctx context.Context, studentIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(studentIDs))
	if len(studentIDs) == 0 {
		return names, nil
	}

	sql, args, err := r.sb.Select("student_id", "name").
		From("students").
		Where(squirrel.Eq{"student_id": studentIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get names query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("error scanning student name: %w", err)
		}
		names[id] = name
	}

	return names, rows.Err()
}

// CountAll returns the total number of student accounts.
func (r *StudentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM students").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// CountNeedingReset returns how many accounts have not been reset for the
// given month yet.
func (r *StudentRepository) CountNeedingReset(ctx context.Context, month string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM students WHERE last_reset_month IS DISTINCT FROM $1", month).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting accounts needing reset: %w", err)
	}
	return count, nil
}

// CountWithCarryForward returns how many accounts carry unused credits within
// the cap, and how many hold more than the cap (the excess is forfeited on
// their next reset).
func (r *StudentRepository) CountWithCarryForward(ctx context.Context, cap int) (within, aboveCap int64, err error) {
	err = r.db.QueryRow(ctx,
		"SELECT COUNT(*) FILTER (WHERE previous_month_unused_credits > 0 AND previous_month_unused_credits <= $1), "+
			"COUNT(*) FILTER (WHERE previous_month_unused_credits > $1) FROM students", cap).
		Scan(&within, &aboveCap)
	if err != nil {
		return 0, 0, fmt.Errorf("error counting carry-forward accounts: %w", err)
	}
	return within, aboveCap, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskudos/backend/internal/app/models"
	"github.com/campuskudos/backend/internal/pkg/apperrors"
	"github.com/campuskudos/backend/internal/pkg/logger"
)

const recognitionColumns = "id, sender_id, receiver_id, credits, message, recognition_month, created_at"

// RecognitionRepository handles recognition database operations.
// Recognition rows are immutable once created.
type RecognitionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRecognitionRepository creates a new RecognitionRepository
func NewRecognitionRepository(db *pgxpool.Pool) *RecognitionRepository {
	return &RecognitionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanRecognition(row pgx.Row) (*models.Recognition, error) {
	var rec models.Recognition
	err := row.Scan(&rec.ID, &rec.SenderID, &rec.ReceiverID, &rec.Credits,
		&rec.Message, &rec.RecognitionMonth, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create inserts a recognition record within a transaction, so it commits
// together with the balance updates of the transfer it belongs to.
func (r *RecognitionRepository) Create(ctx context.Context, tx pgx.Tx, rec *models.Recognition) error {
	sql, args, err := r.sb.Insert("recognitions").
		Columns("id", "sender_id", "receiver_id", "credits", "message", "recognition_month").
		Values(rec.ID, rec.SenderID, rec.ReceiverID, rec.Credits, rec.Message, rec.RecognitionMonth).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create recognition query: %w", err)
	}

	if err := tx.QueryRow(ctx, sql, args...).Scan(&rec.CreatedAt); err != nil {
		logger.Error().Err(err).Str("senderID", rec.SenderID).Str("receiverID", rec.ReceiverID).
			Msg("Error executing create recognition query")
		return fmt.Errorf("error creating recognition: %w", err)
	}

	return nil
}

// GetByID retrieves a recognition by its id.
func (r *RecognitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Recognition, error) {
	sql, args, err := r.sb.Select(recognitionColumns).
		From("recognitions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get recognition query: %w", err)
	}

	rec, err := scanRecognition(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecognitionNotFound
		}
		return nil, fmt.Errorf("error retrieving recognition: %w", err)
	}

	return rec, nil
}

// ListByReceiver returns recognitions received by a student, newest first.
func (r *RecognitionRepository) ListByReceiver(ctx context.Context, receiverID string, limit, offset int) ([]*models.Recognition, error) {
	return r.list(ctx, squirrel.Eq{"receiver_id": receiverID}, limit, offset)
}

// ListBySender returns recognitions sent by a student, newest first.
func (r *RecognitionRepository) ListBySender(ctx context.Context, senderID string, limit, offset int) ([]*models.Recognition, error) {
	return r.list(ctx, squirrel.Eq{"sender_id": senderID}, limit, offset)
}

func (r *RecognitionRepository) list(ctx context.Context, where squirrel.Eq, limit, offset int) ([]*models.Recognition, error) {
	sql, args, err := r.sb.Select(recognitionColumns).
		From("recognitions").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list recognitions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing recognitions: %w", err)
	}
	defer rows.Close()

	var recs []*models.Recognition
	for rows.Next() {
		rec, err := scanRecognition(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning recognition row: %w", err)
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// CountByReceiver returns the number of recognitions received by a student.
func (r *RecognitionRepository) CountByReceiver(ctx context.Context, receiverID string) (int64, error) {
	return r.count(ctx, squirrel.Eq{"receiver_id": receiverID})
}

// CountBySender returns the number of recognitions sent by a student.
func (r *RecognitionRepository) CountBySender(ctx context.Context, senderID string) (int64, error) {
	return r.count(ctx, squirrel.Eq{"sender_id": senderID})
}

func (r *RecognitionRepository) count(ctx context.Context, where squirrel.Eq) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("recognitions").
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count recognitions query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting recognitions: %w", err)
	}

	return count, nil
}

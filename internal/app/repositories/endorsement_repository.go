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
	"github.com/campuskudos/backend/internal/pkg/dberrors"
	"github.com/campuskudos/backend/internal/pkg/logger"
)

// EndorsementRepository handles endorsement database operations
type EndorsementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEndorsementRepository creates a new EndorsementRepository
func NewEndorsementRepository(db *pgxpool.Pool) *EndorsementRepository {
	return &EndorsementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an endorsement. The unique constraint on
// (recognition_id, endorser_id) is the backstop against the race between
// the service's existence pre-check and this insert; a violation surfaces
// as ErrDuplicateEndorsement, a client error.
func (r *EndorsementRepository) Create(ctx context.Context, e *models.Endorsement) error {
	sql, args, err := r.sb.Insert("endorsements").
		Columns("id", "recognition_id", "endorser_id").
		Values(e.ID, e.RecognitionID, e.EndorserID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create endorsement query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "endorsements_recognition_endorser_key") {
			return apperrors.ErrDuplicateEndorsement
		}
		logger.Error().Err(err).Str("recognitionID", e.RecognitionID.String()).
			Str("endorserID", e.EndorserID).Msg("Error executing create endorsement query")
		return fmt.Errorf("error creating endorsement: %w", err)
	}

	return nil
}

// GetByPair retrieves an endorsement by (recognitionId, endorserId).
func (r *EndorsementRepository) GetByPair(ctx context.Context, recognitionID uuid.UUID, endorserID string) (*models.Endorsement, error) {
	sql, args, err := r.sb.Select("id", "recognition_id", "endorser_id", "created_at").
		From("endorsements").
		Where(squirrel.Eq{"recognition_id": recognitionID, "endorser_id": endorserID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get endorsement query: %w", err)
	}

	var e models.Endorsement
	err = r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.RecognitionID, &e.EndorserID, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEndorsementNotFound
		}
		return nil, fmt.Errorf("error retrieving endorsement: %w", err)
	}

	return &e, nil
}

// Delete removes an endorsement by id. No ownership check is performed.
func (r *EndorsementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("endorsements").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete endorsement query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting endorsement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEndorsementNotFound
	}

	return nil
}

// ListByRecognition returns all endorsements on a recognition, newest first.
func (r *EndorsementRepository) ListByRecognition(ctx context.Context, recognitionID uuid.UUID) ([]*models.Endorsement, error) {
	sql, args, err := r.sb.Select("id", "recognition_id", "endorser_id", "created_at").
		From("endorsements").
		Where(squirrel.Eq{"recognition_id": recognitionID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list endorsements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing endorsements: %w", err)
	}
	defer rows.Close()

	var endorsements []*models.Endorsement
	for rows.Next() {
		var e models.Endorsement
		if err := rows.Scan(&e.ID, &e.RecognitionID, &e.EndorserID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning endorsement row: %w", err)
		}
		endorsements = append(endorsements, &e)
	}

	return endorsements, rows.Err()
}

package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/campuskudos/backend/internal/app/models"
	"github.com/campuskudos/backend/internal/app/models/dto"
	"github.com/campuskudos/backend/internal/app/repositories"
	"github.com/campuskudos/backend/internal/pkg/apperrors"
	"github.com/campuskudos/backend/internal/pkg/cache"
	"github.com/campuskudos/backend/internal/pkg/logger"
)

// EndorsementService handles endorsements on recognitions. Endorsements
// carry no credits; self-endorsement is permitted.
type EndorsementService struct {
	endorsements *repositories.EndorsementRepository
	recognitions *repositories.RecognitionRepository
	students     *repositories.StudentRepository
	leaderboard  *cache.LeaderboardCache
}

// NewEndorsementService creates a new endorsement service instance
func NewEndorsementService(
	endorsementRepo *repositories.EndorsementRepository,
	recognitionRepo *repositories.RecognitionRepository,
	studentRepo *repositories.StudentRepository,
	leaderboardCache *cache.LeaderboardCache,
) *EndorsementService {
	return &EndorsementService{
		endorsements: endorsementRepo,
		recognitions: recognitionRepo,
		students:     studentRepo,
		leaderboard:  leaderboardCache,
	}
}

// Create records an endorsement. The recognition must exist, and a student
// can endorse a given recognition at most once. The duplicate check runs
// twice: a friendly pre-check and the unique constraint as the backstop
// against concurrent inserts.
func (s *EndorsementService) Create(ctx context.Context, req dto.CreateEndorsementRequest) (*models.Endorsement, error) {
	if req.RecognitionID == "" || req.EndorserID == "" {
		return nil, apperrors.NewValidationError("recognitionId and endorserId are required")
	}

	recID, err := uuid.Parse(req.RecognitionID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid ID format")
	}

	if _, err := s.recognitions.GetByID(ctx, recID); err != nil {
		return nil, err
	}

	if _, err := s.endorsements.GetByPair(ctx, recID, req.EndorserID); err == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrDuplicateEndorsement,
			"You have already endorsed this recognition")
	} else if !errors.Is(err, apperrors.ErrEndorsementNotFound) {
		return nil, err
	}

	endorsement := &models.Endorsement{
		ID:            uuid.New(),
		RecognitionID: recID,
		EndorserID:    req.EndorserID,
	}
	if err := s.endorsements.Create(ctx, endorsement); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEndorsement) {
			return nil, apperrors.NewCustomError(apperrors.ErrDuplicateEndorsement,
				"You have already endorsed this recognition")
		}
		return nil, err
	}

	s.leaderboard.Invalidate(ctx)

	logger.Info().
		Str("recognitionID", recID.String()).
		Str("endorserID", req.EndorserID).
		Msg("Endorsement created")

	return endorsement, nil
}

// Delete removes an endorsement by id. There is no ownership check.
func (s *EndorsementService) Delete(ctx context.Context, id string) error {
	endorsementID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.NewValidationError("Invalid ID format")
	}

	if err := s.endorsements.Delete(ctx, endorsementID); err != nil {
		return err
	}

	s.leaderboard.Invalidate(ctx)

	logger.Info().Str("endorsementID", id).Msg("Endorsement deleted")
	return nil
}

// ListByRecognition returns all endorsements on a recognition, newest
// first, each enriched with the endorser's display name. An unknown
// recognition id simply yields an empty list.
func (s *EndorsementService) ListByRecognition(ctx context.Context, recognitionID string) (*dto.EndorsementList, error) {
	recID, err := uuid.Parse(recognitionID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid ID format")
	}

	endorsements, err := s.endorsements.ListByRecognition(ctx, recID)
	if err != nil {
		return nil, err
	}

	if len(endorsements) > 0 {
		seen := make(map[string]struct{}, len(endorsements))
		ids := make([]string, 0, len(endorsements))
		for _, e := range endorsements {
			if _, ok := seen[e.EndorserID]; !ok {
				seen[e.EndorserID] = struct{}{}
				ids = append(ids, e.EndorserID)
			}
		}

		names, err := s.students.GetNames(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, e := range endorsements {
			e.Endorser = &models.StudentRef{StudentID: e.EndorserID, Name: nameOrUnknown(names, e.EndorserID)}
		}
	}

	return &dto.EndorsementList{
		Endorsements: endorsements,
		Count:        len(endorsements),
	}, nil
}

// Check reports whether a student has already endorsed a recognition.
func (s *EndorsementService) Check(ctx context.Context, recognitionID, endorserID string) (*dto.EndorsementCheck, error) {
	recID, err := uuid.Parse(recognitionID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid ID format")
	}

	endorsement, err := s.endorsements.GetByPair(ctx, recID, endorserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEndorsementNotFound) {
			return &dto.EndorsementCheck{HasEndorsed: false}, nil
		}
		return nil, err
	}

	return &dto.EndorsementCheck{HasEndorsed: true, Endorsement: endorsement}, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/campuskudos/backend/internal/app/models"
	"github.com/campuskudos/backend/internal/app/models/dto"
	"github.com/campuskudos/backend/internal/app/repositories"
	"github.com/campuskudos/backend/internal/db"
	"github.com/campuskudos/backend/internal/pkg/apperrors"
	"github.com/campuskudos/backend/internal/pkg/cache"
	"github.com/campuskudos/backend/internal/pkg/credits"
	"github.com/campuskudos/backend/internal/pkg/helpers"
	"github.com/campuskudos/backend/internal/pkg/logger"
)

// RecognitionService handles credit transfers between students and the
// read paths over recognition records.
type RecognitionService struct {
	db           *db.PostgresDB
	students     *repositories.StudentRepository
	recognitions *repositories.RecognitionRepository
	leaderboard  *cache.LeaderboardCache
}

// NewRecognitionService creates a new recognition service instance
func NewRecognitionService(
	database *db.PostgresDB,
	studentRepo *repositories.StudentRepository,
	recognitionRepo *repositories.RecognitionRepository,
	leaderboardCache *cache.LeaderboardCache,
) *RecognitionService {
	return &RecognitionService{
		db:           database,
		students:     studentRepo,
		recognitions: recognitionRepo,
		leaderboard:  leaderboardCache,
	}
}

// validateTransferRequest checks the request-shape preconditions in order:
// required fields, positive amount, message length, no self-recognition.
// A zero credits value counts as a missing field.
func validateTransferRequest(senderID, receiverID string, amount int, message string) error {
	if senderID == "" || receiverID == "" || amount == 0 {
		return apperrors.NewValidationError("senderId, receiverId, and credits are required")
	}

	if amount < 0 {
		return apperrors.NewValidationError("Credits must be greater than 0")
	}

	if len([]rune(message)) > credits.MaxMessageLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("Message cannot exceed %d characters", credits.MaxMessageLength))
	}

	if senderID == receiverID {
		return apperrors.NewCustomError(apperrors.ErrSelfRecognition, "Self-recognition is not allowed")
	}

	return nil
}

// Create validates and applies a credit transfer: it records the immutable
// recognition, debits the sender and credits the receiver in one database
// transaction. Both student rows are locked (in deterministic id order, to
// avoid deadlocks between concurrent transfers) so the balance checks and
// the writes they guard cannot interleave with another transfer.
func (s *RecognitionService) Create(ctx context.Context, req dto.CreateRecognitionRequest) (*dto.RecognitionResult, error) {
	if err := validateTransferRequest(req.SenderID, req.ReceiverID, req.Credits, req.Message); err != nil {
		return nil, err
	}

	month := credits.CurrentMonth()
	var result *dto.RecognitionResult

	err := s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sender, receiver, err := s.lockParticipants(ctx, tx, req.SenderID, req.ReceiverID)
		if err != nil {
			return err
		}

		// Lazy monthly reset on the sender's send path. The reset is folded
		// into the same balance update below.
		sender.ApplyMonthlyReset(month)

		if err := sender.CanSend(req.Credits); err != nil {
			return err
		}

		rec := &models.Recognition{
			ID:               uuid.New(),
			SenderID:         req.SenderID,
			ReceiverID:       req.ReceiverID,
			Credits:          req.Credits,
			Message:          req.Message,
			RecognitionMonth: month,
		}
		if err := s.recognitions.Create(ctx, tx, rec); err != nil {
			return err
		}

		sender.Credits -= req.Credits
		sender.CreditsSentThisMonth += req.Credits
		receiver.Credits += req.Credits
		receiver.TotalCreditsReceived += req.Credits

		if err := s.students.UpdateBalances(ctx, tx, sender); err != nil {
			return err
		}
		if err := s.students.UpdateBalances(ctx, tx, receiver); err != nil {
			return err
		}

		result = &dto.RecognitionResult{
			Recognition:     rec,
			SenderBalance:   sender.Credits,
			ReceiverBalance: receiver.Credits,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.leaderboard.Invalidate(ctx)

	logger.Info().
		Str("senderID", req.SenderID).
		Str("receiverID", req.ReceiverID).
		Int("credits", req.Credits).
		Str("month", month).
		Msg("Recognition created")

	return result, nil
}

// lockParticipants locks both student rows in ascending studentId order and
// reports missing accounts with the sender checked first.
func (s *RecognitionService) lockParticipants(ctx context.Context, tx pgx.Tx, senderID, receiverID string) (sender, receiver *models.Student, err error) {
	first, second := senderID, receiverID
	if second < first {
		first, second = second, first
	}

	locked := make(map[string]*models.Student, 2)
	for _, id := range []string{first, second} {
		student, err := s.students.GetForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				locked[id] = nil
				continue
			}
			return nil, nil, err
		}
		locked[id] = student
	}

	sender, receiver = locked[senderID], locked[receiverID]
	if sender == nil {
		return nil, nil, apperrors.NewCustomError(apperrors.ErrSenderNotFound, "Sender student not found")
	}
	if receiver == nil {
		return nil, nil, apperrors.NewCustomError(apperrors.ErrReceiverNotFound, "Receiver student not found")
	}
	return sender, receiver, nil
}

// ListReceived returns recognitions received by a student, newest first,
// each enriched with the sender's display name.
func (s *RecognitionService) ListReceived(ctx context.Context, studentID string, limit, offset int) (*dto.RecognitionList, error) {
	recs, err := s.recognitions.ListByReceiver(ctx, studentID, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.recognitions.CountByReceiver(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if err := s.attachNames(ctx, recs, func(rec *models.Recognition) (string, **models.StudentRef) {
		return rec.SenderID, &rec.Sender
	}); err != nil {
		return nil, err
	}

	return &dto.RecognitionList{
		Recognitions: recs,
		Pagination:   helpers.NewPaginationInfo(total, limit, offset, len(recs)),
	}, nil
}

// ListSent returns recognitions sent by a student, newest first, each
// enriched with the receiver's display name.
func (s *RecognitionService) ListSent(ctx context.Context, studentID string, limit, offset int) (*dto.RecognitionList, error) {
	recs, err := s.recognitions.ListBySender(ctx, studentID, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.recognitions.CountBySender(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if err := s.attachNames(ctx, recs, func(rec *models.Recognition) (string, **models.StudentRef) {
		return rec.ReceiverID, &rec.Receiver
	}); err != nil {
		return nil, err
	}

	return &dto.RecognitionList{
		Recognitions: recs,
		Pagination:   helpers.NewPaginationInfo(total, limit, offset, len(recs)),
	}, nil
}

// attachNames resolves the counterpart student for every recognition in the
// list. Students removed since the recognition was created show as "Unknown".
func (s *RecognitionService) attachNames(ctx context.Context, recs []*models.Recognition, pick func(*models.Recognition) (string, **models.StudentRef)) error {
	if len(recs) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(recs))
	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		id, _ := pick(rec)
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	names, err := s.students.GetNames(ctx, ids)
	if err != nil {
		return err
	}

	for _, rec := range recs {
		id, target := pick(rec)
		name, ok := names[id]
		if !ok {
			name = "Unknown"
		}
		*target = &models.StudentRef{StudentID: id, Name: name}
	}

	return nil
}

// GetByID returns a single recognition enriched with sender and receiver
// names.
func (s *RecognitionService) GetByID(ctx context.Context, id string) (*models.Recognition, error) {
	recID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid ID format")
	}

	rec, err := s.recognitions.GetByID(ctx, recID)
	if err != nil {
		return nil, err
	}

	names, err := s.students.GetNames(ctx, []string{rec.SenderID, rec.ReceiverID})
	if err != nil {
		return nil, err
	}

	rec.Sender = &models.StudentRef{StudentID: rec.SenderID, Name: nameOrUnknown(names, rec.SenderID)}
	rec.Receiver = &models.StudentRef{StudentID: rec.ReceiverID, Name: nameOrUnknown(names, rec.ReceiverID)}

	return rec, nil
}

func nameOrUnknown(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Unknown"
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/nowshad-islam-dev/skipq-api/internal/audit"
	"github.com/nowshad-islam-dev/skipq-api/internal/domain/media"
	domain "github.com/nowshad-islam-dev/skipq-api/internal/domain/service"
	"github.com/nowshad-islam-dev/skipq-api/internal/dto"
	"github.com/nowshad-islam-dev/skipq-api/internal/httperr"
	"github.com/nowshad-islam-dev/skipq-api/internal/models"
	"github.com/nowshad-islam-dev/skipq-api/internal/validators"
)

// DefaultMaxPhotos caps the photos attached to one listing.
const DefaultMaxPhotos = 4

type CreateServiceInput struct {
	Fields validators.NewService
	Photos [][]byte
}

type CreateService struct {
	repo      domain.Repository
	uploader  media.Uploader
	validator *validators.Validator
	audit     audit.Sink
	logger    *slog.Logger
	maxPhotos int
}

func NewCreateService(
	repo domain.Repository,
	uploader media.Uploader,
	validator *validators.Validator,
	audit audit.Sink,
	logger *slog.Logger,
	maxPhotos int,
) *CreateService {
	if maxPhotos <= 0 {
		maxPhotos = DefaultMaxPhotos
	}
	return &CreateService{
		repo:      repo,
		uploader:  uploader,
		validator: validator,
		audit:     audit,
		logger:    logger.With("usecase", "create_service"),
		maxPhotos: maxPhotos,
	}
}

// Execute uploads every photo before anything is persisted. A single failed
// upload aborts the whole request.
func (uc *CreateService) Execute(ctx context.Context, in CreateServiceInput) (*dto.PublicService, error) {
	f := in.Fields
	f.ServiceName = strings.TrimSpace(f.ServiceName)
	f.ServiceDescription = strings.TrimSpace(f.ServiceDescription)
	f.ServiceLocation = strings.TrimSpace(f.ServiceLocation)
	f.UserID = strings.TrimSpace(f.UserID)

	if err := uc.validator.Struct(f); err != nil {
		return nil, err
	}

	ownerID, err := strconv.ParseUint(f.UserID, 10, 64)
	if err != nil || ownerID == 0 {
		return nil, domain.ErrInvalidUserID
	}

	if len(in.Photos) > uc.maxPhotos {
		return nil, domain.ErrTooManyPhotos
	}

	exists, err := uc.repo.OwnerExists(ctx, uint(ownerID))
	if err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}
	if !exists {
		return nil, domain.ErrOwnerNotFound
	}

	urls, err := media.UploadAll(ctx, uc.uploader, in.Photos, media.FolderServicesPictures)
	if err != nil {
		uc.logger.Error("service photo upload failed", "owner_id", ownerID, "photos", len(in.Photos), "error", err)
		return nil, domain.ErrUploadFailed
	}

	s := &models.Service{
		ServiceName:        f.ServiceName,
		ServiceDescription: f.ServiceDescription,
		AverageWaitingTime: f.AverageWaitingTime,
		ServiceLocation:    f.ServiceLocation,
		Photos:             pq.StringArray(urls),
		UserID:             uint(ownerID),
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		// The owner may disappear between the pre-check and the insert.
		if httperr.IsForeignKeyViolation(err) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("create service: %w", err)
	}

	view, err := dto.ToPublicService(*s)
	if err != nil {
		return nil, fmt.Errorf("service view: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(s.UserID),
		Action:   audit.ActionServiceCreated,
		Entity:   "service",
		EntityID: audit.Ptr(s.ID),
		Metadata: map[string]int{"photos": len(urls)},
	})
	uc.logger.Info("service created", "service_id", s.ID, "owner_id", s.UserID)

	return &view, nil
}

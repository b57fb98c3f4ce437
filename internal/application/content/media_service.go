package content

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/evergreen/backend/internal/domain/content"
	"github.com/evergreen/backend/internal/domain/shared"
)

// ObjectStorageService abstracts the object store used for media uploads.
// Implementations live in the infrastructure layer.
type ObjectStorageService interface {
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
	DeleteObject(ctx context.Context, storageKey string) error
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
	PublicURL(storageKey string) string
}

// UploadURLExpiration is how long a presigned upload slot stays valid
const UploadURLExpiration = 15 * time.Minute

var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"image/gif":       true,
	"application/pdf": true,
}

// MediaService manages the media library and presigned uploads
type MediaService struct {
	mediaRepo     content.MediaRepository
	storage       ObjectStorageService
	maxUploadSize int64
	logger        *zap.Logger
}

// NewMediaService creates a new media service
func NewMediaService(mediaRepo content.MediaRepository, storage ObjectStorageService, maxUploadSize int64, logger *zap.Logger) *MediaService {
	return &MediaService{
		mediaRepo:     mediaRepo,
		storage:       storage,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// RequestUpload validates the request, records a library entry, and returns
// a presigned URL the client PUTs the file to
func (s *MediaService) RequestUpload(ctx context.Context, req UploadRequest) (*UploadResponse, error) {
	if !allowedUploadTypes[strings.ToLower(req.ContentType)] {
		return nil, shared.NewDomainError("UNSUPPORTED_MEDIA_TYPE", fmt.Sprintf("Content type %s is not allowed", req.ContentType))
	}
	if s.maxUploadSize > 0 && req.SizeByte > s.maxUploadSize {
		return nil, shared.NewDomainError("FILE_TOO_LARGE", fmt.Sprintf("File exceeds the %d byte upload limit", s.maxUploadSize))
	}

	folder := sanitizeFolder(req.Folder)
	asset := &content.MediaAsset{
		BaseEntity: shared.NewBaseEntity(),
		Name:       path.Base(req.FileName),
		FileType:   req.ContentType,
		Folder:     folder,
		SizeByte:   req.SizeByte,
	}
	storageKey := buildStorageKey(folder, asset.ID, asset.Name)
	asset.FileURL = s.storage.PublicURL(storageKey)

	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, storageKey, req.ContentType, UploadURLExpiration)
	if err != nil {
		s.logger.Error("failed to presign upload", zap.String("storage_key", storageKey), zap.Error(err))
		return nil, err
	}

	if err := s.mediaRepo.Save(ctx, asset); err != nil {
		return nil, err
	}

	return &UploadResponse{
		AssetID:   asset.ID,
		UploadURL: uploadURL,
		FileURL:   asset.FileURL,
		ExpiresAt: expiresAt,
	}, nil
}

// List returns media library entries, optionally limited to one folder
// and filtered by a name search
func (s *MediaService) List(ctx context.Context, folder, search string) ([]MediaAssetResponse, error) {
	var assets []content.MediaAsset
	var err error
	if folder != "" {
		assets, err = s.mediaRepo.FindByFolder(ctx, sanitizeFolder(folder))
	} else {
		assets, err = s.mediaRepo.FindAll(ctx, shared.Filter{Search: search})
	}
	if err != nil {
		return nil, err
	}
	responses := make([]MediaAssetResponse, len(assets))
	for i := range assets {
		responses[i] = ToMediaAssetResponse(&assets[i])
	}
	return responses, nil
}

// Delete removes a library entry and its stored object. A missing object
// in the store is not an error since the row is the source of truth.
func (s *MediaService) Delete(ctx context.Context, id uuid.UUID) error {
	asset, err := s.mediaRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	storageKey := buildStorageKey(asset.Folder, asset.ID, asset.Name)
	if err := s.storage.DeleteObject(ctx, storageKey); err != nil {
		s.logger.Warn("failed to delete stored object, removing library entry anyway",
			zap.String("storage_key", storageKey), zap.Error(err))
	}
	return s.mediaRepo.Delete(ctx, id)
}

// buildStorageKey namespaces objects by folder and asset ID so renames and
// duplicate file names never collide
func buildStorageKey(folder string, id uuid.UUID, name string) string {
	if folder == "" {
		folder = "uploads"
	}
	return fmt.Sprintf("%s/%s/%s", folder, id.String(), name)
}

func sanitizeFolder(folder string) string {
	folder = strings.ReplaceAll(strings.TrimSpace(folder), "..", "")
	return strings.Trim(folder, "/")
}

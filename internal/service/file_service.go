package service

import (
	"context"
	"mime/multipart"
	"time"

	"vaul-ai-be/internal/dto"
	"vaul-ai-be/internal/entity"
	"vaul-ai-be/internal/pkg/logger"
	"vaul-ai-be/internal/repository/specification"
	"vaul-ai-be/internal/repository/unitofwork"
	"vaul-ai-be/pkg/storage"

	"github.com/google/uuid"
)

const downloadURLExpiry = 15 * time.Minute

type IFileService interface {
	Upload(ctx context.Context, userId uuid.UUID, header *multipart.FileHeader) (*dto.UploadFileResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.FileResponse, error)
	Download(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.FileDownloadResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type fileService struct {
	uowFactory  unitofwork.RepositoryFactory
	objectStore *storage.ObjectStore
	log         logger.ILogger
}

func NewFileService(uowFactory unitofwork.RepositoryFactory, objectStore *storage.ObjectStore, log logger.ILogger) IFileService {
	return &fileService{
		uowFactory:  uowFactory,
		objectStore: objectStore,
		log:         log,
	}
}

func (s *fileService) Upload(ctx context.Context, userId uuid.UUID, header *multipart.FileHeader) (*dto.UploadFileResponse, error) {
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	contentType := header.Header.Get("Content-Type")
	key := storage.ObjectKey(userId.String(), header.Filename)

	if err := s.objectStore.Upload(ctx, key, src, header.Size, contentType); err != nil {
		return nil, err
	}

	file := entity.StoredFile{
		Id:        uuid.New(),
		UserId:    userId,
		FileName:  header.Filename,
		ObjectKey: key,
		FileType:  contentType,
		FileSize:  header.Size,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.StoredFileRepository().Create(ctx, &file); err != nil {
		// The object is orphaned without its row; best effort cleanup
		if rmErr := s.objectStore.Remove(ctx, key); rmErr != nil {
			s.log.Warn("file", "Failed to clean up orphaned object", map[string]interface{}{
				"object_key": key,
				"error":      rmErr.Error(),
			})
		}
		return nil, err
	}

	return &dto.UploadFileResponse{Id: file.Id, FileName: file.FileName}, nil
}

func (s *fileService) List(ctx context.Context, userId uuid.UUID) ([]*dto.FileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	files, err := uow.StoredFileRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.FileResponse, len(files))
	for i, f := range files {
		res[i] = &dto.FileResponse{
			Id:        f.Id,
			FileName:  f.FileName,
			FileType:  f.FileType,
			FileSize:  f.FileSize,
			CreatedAt: f.CreatedAt,
		}
	}
	return res, nil
}

func (s *fileService) Download(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.FileDownloadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	file, err := uow.StoredFileRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, nil
	}

	url, err := s.objectStore.PresignedGetURL(ctx, file.ObjectKey, file.FileName, downloadURLExpiry)
	if err != nil {
		return nil, err
	}

	return &dto.FileDownloadResponse{
		Id:        file.Id,
		FileName:  file.FileName,
		URL:       url,
		ExpiresIn: int64(downloadURLExpiry.Seconds()),
	}, nil
}

func (s *fileService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	file, err := uow.StoredFileRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if file == nil {
		return nil
	}

	// Storage removal failure does not block dropping the row; the object
	// becomes unreachable garbage, which is preferable to a ghost listing.
	if err := s.objectStore.Remove(ctx, file.ObjectKey); err != nil {
		s.log.Error("file", "Failed to delete object from storage", map[string]interface{}{
			"object_key": file.ObjectKey,
			"error":      err.Error(),
		})
	}

	return uow.StoredFileRepository().Delete(ctx, id)
}

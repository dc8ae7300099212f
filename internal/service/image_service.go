package service

import (
	"Lumen/internal/api/dto"
	"Lumen/internal/model"
	"Lumen/internal/pkg/llm"
	"Lumen/internal/pkg/minio"
	"Lumen/internal/pkg/util"
	"Lumen/internal/repository"
	"bytes"
	"context"
	"io"
	log "log/slog"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ImageService interface {
	CreateFromUpload(ctx context.Context, userID uint64, reader io.Reader, contentType string, ext string) (*dto.ImageDTO, error)
	GetImageById(ctx context.Context, userID uint64, imageID uint64) (*dto.ImageDTO, error)
	ListImages(ctx context.Context, userID uint64) ([]*dto.ImageDTO, error)
	GetSharedImage(ctx context.Context, token string) (*dto.ImageDTO, error)
}

type ImageServiceImpl struct {
	imageRepo repository.ImageRepo
	styleSvc  StyleService
}

func NewImageService(imageRepo repository.ImageRepo, styleSvc StyleService) ImageService {
	return &ImageServiceImpl{
		imageRepo: imageRepo,
		styleSvc:  styleSvc,
	}
}

// CreateFromUpload 上传原图、生成增强版并请求视觉模型产出文案。
// 风格个性化故障只降级为基础指令，文案生成不受影响。
func (s *ImageServiceImpl) CreateFromUpload(ctx context.Context, userID uint64, reader io.Reader, contentType string, ext string) (*dto.ImageDTO, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	name := uuid.NewString()
	originalKey := "images/original/" + name + ext
	if _, err = minio.UploadFile(ctx, originalKey, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		log.ErrorContext(ctx, "MinIO upload failed", "err", err)
		return nil, UnExpectedError
	}

	enhanced, err := util.EnhanceImage(bytes.NewReader(data))
	if err != nil {
		return nil, ErrFileNotSupported
	}

	enhancedKey := "images/enhanced/" + name + ".jpg"
	if _, err = minio.UploadFile(ctx, enhancedKey, bytes.NewReader(enhanced.Bytes()), int64(enhanced.Len()), "image/jpeg"); err != nil {
		log.ErrorContext(ctx, "MinIO upload failed", "err", err)
		return nil, UnExpectedError
	}

	instruction := s.styleSvc.ComposeInstruction(ctx, userID, llm.BasePrompt())

	result, err := llm.AnalyzeImage(ctx, instruction, minio.GetPublicURL(enhancedKey))
	if err != nil {
		log.ErrorContext(ctx, "Caption Generation Failed", "user_id", userID, "err", err)
		return nil, UnExpectedError
	}

	image := &model.Image{
		UserID:      userID,
		OriginalKey: originalKey,
		EnhancedKey: enhancedKey,
		Caption:     result.SuggestedCaption,
		Description: result.Description,
		ShareToken:  uuid.NewString(),
	}
	if err = s.imageRepo.CreateImage(ctx, image); err != nil {
		return nil, err
	}

	return toImageDTO(image), nil
}

func (s *ImageServiceImpl) GetImageById(ctx context.Context, userID uint64, imageID uint64) (*dto.ImageDTO, error) {
	image, err := s.imageRepo.GetImageById(ctx, imageID)
	if err != nil {
		return nil, err
	}
	if image == nil || image.UserID != userID {
		return nil, ErrImageNotFound
	}
	return toImageDTO(image), nil
}

func (s *ImageServiceImpl) ListImages(ctx context.Context, userID uint64) ([]*dto.ImageDTO, error) {
	images, err := s.imageRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.ImageDTO, 0, len(images))
	for _, image := range images {
		list = append(list, toImageDTO(image))
	}
	return list, nil
}

// GetSharedImage 公开分享视图，凭 token 访问，不校验归属
func (s *ImageServiceImpl) GetSharedImage(ctx context.Context, token string) (*dto.ImageDTO, error) {
	image, err := s.imageRepo.GetImageByShareToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, ErrImageNotFound
	}
	return toImageDTO(image), nil
}

func toImageDTO(image *model.Image) *dto.ImageDTO {
	imageDTO := &dto.ImageDTO{}
	_ = copier.Copy(imageDTO, image)
	imageDTO.OriginalURL = minio.GetPublicURL(image.OriginalKey)
	imageDTO.EnhancedURL = minio.GetPublicURL(image.EnhancedKey)
	return imageDTO
}

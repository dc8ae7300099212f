package handler

import (
	"Lumen/internal/pkg/consts"
	"Lumen/internal/pkg/response"
	"Lumen/internal/pkg/util"
	"Lumen/internal/service"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	imageSvc service.ImageService
}

func NewImageHandler(imageSvc service.ImageService) *ImageHandler {
	return &ImageHandler{imageSvc: imageSvc}
}

// Upload 接收图片，产出增强版与 AI 文案
func (s *ImageHandler) Upload(c *gin.Context) {
	userID := c.GetUint64("user_id")

	file, err := c.FormFile("file")
	if err != nil || file == nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	if file.Size > consts.MaxUploadSize {
		response.Error(c, service.ErrFileTooLarge)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer func() {
		_ = reader.Close()
	}()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	ext := path.Ext(file.Filename)
	imageDTO, err := s.imageSvc.CreateFromUpload(c.Request.Context(), userID, reader, contentType, ext)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, imageDTO)
}

func (s *ImageHandler) List(c *gin.Context) {
	userID := c.GetUint64("user_id")

	images, err := s.imageSvc.ListImages(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, images)
}

func (s *ImageHandler) GetById(c *gin.Context) {
	userID := c.GetUint64("user_id")

	imageID, err := strconv.ParseUint(c.Param("image_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	imageDTO, err := s.imageSvc.GetImageById(c.Request.Context(), userID, imageID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, imageDTO)
}

// GetShared 公开分享视图，无需登录
func (s *ImageHandler) GetShared(c *gin.Context) {
	token := c.Param("share_token")
	if token == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	imageDTO, err := s.imageSvc.GetSharedImage(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, imageDTO)
}

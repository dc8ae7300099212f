package handler

import (
	"Lumen/internal/api/dto"
	"Lumen/internal/pkg/response"
	"Lumen/internal/service"

	"github.com/gin-gonic/gin"
)

type InstagramHandler struct {
	instagramSvc service.InstagramService
	styleSvc     service.StyleService
}

func NewInstagramHandler(instagramSvc service.InstagramService, styleSvc service.StyleService) *InstagramHandler {
	return &InstagramHandler{
		instagramSvc: instagramSvc,
		styleSvc:     styleSvc,
	}
}

// Connect OAuth 授权绑定，上游失败直接报错
func (s *InstagramHandler) Connect(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var connectDTO dto.ConnectDTO
	if err := c.ShouldBind(&connectDTO); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.instagramSvc.ConnectByToken(c.Request.Context(), userID, connectDTO.AccessToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ConnectByUsername 保存绑定后立即返回，采集在后台执行
func (s *InstagramHandler) ConnectByUsername(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var connectDTO dto.ConnectByUsernameDTO
	if err := c.ShouldBind(&connectDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.instagramSvc.ConnectByUsername(c.Request.Context(), userID, connectDTO.Username); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"success": true, "message": "绑定成功，帖子正在后台采集"})
}

// RefreshPosts 同步刷新，零帖子按部分成功返回而不是错误
func (s *InstagramHandler) RefreshPosts(c *gin.Context) {
	userID := c.GetUint64("user_id")

	result, err := s.instagramSvc.RefreshPosts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *InstagramHandler) GetStyleProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")

	profile, err := s.styleSvc.GetStyleProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *InstagramHandler) SaveManualStyle(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var styleDTO dto.ManualStyleDTO
	if err := c.ShouldBind(&styleDTO); err != nil {
		response.Error(c, err)
		return
	}

	profile, err := s.styleSvc.SaveManualStyle(c.Request.Context(), userID, &styleDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *InstagramHandler) GetStatus(c *gin.Context) {
	userID := c.GetUint64("user_id")

	status, err := s.instagramSvc.GetStatus(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status)
}

func (s *InstagramHandler) Disconnect(c *gin.Context) {
	userID := c.GetUint64("user_id")

	if err := s.instagramSvc.Disconnect(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

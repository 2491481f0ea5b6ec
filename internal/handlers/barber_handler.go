package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barbershop-booking/internal/media"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const maxPhotoBytes = 5 << 20 // 5 MB

type BarberHandler struct {
	db       *gorm.DB
	uploader storage.Uploader
}

func NewBarberHandler(db *gorm.DB, uploader storage.Uploader) *BarberHandler {
	return &BarberHandler{db: db, uploader: uploader}
}

// ======================================================
// DIRETÓRIO PÚBLICO
// ======================================================

type BarberListItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PhotoURL    string  `json:"photo_url"`
	Rating      float64 `json:"rating"`
}

func (h *BarberHandler) List(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Model(&models.BarberProfile{}).
		Joins("JOIN users ON users.id = barber_profiles.barber_id").
		Where("barber_profiles.approved = ? AND users.banned = ?", true, false)

	if query != "" {
		q = q.Where("LOWER(users.name) LIKE ?", "%"+query+"%")
	}

	var items []BarberListItem
	if err := q.
		Select("users.id, users.name, barber_profiles.description, barber_profiles.photo_url, barber_profiles.rating").
		Order("users.name ASC").
		Scan(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, items)
}

func (h *BarberHandler) Get(c *gin.Context) {
	barberID := c.Param("id")

	var profile models.BarberProfile
	if err := h.db.
		Preload("Barber").
		Where("barber_id = ? AND approved = ?", barberID, true).
		First(&profile).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	httpresp.OK(c, BarberListItem{
		ID:          profile.BarberID,
		Name:        profile.Barber.Name,
		Description: profile.Description,
		PhotoURL:    profile.PhotoURL,
		Rating:      profile.Rating,
	})
}

// ======================================================
// PERFIL DO PRÓPRIO BARBEIRO
// ======================================================

type UpdateProfileRequest struct {
	Description *string `json:"description"`
}

func (h *BarberHandler) UpdateMyProfile(c *gin.Context) {
	caller := middleware.Caller(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var profile models.BarberProfile
	if err := h.db.Where("barber_id = ?", caller.UserID).First(&profile).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Perfil não encontrado.")
		return
	}

	if req.Description != nil {
		profile.Description = *req.Description
	}

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Erro ao atualizar perfil.")
		return
	}

	httpresp.OK(c, profile)
}

// ======================================================
// FOTO DE PERFIL (webp → S3)
// ======================================================

func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	caller := middleware.Caller(c)

	if h.uploader == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "storage_disabled", "Upload de fotos desabilitado.")
		return
	}

	var profile models.BarberProfile
	if err := h.db.Where("barber_id = ?", caller.UserID).First(&profile).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Perfil não encontrado.")
		return
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPhotoBytes+1))
	if err != nil || len(data) == 0 {
		httperr.BadRequest(c, "invalid_image", "Envie a imagem no corpo da requisição.")
		return
	}
	if len(data) > maxPhotoBytes {
		httperr.BadRequest(c, "image_too_large", "Imagem acima de 5MB.")
		return
	}

	encoded, err := media.ToProfileWebP(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (use JPEG ou PNG).")
		return
	}

	key := fmt.Sprintf("barbers/%s/profile.webp", caller.UserID)
	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", encoded)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao salvar a foto.")
		return
	}

	profile.PhotoURL = url
	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Erro ao atualizar perfil.")
		return
	}

	httpresp.OK(c, gin.H{"photo_url": url})
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/cache"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ======================================================
// HANDLER (tudo aqui exige role admin)
// ======================================================

type AdminHandler struct {
	db    *gorm.DB
	bans  *cache.BanList
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, bans *cache.BanList, audit *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, bans: bans, audit: audit}
}

func (h *AdminHandler) requireAdmin(c *gin.Context) bool {
	if !middleware.Caller(c).IsAdmin() {
		httperr.Forbidden(c, httperr.CodeForbidden, "Apenas administradores.")
		return false
	}
	return true
}

// loadTarget carrega o usuário alvo, barrando operações sobre admins.
func (h *AdminHandler) loadTarget(c *gin.Context) (*models.User, bool) {
	var user models.User
	if err := h.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return nil, false
	}

	// admin não pode banir/remover outro admin
	if user.Role == identity.RoleAdmin {
		httperr.Forbidden(c, httperr.CodeForbidden, "Operação não permitida sobre administradores.")
		return nil, false
	}

	return &user, true
}

// ======================================================
// USERS
// ======================================================

func (h *AdminHandler) ListUsers(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	var users []models.User
	if err := h.db.Order("created_at ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Erro ao listar usuários.")
		return
	}

	httpresp.List(c, users)
}

func (h *AdminHandler) BanUser(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	user, ok := h.loadTarget(c)
	if !ok {
		return
	}

	user.Banned = true
	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "failed_to_ban_user", "Erro ao banir usuário.")
		return
	}

	// corte imediato: tokens vivos param de funcionar
	if h.bans != nil {
		_ = h.bans.Ban(c.Request.Context(), user.ID)
	}

	h.dispatch(c, "user_banned", "user", user.ID)
	httpresp.OK(c, user)
}

func (h *AdminHandler) UnbanUser(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	user, ok := h.loadTarget(c)
	if !ok {
		return
	}

	user.Banned = false
	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "failed_to_unban_user", "Erro ao desbanir usuário.")
		return
	}

	if h.bans != nil {
		_ = h.bans.Unban(c.Request.Context(), user.ID)
	}

	h.dispatch(c, "user_unbanned", "user", user.ID)
	httpresp.OK(c, user)
}

func (h *AdminHandler) RemoveUser(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	user, ok := h.loadTarget(c)
	if !ok {
		return
	}

	if err := h.db.Delete(user).Error; err != nil {
		httperr.Internal(c, "failed_to_remove_user", "Erro ao remover usuário.")
		return
	}

	h.dispatch(c, "user_removed", "user", user.ID)
	httpresp.OK(c, gin.H{"status": "ok"})
}

// ======================================================
// BARBERS
// ======================================================

func (h *AdminHandler) ApproveBarber(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	var profile models.BarberProfile
	if err := h.db.Where("barber_id = ?", c.Param("id")).First(&profile).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	profile.Approved = true
	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_approve_barber", "Erro ao aprovar barbeiro.")
		return
	}

	h.dispatch(c, "barber_approved", "barber_profile", profile.ID)
	httpresp.OK(c, profile)
}

// ======================================================
// AUDIT
// ======================================================

func (h *AdminHandler) dispatch(c *gin.Context, action, entity, entityID string) {
	caller := middleware.Caller(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   action,
		Entity:   entity,
		EntityID: &entityID,
	})
}

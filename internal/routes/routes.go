package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/cache"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucAvailability "github.com/BruksfildServices01/barbershop-booking/internal/usecase/availability"
	ucBooking "github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	bans *cache.BanList,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	slotRepo := infraRepo.NewSlotGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	var uploader storage.Uploader
	if cfg.S3Enabled() {
		uploader = storage.NewS3Uploader(cfg)
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	addSlotUC := ucAvailability.NewAddSlot(slotRepo, auditDispatcher)
	removeSlotUC := ucAvailability.NewRemoveSlot(slotRepo, auditDispatcher)
	listSlotsUC := ucAvailability.NewListSlots(slotRepo)

	bookUC := ucBooking.NewBook(appointmentRepo, slotRepo, auditDispatcher)
	respondUC := ucBooking.NewRespond(appointmentRepo, slotRepo, auditDispatcher)
	cancelUC := ucBooking.NewCancel(appointmentRepo, slotRepo, auditDispatcher)
	listAppointmentsUC := ucBooking.NewListAppointments(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	slotHandler := handlers.NewSlotHandler(addSlotUC, removeSlotUC, listSlotsUC)
	appointmentHandler := handlers.NewAppointmentHandler(bookUC, respondUC, cancelUC, listAppointmentsUC)
	barberHandler := handlers.NewBarberHandler(db, uploader)
	adminHandler := handlers.NewAdminHandler(db, bans, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", barberHandler.List)
			publicAPI.GET("/barbers/:id", barberHandler.Get)
			publicAPI.GET("/barbers/:id/slots", slotHandler.ListForBarber)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, bans))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// SLOTS (barbeiro / admin)
			// ------------------------------
			secured.POST("/me/slots", slotHandler.Create)
			secured.GET("/me/slots", slotHandler.ListMine)
			secured.DELETE("/me/slots/:id", slotHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Book)
			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.PATCH("/appointments/:id/respond", appointmentHandler.Respond)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// PERFIL DO BARBEIRO
			// ------------------------------
			secured.PATCH("/me/profile", barberHandler.UpdateMyProfile)
			secured.PUT("/me/profile/photo", barberHandler.UploadPhoto)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			{
				admin.GET("/appointments", appointmentHandler.ListAll)
				admin.GET("/users", adminHandler.ListUsers)
				admin.PATCH("/users/:id/ban", adminHandler.BanUser)
				admin.PATCH("/users/:id/unban", adminHandler.UnbanUser)
				admin.DELETE("/users/:id", adminHandler.RemoveUser)
				admin.PATCH("/barbers/:id/approve", adminHandler.ApproveBarber)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}

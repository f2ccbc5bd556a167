package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-scheduler/internal/audit"
	"github.com/clinicdesk/clinic-scheduler/internal/config"
	"github.com/clinicdesk/clinic-scheduler/internal/handlers"
	"github.com/clinicdesk/clinic-scheduler/internal/holidays"
	infraRepo "github.com/clinicdesk/clinic-scheduler/internal/infra/repository"
	"github.com/clinicdesk/clinic-scheduler/internal/infra/storage"
	"github.com/clinicdesk/clinic-scheduler/internal/middleware"
	ucReservation "github.com/clinicdesk/clinic-scheduler/internal/usecase/reservation"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	holidaySvc *holidays.Service,
	uploader storage.Uploader,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		scheduleRepo,
		auditDispatcher,
	)

	updateReservationUC := ucReservation.NewUpdateReservation(
		scheduleRepo,
		auditDispatcher,
	)

	deleteReservationUC := ucReservation.NewDeleteReservation(
		scheduleRepo,
		auditDispatcher,
	)

	dragEndUC := ucReservation.NewDragEnd(
		scheduleRepo,
		auditDispatcher,
	)

	archiveReservationUC := ucReservation.NewArchiveReservation(
		scheduleRepo,
		auditDispatcher,
	)

	completeReservationUC := ucReservation.NewCompleteReservation(
		scheduleRepo,
		auditDispatcher,
	)

	listDayUC := ucReservation.NewListDay(scheduleRepo)

	nextAvailableUC := ucReservation.NewNextAvailable(
		scheduleRepo,
		holidaySvc,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		updateReservationUC,
		deleteReservationUC,
		dragEndUC,
		archiveReservationUC,
		completeReservationUC,
		listDayUC,
		nextAvailableUC,
	)

	settingsHandler := handlers.NewSettingsHandler(db)
	customFieldHandler := handlers.NewCustomFieldHandler(db)
	userHandler := handlers.NewUserHandler(db)
	brandingHandler := handlers.NewBrandingHandler(db, uploader, cfg)
	holidayHandler := handlers.NewHolidayHandler(holidaySvc)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// Reservations and the day board.
			secured.GET("/schedule/day", reservationHandler.Day)
			secured.GET("/schedule/next-available", reservationHandler.NextAvailable)

			secured.POST("/reservations", reservationHandler.Create)
			secured.PUT("/reservations/:id", reservationHandler.Update)
			secured.DELETE("/reservations/:id", reservationHandler.Delete)
			secured.POST("/reservations/drag-end", reservationHandler.DragEnd)
			secured.POST("/reservations/:id/archive", reservationHandler.Archive)
			secured.POST("/reservations/:id/complete", reservationHandler.Complete)

			secured.GET("/settings", settingsHandler.Get)
			secured.GET("/custom-fields", customFieldHandler.List)
			secured.GET("/holidays", holidayHandler.ForYear)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole("admin", "owner"))
			{
				admin.PUT("/settings/schedule", settingsHandler.UpdateSchedule)
				admin.PUT("/settings/exceptions", settingsHandler.SetException)
				admin.DELETE("/settings/exceptions/:date", settingsHandler.ClearException)

				admin.PUT("/settings/branding", brandingHandler.Update)
				admin.POST("/settings/logo", brandingHandler.UploadLogo)

				admin.POST("/custom-fields", customFieldHandler.Create)
				admin.DELETE("/custom-fields/:id", customFieldHandler.Delete)

				admin.GET("/users", userHandler.List)
				admin.POST("/users", userHandler.Create)
				admin.PUT("/users/:id", userHandler.Update)
				admin.DELETE("/users/:id", userHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}

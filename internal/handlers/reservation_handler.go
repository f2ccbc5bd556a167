package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/httpresp"
	ucReservation "github.com/clinicdesk/clinic-scheduler/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC   *ucReservation.CreateReservation
	updateUC   *ucReservation.UpdateReservation
	deleteUC   *ucReservation.DeleteReservation
	dragEndUC  *ucReservation.DragEnd
	archiveUC  *ucReservation.ArchiveReservation
	completeUC *ucReservation.CompleteReservation
	listDayUC  *ucReservation.ListDay
	nextUC     *ucReservation.NextAvailable
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	updateUC *ucReservation.UpdateReservation,
	deleteUC *ucReservation.DeleteReservation,
	dragEndUC *ucReservation.DragEnd,
	archiveUC *ucReservation.ArchiveReservation,
	completeUC *ucReservation.CompleteReservation,
	listDayUC *ucReservation.ListDay,
	nextUC *ucReservation.NextAvailable,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		dragEndUC:  dragEndUC,
		archiveUC:  archiveUC,
		completeUC: completeUC,
		listDayUC:  listDayUC,
		nextUC:     nextUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ChildName  string            `json:"child_name" binding:"required"`
	ParentName string            `json:"parent_name"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	Notes      string            `json:"notes"`
	Extras     map[string]string `json:"extras"`
	Date       string            `json:"date"`
	TimeSlot   string            `json:"time_slot"`
	Emergency  bool              `json:"emergency"`
}

type UpdateReservationRequest struct {
	ChildName  string            `json:"child_name" binding:"required"`
	ParentName string            `json:"parent_name"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	Notes      string            `json:"notes"`
	Extras     map[string]string `json:"extras"`
	TimeSlot   *string           `json:"time_slot"`
}

type DragEndRequest struct {
	ActiveID string `json:"active_id" binding:"required"`
	OverID   string `json:"over_id"`
}

type ArchiveRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reservation payload.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		ChildName:  req.ChildName,
		ParentName: req.ParentName,
		Phone:      req.Phone,
		Address:    req.Address,
		Notes:      req.Notes,
		Extras:     req.Extras,
		Date:       req.Date,
		TimeSlot:   req.TimeSlot,
		Emergency:  req.Emergency,
		UserID:     currentUserID(c),
	})
	if err != nil {
		writeReservationErr(c, err)
		return
	}

	httpresp.Created(c, res)
}

func (h *ReservationHandler) Update(c *gin.Context) {
	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reservation payload.")
		return
	}

	res, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), ucReservation.UpdateReservationInput{
		ChildName:  req.ChildName,
		ParentName: req.ParentName,
		Phone:      req.Phone,
		Address:    req.Address,
		Notes:      req.Notes,
		Extras:     req.Extras,
		TimeSlot:   req.TimeSlot,
		UserID:     currentUserID(c),
	})
	if err != nil {
		writeReservationErr(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		writeReservationErr(c, err)
		return
	}
	httpresp.OK(c, gin.H{"status": "deleted"})
}

// ======================================================
// DRAG / ARCHIVE / COMPLETE
// ======================================================

func (h *ReservationHandler) DragEnd(c *gin.Context) {
	var req DragEndRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid drag payload.")
		return
	}

	resolution, err := h.dragEndUC.Execute(c.Request.Context(), ucReservation.DragEndInput{
		ActiveID: req.ActiveID,
		OverID:   req.OverID,
		UserID:   currentUserID(c),
	})
	if err != nil {
		writeReservationErr(c, err)
		return
	}

	httpresp.OK(c, resolution)
}

func (h *ReservationHandler) Archive(c *gin.Context) {
	var req ArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A cancellation reason is required.")
		return
	}

	res, err := h.archiveUC.Execute(c.Request.Context(), c.Param("id"), req.Reason, currentUserID(c))
	if err != nil {
		writeReservationErr(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *ReservationHandler) Complete(c *gin.Context) {
	res, err := h.completeUC.Execute(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		writeReservationErr(c, err)
		return
	}
	httpresp.OK(c, res)
}

// ======================================================
// BOARD / NEXT SLOT
// ======================================================

func (h *ReservationHandler) Day(c *gin.Context) {
	view, err := h.listDayUC.Execute(c.Request.Context(), c.Query("date"), localeFrom(c))
	if err != nil {
		httperr.Internal(c, "failed_to_load_day", "Could not load the day board.")
		return
	}
	httpresp.OK(c, view)
}

func (h *ReservationHandler) NextAvailable(c *gin.Context) {
	result, err := h.nextUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_find_slot", "Could not search for a free slot.")
		return
	}
	httpresp.OK(c, result)
}

// ======================================================
// ERRORS
// ======================================================

func writeReservationErr(c *gin.Context, err error) {
	switch code := httperr.CodeOf(err); code {
	case "slot_full":
		httperr.Conflict(c, code, "That time slot is already full.")
	case "reservation_not_found":
		httperr.NotFound(c, code, "Reservation not found.")
	case "":
		httperr.Internal(c, "internal_error", "Something went wrong.")
	default:
		httperr.BadRequest(c, code, "Invalid reservation request.")
	}
}

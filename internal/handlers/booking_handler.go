package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nordkitchen/foodtruck-manager/internal/dto"
	"github.com/nordkitchen/foodtruck-manager/internal/httperr"
	"github.com/nordkitchen/foodtruck-manager/internal/httpresp"
	"github.com/nordkitchen/foodtruck-manager/internal/service"
)

type BookingHandler struct {
	bookings *service.BookingService
}

func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email" binding:"required,email"`

	Address    string `json:"address" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	City       string `json:"city" binding:"required"`

	Date           string `json:"date" binding:"required,len=10"`
	StatusID       uint   `json:"status_id" binding:"required,min=1,max=3"`
	ParticipantsID uint   `json:"participants_id" binding:"required,min=1,max=3"`
	TimeSlotID     uint   `json:"time_slot_id" binding:"required,min=1,max=3"`
}

type UpdateBookingRequest struct {
	NewDate string `json:"new_date" binding:"required,len=10"`
	OldDate string `json:"old_date" binding:"required,len=10"`

	Email      string `json:"email" binding:"required,email"`
	Address    string `json:"address" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`

	StatusID       uint `json:"status_id" binding:"required,min=1,max=3"`
	ParticipantsID uint `json:"participants_id" binding:"required,min=1,max=3"`
	TimeSlotID     uint `json:"time_slot_id" binding:"required,min=1,max=3"`
}

type UpdateClientRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	NewEmail    string `json:"new_email" binding:"required,email"`
	OldEmail    string `json:"old_email" binding:"required,email"`
}

type UpdateLocationRequest struct {
	City          string `json:"city" binding:"required"`
	NewAddress    string `json:"new_address" binding:"required"`
	NewPostalCode string `json:"new_postal_code" binding:"required"`
	OldAddress    string `json:"old_address" binding:"required"`
	OldPostalCode string `json:"old_postal_code" binding:"required"`
}

// --------- Handlers ---------

func (h *BookingHandler) List(c *gin.Context) {
	rows, err := h.bookings.GetAllBookings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "could not load bookings")
		return
	}
	httpresp.List[dto.BookingRow](c, rows)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	status := h.bookings.CreateBooking(c.Request.Context(), service.CreateBookingInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		Address:        req.Address,
		PostalCode:     req.PostalCode,
		City:           req.City,
		Date:           req.Date,
		StatusID:       req.StatusID,
		ParticipantsID: req.ParticipantsID,
		TimeSlotID:     req.TimeSlotID,
	})
	writeStatus(c, status, "booking")
}

func (h *BookingHandler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	status := h.bookings.UpdateBooking(c.Request.Context(), service.UpdateBookingInput{
		NewDate:        req.NewDate,
		OldDate:        req.OldDate,
		Email:          req.Email,
		Address:        req.Address,
		PostalCode:     req.PostalCode,
		StatusID:       req.StatusID,
		ParticipantsID: req.ParticipantsID,
		TimeSlotID:     req.TimeSlotID,
	})
	writeStatus(c, status, "booking")
}

func (h *BookingHandler) Delete(c *gin.Context) {
	date := c.Param("date")

	status := h.bookings.DeleteBooking(c.Request.Context(), date)
	writeStatus(c, status, "booking")
}

func (h *BookingHandler) UpdateClient(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	status := h.bookings.UpdateClient(c.Request.Context(), service.UpdateClientInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		NewEmail:    req.NewEmail,
		OldEmail:    req.OldEmail,
	})
	writeStatus(c, status, "client")
}

func (h *BookingHandler) UpdateLocation(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	status := h.bookings.UpdateLocation(c.Request.Context(), service.UpdateLocationInput{
		City:          req.City,
		NewAddress:    req.NewAddress,
		NewPostalCode: req.NewPostalCode,
		OldAddress:    req.OldAddress,
		OldPostalCode: req.OldPostalCode,
	})
	writeStatus(c, status, "location")
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nordkitchen/foodtruck-manager/internal/audit"
	"github.com/nordkitchen/foodtruck-manager/internal/cache"
	"github.com/nordkitchen/foodtruck-manager/internal/dto"
	"github.com/nordkitchen/foodtruck-manager/internal/models"
	"github.com/nordkitchen/foodtruck-manager/internal/repository"
)

// BookingService implements the booking lifecycle. Uniqueness (one booking
// per date, one client per email, one location per address+postal code) is
// enforced by an existence check before each write; the unique indexes on
// the store back the check up under concurrent callers, in which case the
// loser of the race reports FAILED rather than ALREADY_EXISTS. The
// dependent client/location creates and the booking create are not wrapped
// in one transaction, so a failing booking write can leave behind a newly
// created client or location.
type BookingService struct {
	clients   *repository.Repository[models.Client]
	locations *repository.Repository[models.Location]
	bookings  *repository.Repository[models.Booking]

	cache *cache.Cache
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewBookingService(
	clients *repository.Repository[models.Client],
	locations *repository.Repository[models.Location],
	bookings *repository.Repository[models.Booking],
	c *cache.Cache,
	auditor *audit.Dispatcher,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		clients:   clients,
		locations: locations,
		bookings:  bookings,
		cache:     c,
		audit:     auditor,
		log:       log,
	}
}

type CreateBookingInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string

	Address    string
	PostalCode string
	City       string

	Date           string
	StatusID       uint
	ParticipantsID uint
	TimeSlotID     uint
}

func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) Status {
	exists, err := s.bookings.Exists(ctx, "date = ?", in.Date)
	if err != nil {
		return s.fail("create booking", err)
	}
	if exists {
		return StatusAlreadyExists
	}

	client, err := s.findOrCreateClient(ctx, in)
	if err != nil {
		return s.fail("create booking", err)
	}

	location, err := s.findOrCreateLocation(ctx, in.Address, in.PostalCode, in.City)
	if err != nil {
		return s.fail("create booking", err)
	}

	booking, err := s.bookings.Create(ctx, &models.Booking{
		Date:           in.Date,
		StatusID:       in.StatusID,
		ClientID:       client.ID,
		ParticipantsID: in.ParticipantsID,
		TimeSlotID:     in.TimeSlotID,
		LocationID:     location.ID,
	})
	if err != nil {
		return s.fail("create booking", err)
	}

	s.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &booking.ID,
		Metadata: map[string]string{"date": booking.Date},
	})
	s.cache.Invalidate(ctx, cache.KeyBookings)

	return StatusSuccess
}

func (s *BookingService) findOrCreateClient(ctx context.Context, in CreateBookingInput) (*models.Client, error) {
	client, err := s.clients.GetOne(ctx, "email = ?", in.Email)
	if err != nil {
		return nil, err
	}
	if client != nil {
		return client, nil
	}

	return s.clients.Create(ctx, &models.Client{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
	})
}

func (s *BookingService) findOrCreateLocation(ctx context.Context, address, postalCode, city string) (*models.Location, error) {
	location, err := s.locations.GetOne(ctx, "address = ? AND postal_code = ?", address, postalCode)
	if err != nil {
		return nil, err
	}
	if location != nil {
		return location, nil
	}

	return s.locations.Create(ctx, &models.Location{
		Address:    address,
		PostalCode: postalCode,
		City:       city,
	})
}

// GetAllBookings returns the flattened read model for every booking,
// served from the cache when one is configured.
func (s *BookingService) GetAllBookings(ctx context.Context) ([]dto.BookingRow, error) {
	var rows []dto.BookingRow
	if s.cache.GetList(ctx, cache.KeyBookings, &rows) {
		return rows, nil
	}

	bookings, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	rows = make([]dto.BookingRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, dto.BookingRow{
			FirstName:    b.Client.FirstName,
			LastName:     b.Client.LastName,
			PhoneNumber:  b.Client.PhoneNumber,
			Email:        b.Client.Email,
			Address:      b.Location.Address,
			PostalCode:   b.Location.PostalCode,
			City:         b.Location.City,
			Date:         b.Date,
			Status:       b.Status.StatusText,
			Participants: b.Participants.Amount,
			Time:         fmt.Sprintf("%s-%s", b.TimeSlot.StartTime, b.TimeSlot.EndTime),
		})
	}

	s.cache.SetList(ctx, cache.KeyBookings, rows)
	return rows, nil
}

type UpdateClientInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	NewEmail    string
	OldEmail    string
}

func (s *BookingService) UpdateClient(ctx context.Context, in UpdateClientInput) Status {
	if in.NewEmail != in.OldEmail {
		taken, err := s.clients.Exists(ctx, "email = ?", in.NewEmail)
		if err != nil {
			return s.fail("update client", err)
		}
		if taken {
			return StatusAlreadyExists
		}
	}

	client, err := s.clients.GetOne(ctx, "email = ?", in.OldEmail)
	if err != nil {
		return s.fail("update client", err)
	}
	if client == nil {
		return s.fail("update client", fmt.Errorf("no client with email %q", in.OldEmail))
	}

	updated, err := s.clients.Update(ctx, client.ID, &models.Client{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		Email:       in.NewEmail,
	})
	if err != nil || updated == nil {
		return s.fail("update client", err)
	}

	s.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})
	s.cache.Invalidate(ctx, cache.KeyBookings)

	return StatusUpdated
}

type UpdateLocationInput struct {
	City          string
	NewAddress    string
	NewPostalCode string
	OldAddress    string
	OldPostalCode string
}

func (s *BookingService) UpdateLocation(ctx context.Context, in UpdateLocationInput) Status {
	if in.NewAddress != in.OldAddress || in.NewPostalCode != in.OldPostalCode {
		taken, err := s.locations.Exists(ctx, "address = ? AND postal_code = ?", in.NewAddress, in.NewPostalCode)
		if err != nil {
			return s.fail("update location", err)
		}
		if taken {
			return StatusAlreadyExists
		}
	}

	location, err := s.locations.GetOne(ctx, "address = ? AND postal_code = ?", in.OldAddress, in.OldPostalCode)
	if err != nil {
		return s.fail("update location", err)
	}
	if location == nil {
		return s.fail("update location", fmt.Errorf("no location at %q %q", in.OldAddress, in.OldPostalCode))
	}

	updated, err := s.locations.Update(ctx, location.ID, &models.Location{
		Address:    in.NewAddress,
		PostalCode: in.NewPostalCode,
		City:       in.City,
	})
	if err != nil || updated == nil {
		return s.fail("update location", err)
	}

	s.audit.Dispatch(audit.Event{
		Action:   "location_updated",
		Entity:   "location",
		EntityID: &location.ID,
	})
	s.cache.Invalidate(ctx, cache.KeyBookings)

	return StatusUpdated
}

type UpdateBookingInput struct {
	NewDate string
	OldDate string

	Email      string
	Address    string
	PostalCode string

	StatusID       uint
	ParticipantsID uint
	TimeSlotID     uint
}

// UpdateBooking re-points the booking found by OldDate at the client
// resolved by email, the location resolved by address+postal code, and the
// supplied reference ids. Changing the date onto one that another booking
// holds reports ALREADY_EXISTS.
func (s *BookingService) UpdateBooking(ctx context.Context, in UpdateBookingInput) Status {
	if in.NewDate != in.OldDate {
		taken, err := s.bookings.Exists(ctx, "date = ?", in.NewDate)
		if err != nil {
			return s.fail("update booking", err)
		}
		if taken {
			return StatusAlreadyExists
		}
	}

	client, err := s.clients.GetOne(ctx, "email = ?", in.Email)
	if err != nil {
		return s.fail("update booking", err)
	}
	if client == nil {
		return s.fail("update booking", fmt.Errorf("no client with email %q", in.Email))
	}

	location, err := s.locations.GetOne(ctx, "address = ? AND postal_code = ?", in.Address, in.PostalCode)
	if err != nil {
		return s.fail("update booking", err)
	}
	if location == nil {
		return s.fail("update booking", fmt.Errorf("no location at %q %q", in.Address, in.PostalCode))
	}

	booking, err := s.bookings.GetOne(ctx, "date = ?", in.OldDate)
	if err != nil {
		return s.fail("update booking", err)
	}
	if booking == nil {
		return s.fail("update booking", fmt.Errorf("no booking on %q", in.OldDate))
	}

	updated, err := s.bookings.Update(ctx, booking.ID, &models.Booking{
		Date:           in.NewDate,
		StatusID:       in.StatusID,
		ClientID:       client.ID,
		ParticipantsID: in.ParticipantsID,
		TimeSlotID:     in.TimeSlotID,
		LocationID:     location.ID,
	})
	if err != nil || updated == nil {
		return s.fail("update booking", err)
	}

	s.audit.Dispatch(audit.Event{
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &booking.ID,
		Metadata: map[string]string{"old_date": in.OldDate, "new_date": in.NewDate},
	})
	s.cache.Invalidate(ctx, cache.KeyBookings)

	return StatusUpdated
}

func (s *BookingService) DeleteBooking(ctx context.Context, date string) Status {
	exists, err := s.bookings.Exists(ctx, "date = ?", date)
	if err != nil {
		return s.fail("delete booking", err)
	}
	if !exists {
		return StatusNotFound
	}

	deleted, err := s.bookings.Delete(ctx, "date = ?", date)
	if err != nil || !deleted {
		return s.fail("delete booking", err)
	}

	s.audit.Dispatch(audit.Event{
		Action:   "booking_deleted",
		Entity:   "booking",
		Metadata: map[string]string{"date": date},
	})
	s.cache.Invalidate(ctx, cache.KeyBookings)

	return StatusDeleted
}

func (s *BookingService) fail(op string, err error) Status {
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("booking operation failed")
	} else {
		s.log.Error().Str("op", op).Msg("booking operation failed")
	}
	return StatusFailed
}

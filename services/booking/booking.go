package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	appointmentRepo "dentax/database/repository/appointment"
	bookingRepo "dentax/database/repository/booking"
	"dentax/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	optionsCacheKey = "appointmentOptions"
	optionsCacheTTL = 5 * time.Minute
)

// DefaultBookingService implements BookingService on the Mongo repositories,
// with a Redis cache in front of the rarely-mutated options collection.
type DefaultBookingService struct {
	OptionRepo  appointmentRepo.OptionRepository
	BookingRepo bookingRepo.BookingRepository
	Cache       *redis.Client
	Logger      *zap.Logger
}

// AvailableOptions returns every appointment option with its slots reduced to
// the ones still open on the given date. Availability is always computed
// against the live Bookings collection; only the option list itself is cached.
func (s *DefaultBookingService) AvailableOptions(date string) ([]models.AppointmentOption, error) {
	options, err := s.options()
	if err != nil {
		return nil, err
	}

	booked, err := s.BookingRepo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	ApplyAvailability(options, booked)
	return options, nil
}

// Specialties returns the name-only projection of the options.
func (s *DefaultBookingService) Specialties() ([]models.SpecialtyRef, error) {
	return s.OptionRepo.GetNames()
}

// Create inserts a booking after the conflict check. The pre-check gives the
// friendly rejection in the common case; the unique index on the collection
// catches the concurrent duplicate the check cannot see.
func (s *DefaultBookingService) Create(booking *models.Booking) (string, error) {
	exists, err := s.BookingRepo.Exists(booking.Email, booking.Treatment, booking.AppointmentDate)
	if err != nil {
		return "", err
	}
	if exists {
		return "", &ConflictError{Date: booking.AppointmentDate}
	}

	id, err := s.BookingRepo.Insert(booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			return "", &ConflictError{Date: booking.AppointmentDate}
		}
		return "", err
	}
	return id, nil
}

// BookingsByEmail returns all bookings made by the given email.
func (s *DefaultBookingService) BookingsByEmail(email string) ([]models.Booking, error) {
	return s.BookingRepo.GetByEmail(email)
}

// BookingByID returns one booking, or nil if no such booking exists.
func (s *DefaultBookingService) BookingByID(id string) (*models.Booking, error) {
	return s.BookingRepo.GetByID(id)
}

// options loads the option list through the cache. Redis being down or cold is
// never fatal; the list is fetched from Mongo and the cache refreshed best-effort.
func (s *DefaultBookingService) options() ([]models.AppointmentOption, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if s.Cache != nil {
		data, err := s.Cache.Get(ctx, optionsCacheKey).Bytes()
		if err == nil {
			var cached []models.AppointmentOption
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.Logger.Warn("options cache read failed", zap.Error(err))
		}
	}

	options, err := s.OptionRepo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(options); err == nil {
			if err := s.Cache.Set(ctx, optionsCacheKey, data, optionsCacheTTL).Err(); err != nil {
				s.Logger.Warn("options cache write failed", zap.Error(err))
			}
		}
	}
	return options, nil
}

package booking

import (
	"testing"

	bookingRepo "dentax/database/repository/booking"
	"dentax/models"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOptionRepo struct {
	options []models.AppointmentOption
}

func (f *fakeOptionRepo) GetAll() ([]models.AppointmentOption, error) {
	return f.options, nil
}

func (f *fakeOptionRepo) GetNames() ([]models.SpecialtyRef, error) {
	refs := make([]models.SpecialtyRef, 0, len(f.options))
	for _, o := range f.options {
		refs = append(refs, models.SpecialtyRef{Name: o.Name})
	}
	return refs, nil
}

type fakeBookingRepo struct {
	bookings  []models.Booking
	insertErr error
}

func (f *fakeBookingRepo) Insert(b *models.Booking) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.bookings = append(f.bookings, *b)
	return "64b000000000000000000001", nil
}

func (f *fakeBookingRepo) Exists(email, treatment, date string) (bool, error) {
	for _, b := range f.bookings {
		if b.Email == email && b.Treatment == treatment && b.AppointmentDate == date {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.AppointmentDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByEmail(email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) { return nil, nil }

func (f *fakeBookingRepo) MarkPaid(id, transactionID string) error { return nil }

func newTestService(options []models.AppointmentOption, bookings []models.Booking) (*DefaultBookingService, *fakeBookingRepo) {
	repo := &fakeBookingRepo{bookings: bookings}
	svc := &DefaultBookingService{
		OptionRepo:  &fakeOptionRepo{options: options},
		BookingRepo: repo,
		Logger:      zap.NewNop(),
	}
	return svc, repo
}

func TestCreateBooking(t *testing.T) {
	svc, repo := newTestService(nil, nil)

	id, err := svc.Create(&models.Booking{
		Email:           "pat@example.com",
		Treatment:       "Teeth Cleaning",
		AppointmentDate: "2026-09-01",
		Slot:            "08.00 AM - 09.00 AM",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Len(t, repo.bookings, 1)
	assert.Equal(t, "pat@example.com", repo.bookings[0].Email)
}

func TestCreateBookingConflict(t *testing.T) {
	existing := models.Booking{
		Email:           "pat@example.com",
		Treatment:       "Teeth Cleaning",
		AppointmentDate: "2026-09-01",
		Slot:            "08.00 AM - 09.00 AM",
	}
	svc, repo := newTestService(nil, []models.Booking{existing})

	_, err := svc.Create(&models.Booking{
		Email:           "pat@example.com",
		Treatment:       "Teeth Cleaning",
		AppointmentDate: "2026-09-01",
		Slot:            "09.00 AM - 10.00 AM",
	})
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Error(), "2026-09-01")
	// The store keeps only the original booking.
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBookingDuplicateKeyMapsToConflict(t *testing.T) {
	// A concurrent duplicate slips past the pre-check and hits the unique
	// index instead; the caller sees the same conflict result.
	svc, repo := newTestService(nil, nil)
	repo.insertErr = bookingRepo.ErrDuplicateBooking

	_, err := svc.Create(&models.Booking{
		Email:           "pat@example.com",
		Treatment:       "Teeth Cleaning",
		AppointmentDate: "2026-09-01",
	})

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Error(), "2026-09-01")
}

func TestAvailableOptionsSubtractsBookedSlots(t *testing.T) {
	options := []models.AppointmentOption{
		{Name: "Teeth Cleaning", Slots: []string{"a", "b", "c"}},
		{Name: "Cavity Protection", Slots: []string{"a", "b"}},
	}
	bookings := []models.Booking{
		{Email: "x@example.com", Treatment: "Teeth Cleaning", AppointmentDate: "2026-09-01", Slot: "b"},
		{Email: "y@example.com", Treatment: "Teeth Cleaning", AppointmentDate: "2026-09-02", Slot: "a"},
	}
	svc, _ := newTestService(options, bookings)

	got, err := svc.AvailableOptions("2026-09-01")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Only the same-date, same-treatment booking consumes a slot.
	assert.Equal(t, []string{"a", "c"}, got[0].Slots)
	assert.Equal(t, []string{"a", "b"}, got[1].Slots)
}

func TestAvailableOptionsFallsBackWhenCacheUnavailable(t *testing.T) {
	options := []models.AppointmentOption{
		{Name: "Teeth Cleaning", Slots: []string{"a", "b"}},
	}
	svc, _ := newTestService(options, nil)
	// Nothing listens on this port; every cache call errors.
	svc.Cache = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})

	got, err := svc.AvailableOptions("2026-09-01")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"a", "b"}, got[0].Slots)
}

func TestSpecialties(t *testing.T) {
	options := []models.AppointmentOption{
		{Name: "Teeth Cleaning"},
		{Name: "Oral Surgery"},
	}
	svc, _ := newTestService(options, nil)

	refs, err := svc.Specialties()
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "Teeth Cleaning", refs[0].Name)
}

package payment

import (
	"errors"
	"testing"

	"dentax/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePaymentRepo struct {
	inserted  []models.Payment
	insertErr error
}

func (f *fakePaymentRepo) Insert(p *models.Payment) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.inserted = append(f.inserted, *p)
	return "64b000000000000000000002", nil
}

type fakeBookingStore struct {
	paidID      string
	paidTxn     string
	markPaidErr error
}

func (f *fakeBookingStore) Insert(b *models.Booking) (string, error)           { return "", nil }
func (f *fakeBookingStore) Exists(email, treatment, date string) (bool, error) { return false, nil }
func (f *fakeBookingStore) GetByDate(date string) ([]models.Booking, error)    { return nil, nil }
func (f *fakeBookingStore) GetByEmail(email string) ([]models.Booking, error)  { return nil, nil }
func (f *fakeBookingStore) GetByID(id string) (*models.Booking, error)         { return nil, nil }

func (f *fakeBookingStore) MarkPaid(id, transactionID string) error {
	if f.markPaidErr != nil {
		return f.markPaidErr
	}
	f.paidID = id
	f.paidTxn = transactionID
	return nil
}

func TestAmountInCents(t *testing.T) {
	assert.Equal(t, int64(9900), AmountInCents(99))
	assert.Equal(t, int64(1050), AmountInCents(10.50))
	assert.Equal(t, int64(1), AmountInCents(0.01))
	// Float representation must not truncate a cent away.
	assert.Equal(t, int64(2999), AmountInCents(29.99))
}

func TestConfirmMarksBookingPaid(t *testing.T) {
	payRepo := &fakePaymentRepo{}
	bkRepo := &fakeBookingStore{}
	svc := &DefaultPaymentService{PaymentRepo: payRepo, BookingRepo: bkRepo, Logger: zap.NewNop()}

	id, err := svc.Confirm(&models.Payment{
		BookingID:     "64b000000000000000000001",
		Price:         99,
		TransactionID: "txn_123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Len(t, payRepo.inserted, 1)
	assert.Equal(t, "64b000000000000000000001", bkRepo.paidID)
	assert.Equal(t, "txn_123", bkRepo.paidTxn)
}

func TestConfirmReportsPartialFailure(t *testing.T) {
	payRepo := &fakePaymentRepo{}
	bkRepo := &fakeBookingStore{markPaidErr: errors.New("booking not found")}
	svc := &DefaultPaymentService{PaymentRepo: payRepo, BookingRepo: bkRepo, Logger: zap.NewNop()}

	_, err := svc.Confirm(&models.Payment{
		BookingID:     "missing",
		TransactionID: "txn_123",
	})
	require.Error(t, err)
	// The payment record stays persisted; the error names both sides.
	assert.Len(t, payRepo.inserted, 1)
	assert.Contains(t, err.Error(), "not updated")
}

func TestConfirmInsertFailureLeavesBookingUntouched(t *testing.T) {
	payRepo := &fakePaymentRepo{insertErr: errors.New("store down")}
	bkRepo := &fakeBookingStore{}
	svc := &DefaultPaymentService{PaymentRepo: payRepo, BookingRepo: bkRepo, Logger: zap.NewNop()}

	_, err := svc.Confirm(&models.Payment{BookingID: "64b000000000000000000001"})
	require.Error(t, err)
	assert.Empty(t, bkRepo.paidID)
}

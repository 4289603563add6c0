package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/entity"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
	"github.com/smartinvoice/smartinvoice-api/pkg/apperror"
	"github.com/smartinvoice/smartinvoice-api/pkg/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	intent       *payment.PaymentIntent
	intentErr    error
	confirmation *payment.PaymentConfirmation
	confirmErr   error

	createCalls  []string
	confirmCalls []string
}

func (f *fakeGateway) CreateIntent(ctx context.Context, planType string) (*payment.PaymentIntent, error) {
	f.createCalls = append(f.createCalls, planType)
	if f.intentErr != nil {
		return nil, f.intentErr
	}
	return f.intent, nil
}

func (f *fakeGateway) ConfirmPayment(ctx context.Context, intentID string) (*payment.PaymentConfirmation, error) {
	f.confirmCalls = append(f.confirmCalls, intentID)
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return f.confirmation, nil
}

type fakePaymentRepo struct {
	records       []*entity.PaymentRecord
	statusUpdates map[string]enum.PaymentStatus
	createErr     error
}

func (f *fakePaymentRepo) Create(ctx context.Context, record *entity.PaymentRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakePaymentRepo) GetByIntentID(ctx context.Context, intentID string) (*entity.PaymentRecord, error) {
	for _, r := range f.records {
		if r.PaymentIntentID == intentID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) UpdateStatus(ctx context.Context, intentID string, status enum.PaymentStatus) error {
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[string]enum.PaymentStatus)
	}
	f.statusUpdates[intentID] = status
	return nil
}

func newBillingFixture() (*BillingService, *fakeGateway, *fakePaymentRepo, *fakeProfileRepo) {
	gateway := &fakeGateway{
		intent:       &payment.PaymentIntent{ID: "pi_123", PaymentURL: "https://pay.example.com/pi_123"},
		confirmation: &payment.PaymentConfirmation{OK: true, Success: true},
	}
	paymentRepo := &fakePaymentRepo{}
	profileRepo := &fakeProfileRepo{}
	svc := NewBillingService(gateway, paymentRepo, profileRepo)
	return svc, gateway, paymentRepo, profileRepo
}

func TestPlansListsPurchasablePlans(t *testing.T) {
	svc, _, _, _ := newBillingFixture()

	plans := svc.Plans()
	require.Len(t, plans, 2)
	assert.Equal(t, enum.PlanTypeYearly, plans[0].Type)
	assert.Equal(t, 29, plans[0].PriceAED)
	assert.Equal(t, enum.PlanTypeLifetime, plans[1].Type)
	assert.Equal(t, 99, plans[1].PriceAED)
}

func TestStartCheckoutCreatesIntentAndPendingRecord(t *testing.T) {
	svc, gateway, paymentRepo, _ := newBillingFixture()
	userID := uuid.New()

	output, err := svc.StartCheckout(context.Background(), userID, enum.PlanTypeYearly)
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example.com/pi_123", output.PaymentURL)
	assert.Equal(t, "pi_123", output.PaymentIntentID)
	assert.Equal(t, enum.PlanTypeYearly, output.PlanType)
	assert.Equal(t, []string{"yearly"}, gateway.createCalls)

	require.Len(t, paymentRepo.records, 1)
	record := paymentRepo.records[0]
	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, enum.PaymentStatusPending, record.Status)
	assert.Equal(t, int64(2900), record.Amount)
}

func TestStartCheckoutRejectsNonPurchasablePlan(t *testing.T) {
	svc, gateway, _, _ := newBillingFixture()

	_, err := svc.StartCheckout(context.Background(), uuid.New(), enum.PlanTypeFree)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	assert.Empty(t, gateway.createCalls)
}

func TestStartCheckoutGatewayFailureIsRecoverable(t *testing.T) {
	svc, gateway, paymentRepo, _ := newBillingFixture()
	gateway.intentErr = errors.New("gateway timeout")

	_, err := svc.StartCheckout(context.Background(), uuid.New(), enum.PlanTypeLifetime)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperror.GetAppError(err).Code)
	assert.Empty(t, paymentRepo.records)
}

func TestStartCheckoutSurvivesRecordPersistenceFailure(t *testing.T) {
	svc, _, paymentRepo, _ := newBillingFixture()
	paymentRepo.createErr = errors.New("connection reset")

	output, err := svc.StartCheckout(context.Background(), uuid.New(), enum.PlanTypeYearly)
	require.NoError(t, err)
	assert.Equal(t, "pi_123", output.PaymentIntentID)
}

func TestConfirmPaymentActivatesYearlyPlan(t *testing.T) {
	svc, gateway, paymentRepo, profileRepo := newBillingFixture()
	userID := uuid.New()

	output, err := svc.ConfirmPayment(context.Background(), &ConfirmInput{
		UserID:          userID,
		PaymentIntentID: "pi_123",
		PlanType:        enum.PlanTypeYearly,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"pi_123"}, gateway.confirmCalls)
	assert.Equal(t, enum.PlanTypeYearly, output.PlanType)
	require.NotNil(t, output.SubscriptionExpiry)
	assert.WithinDuration(t, time.Now().Add(365*24*time.Hour), *output.SubscriptionExpiry, time.Minute)

	require.Len(t, profileRepo.planUpdates, 1)
	assert.Equal(t, enum.PlanTypeYearly, profileRepo.planUpdates[0].plan)
	require.NotNil(t, profileRepo.planUpdates[0].expiry)

	assert.Equal(t, enum.PaymentStatusConfirmed, paymentRepo.statusUpdates["pi_123"])
}

func TestConfirmPaymentLifetimeHasNoExpiry(t *testing.T) {
	svc, _, _, profileRepo := newBillingFixture()

	output, err := svc.ConfirmPayment(context.Background(), &ConfirmInput{
		UserID:          uuid.New(),
		PaymentIntentID: "pi_123",
		PlanType:        enum.PlanTypeLifetime,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PlanTypeLifetime, output.PlanType)
	assert.Nil(t, output.SubscriptionExpiry)

	require.Len(t, profileRepo.planUpdates, 1)
	assert.Nil(t, profileRepo.planUpdates[0].expiry)
}

func TestConfirmPaymentDefaultsUnknownPlanToYearly(t *testing.T) {
	svc, _, _, profileRepo := newBillingFixture()

	output, err := svc.ConfirmPayment(context.Background(), &ConfirmInput{
		UserID:          uuid.New(),
		PaymentIntentID: "pi_123",
		PlanType:        enum.PlanType("platinum"),
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PlanTypeYearly, output.PlanType)
	require.Len(t, profileRepo.planUpdates, 1)
	assert.Equal(t, enum.PlanTypeYearly, profileRepo.planUpdates[0].plan)
}

func TestConfirmPaymentRequiresIntentID(t *testing.T) {
	svc, gateway, _, _ := newBillingFixture()

	_, err := svc.ConfirmPayment(context.Background(), &ConfirmInput{
		UserID:   uuid.New(),
		PlanType: enum.PlanTypeYearly,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, "Missing payment reference. Please contact support.", appErr.Message)
	assert.Empty(t, gateway.confirmCalls)
}

func TestConfirmPaymentDeclinedMarksFailure(t *testing.T) {
	svc, gateway, paymentRepo, profileRepo := newBillingFixture()
	gateway.confirmation = &payment.PaymentConfirmation{OK: true, Success: false}

	_, err := svc.ConfirmPayment(context.Background(), &ConfirmInput{
		UserID:          uuid.New(),
		PaymentIntentID: "pi_123",
		PlanType:        enum.PlanTypeYearly,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrPaymentFailed)

	assert.Equal(t, enum.PaymentStatusFailed, paymentRepo.statusUpdates["pi_123"])
	assert.Empty(t, profileRepo.planUpdates)
}

func TestConfirmPaymentGatewayFailure(t *testing.T) {
	svc, gateway, _, profileRepo := newBillingFixture()
	gateway.confirmErr = errors.New("gateway timeout")

	_, err := svc.ConfirmPayment(context.Background(), &ConfirmInput{
		UserID:          uuid.New(),
		PaymentIntentID: "pi_123",
		PlanType:        enum.PlanTypeYearly,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperror.GetAppError(err).Code)
	assert.Empty(t, profileRepo.planUpdates)
}

func TestConfirmPaymentPlanSwitchFailureSurfaces(t *testing.T) {
	svc, _, paymentRepo, profileRepo := newBillingFixture()
	profileRepo.updatePlanErr = errors.New("connection reset")

	_, err := svc.ConfirmPayment(context.Background(), &ConfirmInput{
		UserID:          uuid.New(),
		PaymentIntentID: "pi_123",
		PlanType:        enum.PlanTypeYearly,
	})
	require.Error(t, err)

	// The payment is verified but the plan switch was lost; it must not be
	// marked confirmed
	assert.NotEqual(t, enum.PaymentStatusConfirmed, paymentRepo.statusUpdates["pi_123"])
}

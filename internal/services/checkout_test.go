package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"business-directory-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCodeSender mocks the out-of-band code delivery channel
type MockCodeSender struct {
	mock.Mock
}

func (m *MockCodeSender) SendVerificationCode(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

// MockPaymentGateway mocks the payment collaborator
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) InitiateCheckout(ctx context.Context, email string, totalAmount float64) (*CheckoutRedirect, error) {
	args := m.Called(ctx, email, totalAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CheckoutRedirect), args.Error(1)
}

func (m *MockPaymentGateway) TestConnection() error {
	args := m.Called()
	return args.Error(0)
}

// wrongCodeFor returns a well-formed six digit code different from issued
func wrongCodeFor(issued string) string {
	if issued == "000000" {
		return "111111"
	}
	return "000000"
}

func newCheckoutFixture(t *testing.T) (*CheckoutService, *MockCodeSender, *MockPaymentGateway) {
	t.Helper()
	sender := new(MockCodeSender)
	payments := new(MockPaymentGateway)
	svc := NewCheckoutService(nil, sender, payments, 5*time.Second)
	return svc, sender, payments
}

func TestCheckoutService_RejectsInvalidEmail(t *testing.T) {
	svc, sender, _ := newCheckoutFixture(t)
	sess := svc.BeginCheckout(89.25)

	err := svc.SubmitEmail(context.Background(), sess, "not-an-email")

	assert.ErrorIs(t, err, models.ErrInvalidEmailFormat)
	assert.Equal(t, models.StageCollectingEmail, sess.Stage)
	assert.Equal(t, models.ErrInvalidEmailFormat.Error(), sess.AttemptError)
	assert.Empty(t, sender.Calls, "no code may be issued for a rejected email")
}

func TestCheckoutService_VerificationScenario(t *testing.T) {
	svc, sender, _ := newCheckoutFixture(t)
	sess := svc.BeginCheckout(89.25)

	// Invalid email keeps the flow at email entry
	err := svc.SubmitEmail(context.Background(), sess, "not-an-email")
	assert.ErrorIs(t, err, models.ErrInvalidEmailFormat)
	assert.Equal(t, models.StageCollectingEmail, sess.Stage)

	// Valid email issues a code and advances
	var issued string
	sender.On("SendVerificationCode", mock.Anything, "user@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { issued = args.String(2) }).
		Return(nil).Once()

	err = svc.SubmitEmail(context.Background(), sess, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.StageAwaitingCode, sess.Stage)
	assert.Equal(t, "user@example.com", sess.Email)
	assert.Empty(t, sess.AttemptError)
	require.Len(t, issued, 6)
	assert.True(t, models.IsWellFormedCode(issued))

	// A well-formed but wrong code is rejected in place
	err = svc.SubmitCode(sess, wrongCodeFor(issued))
	assert.ErrorIs(t, err, models.ErrInvalidOrExpiredCode)
	assert.Equal(t, models.StageAwaitingCode, sess.Stage)
	assert.Equal(t, models.ErrInvalidOrExpiredCode.Error(), sess.AttemptError)

	// A wrong guess does not invalidate the issued code
	err = svc.SubmitCode(sess, issued)
	require.NoError(t, err)
	assert.Equal(t, models.StageVerified, sess.Stage)
	assert.Empty(t, sess.IssuedCode, "code is discarded after verification")
	assert.Equal(t, "user@example.com", sess.Email, "email is retained")
	assert.Empty(t, sess.AttemptError)

	// Verification happens exactly once
	err = svc.SubmitCode(sess, issued)
	assert.ErrorIs(t, err, models.ErrInvalidStage)

	sender.AssertExpectations(t)
}

func TestCheckoutService_MalformedCodeRejected(t *testing.T) {
	svc, sender, _ := newCheckoutFixture(t)
	sess := svc.BeginCheckout(25)

	sender.On("SendVerificationCode", mock.Anything, "user@example.com", mock.AnythingOfType("string")).
		Return(nil).Once()
	require.NoError(t, svc.SubmitEmail(context.Background(), sess, "user@example.com"))

	for _, code := range []string{"", "12345", "1234567", "12a456"} {
		err := svc.SubmitCode(sess, code)
		assert.ErrorIs(t, err, models.ErrInvalidOrExpiredCode)
		assert.Equal(t, models.StageAwaitingCode, sess.Stage)
	}
}

func TestCheckoutService_ResendSupersedesPriorCode(t *testing.T) {
	svc, sender, _ := newCheckoutFixture(t)
	sess := svc.BeginCheckout(60)

	var codes []string
	sender.On("SendVerificationCode", mock.Anything, "user@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { codes = append(codes, args.String(2)) }).
		Return(nil)

	require.NoError(t, svc.SubmitEmail(context.Background(), sess, "user@example.com"))
	require.NoError(t, svc.ResendCode(context.Background(), sess))
	require.Len(t, codes, 2)
	assert.Empty(t, sess.AttemptError)

	first, second := codes[0], codes[1]
	if first != second {
		err := svc.SubmitCode(sess, first)
		assert.ErrorIs(t, err, models.ErrInvalidOrExpiredCode, "superseded code must not validate")
	}

	require.NoError(t, svc.SubmitCode(sess, second))
	assert.Equal(t, models.StageVerified, sess.Stage)
}

func TestCheckoutService_BackReturnsToEmailEntry(t *testing.T) {
	svc, sender, _ := newCheckoutFixture(t)
	sess := svc.BeginCheckout(60)

	sender.On("SendVerificationCode", mock.Anything, "user@example.com", mock.AnythingOfType("string")).
		Return(nil)
	require.NoError(t, svc.SubmitEmail(context.Background(), sess, "user@example.com"))

	require.NoError(t, svc.Back(sess))
	assert.Equal(t, models.StageCollectingEmail, sess.Stage)
	assert.Empty(t, sess.IssuedCode)
	assert.Equal(t, "user@example.com", sess.Email, "email kept for re-display")

	// Back is only meaningful while awaiting a code
	assert.ErrorIs(t, svc.Back(sess), models.ErrInvalidStage)
}

func TestCheckoutService_CancelledIssuanceLeavesSessionUntouched(t *testing.T) {
	svc, sender, _ := newCheckoutFixture(t)
	sess := svc.BeginCheckout(60)

	ctx, cancel := context.WithCancel(context.Background())
	sender.On("SendVerificationCode", mock.Anything, "user@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { cancel() }).
		Return(context.Canceled)

	err := svc.SubmitEmail(ctx, sess, "user@example.com")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, models.StageCollectingEmail, sess.Stage, "a torn-down attempt must not advance")
	assert.Empty(t, sess.IssuedCode)
	assert.Empty(t, sess.Email)
}

func TestCheckoutService_SendFailureKeepsStage(t *testing.T) {
	svc, sender, _ := newCheckoutFixture(t)
	sess := svc.BeginCheckout(60)

	sender.On("SendVerificationCode", mock.Anything, "user@example.com", mock.AnythingOfType("string")).
		Return(errors.New("smtp down"))

	err := svc.SubmitEmail(context.Background(), sess, "user@example.com")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrInvalidEmailFormat)
	assert.Equal(t, models.StageCollectingEmail, sess.Stage)
	assert.Empty(t, sess.IssuedCode)
}

func TestCheckoutService_PaymentHandoffExactlyOnce(t *testing.T) {
	svc, sender, payments := newCheckoutFixture(t)
	sess := svc.BeginCheckout(89.25)

	// Handoff before verification is rejected
	_, err := svc.ConfirmPayment(context.Background(), sess)
	assert.ErrorIs(t, err, models.ErrInvalidStage)

	var issued string
	sender.On("SendVerificationCode", mock.Anything, "user@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { issued = args.String(2) }).
		Return(nil)
	require.NoError(t, svc.SubmitEmail(context.Background(), sess, "user@example.com"))
	require.NoError(t, svc.SubmitCode(sess, issued))

	payments.On("InitiateCheckout", mock.Anything, "user@example.com", 89.25).
		Return(&CheckoutRedirect{
			Reference:   "DIR-abc",
			RedirectURL: "https://pay.example.com/checkout/DIR-abc",
			Email:       "user@example.com",
			Amount:      89.25,
		}, nil).Once()

	redirect, err := svc.ConfirmPayment(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", redirect.Email)
	assert.Equal(t, 89.25, redirect.Amount)
	assert.True(t, sess.HandedOff)

	// Second confirmation must not reach the gateway again
	_, err = svc.ConfirmPayment(context.Background(), sess)
	assert.ErrorIs(t, err, models.ErrInvalidStage)
	payments.AssertNumberOfCalls(t, "InitiateCheckout", 1)
}

func TestCheckoutService_PaymentFailureIsRetryable(t *testing.T) {
	svc, sender, payments := newCheckoutFixture(t)
	sess := svc.BeginCheckout(25)

	var issued string
	sender.On("SendVerificationCode", mock.Anything, "user@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { issued = args.String(2) }).
		Return(nil)
	require.NoError(t, svc.SubmitEmail(context.Background(), sess, "user@example.com"))
	require.NoError(t, svc.SubmitCode(sess, issued))

	payments.On("InitiateCheckout", mock.Anything, "user@example.com", 25.0).
		Return(nil, errors.New("gateway offline")).Once()
	payments.On("InitiateCheckout", mock.Anything, "user@example.com", 25.0).
		Return(&CheckoutRedirect{Reference: "DIR-xyz"}, nil).Once()

	_, err := svc.ConfirmPayment(context.Background(), sess)
	assert.Error(t, err)
	assert.False(t, sess.HandedOff, "a failed handoff must stay confirmable")

	redirect, err := svc.ConfirmPayment(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "DIR-xyz", redirect.Reference)
	assert.True(t, sess.HandedOff)
}

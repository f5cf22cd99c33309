package allocator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"creditor/internal/allocator"
	"creditor/pkg/domain"
	"creditor/pkg/logger"
	mockmailer "creditor/pkg/mailer/mock"
	"creditor/pkg/serrors"
	mockstorage "creditor/pkg/storage/mock"
)

func newTestAllocator(t *testing.T) (*mockstorage.MockLedger, *mockmailer.MockDispatcher, allocator.Allocator) {
	t.Helper()

	logger.Setup(logger.DevelopmentEnvironment)

	ctrl := gomock.NewController(t)
	ledger := mockstorage.NewMockLedger(ctrl)
	dispatcher := mockmailer.NewMockDispatcher(ctrl)

	return ledger, dispatcher, allocator.New(ledger, dispatcher)
}

func fixtures() (domain.Person, domain.Credit) {
	person := domain.Person{
		ID:        domain.PersonID(uuid.New()),
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	}
	credit := domain.Credit{
		ID:     domain.CreditID(uuid.New()),
		URL:    "https://cursor.com/referral?code=GRACE20",
		Code:   "GRACE20",
		Amount: 20,
		Status: domain.CreditStatusAvailable,
	}

	return person, credit
}

func TestSendCreditTo_PersonNotFound(t *testing.T) {
	ledger, _, a := newTestAllocator(t)

	personID := domain.PersonID(uuid.New())
	ledger.EXPECT().PersonByID(gomock.Any(), personID).Return(nil, nil)

	_, err := a.SendCreditTo(context.Background(), personID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestSendCreditTo_NoCredits(t *testing.T) {
	ledger, _, a := newTestAllocator(t)

	person, _ := fixtures()
	ledger.EXPECT().PersonByID(gomock.Any(), person.ID).Return(&person, nil)
	ledger.EXPECT().NextAvailableCredit(gomock.Any()).Return(nil, nil)

	_, err := a.SendCreditTo(context.Background(), person.ID)
	require.ErrorIs(t, err, serrors.ErrNoCredits)
}

func TestSendCreditTo_DeliversAndConfirms(t *testing.T) {
	ledger, dispatcher, a := newTestAllocator(t)

	person, credit := fixtures()
	sent := credit
	sent.Status = domain.CreditStatusSent
	sent.AssignedTo = &person.ID

	ledger.EXPECT().PersonByID(gomock.Any(), person.ID).Return(&person, nil)
	ledger.EXPECT().NextAvailableCredit(gomock.Any()).Return(&credit, nil)

	gomock.InOrder(
		ledger.EXPECT().AssignCredit(gomock.Any(), credit.ID, person.ID).Return(nil),
		dispatcher.EXPECT().
			Send(gomock.Any(), person.Email, "Your Cursor Credits - $20", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, html string) error {
				require.Contains(t, html, person.FirstName)
				require.Contains(t, html, credit.URL)

				return nil
			}),
		ledger.EXPECT().MarkCreditSent(gomock.Any(), credit.ID, person.ID).Return(nil),
		ledger.EXPECT().CreditByID(gomock.Any(), credit.ID).Return(&sent, nil),
	)

	receipt, err := a.SendCreditTo(context.Background(), person.ID)
	require.NoError(t, err)
	require.Equal(t, domain.CreditStatusSent, receipt.Credit.Status)
	require.Equal(t, person.ID, *receipt.Credit.AssignedTo)
	require.True(t, receipt.Person.SentCredits)
}

func TestSendCreditTo_RevertsOnDeliveryFailure(t *testing.T) {
	ledger, dispatcher, a := newTestAllocator(t)

	person, credit := fixtures()

	ledger.EXPECT().PersonByID(gomock.Any(), person.ID).Return(&person, nil)
	ledger.EXPECT().NextAvailableCredit(gomock.Any()).Return(&credit, nil)

	gomock.InOrder(
		ledger.EXPECT().AssignCredit(gomock.Any(), credit.ID, person.ID).Return(nil),
		dispatcher.EXPECT().
			Send(gomock.Any(), person.Email, gomock.Any(), gomock.Any()).
			Return(errors.New("provider rejected message")),
		ledger.EXPECT().RevertCreditToAvailable(gomock.Any(), credit.ID).Return(nil),
	)

	_, err := a.SendCreditTo(context.Background(), person.ID)
	require.ErrorIs(t, err, serrors.ErrDeliveryFailed)
}

func TestSendCreditTo_SurfacesFailedRevert(t *testing.T) {
	ledger, dispatcher, a := newTestAllocator(t)

	person, credit := fixtures()
	revertErr := errors.New("connection lost")

	ledger.EXPECT().PersonByID(gomock.Any(), person.ID).Return(&person, nil)
	ledger.EXPECT().NextAvailableCredit(gomock.Any()).Return(&credit, nil)
	ledger.EXPECT().AssignCredit(gomock.Any(), credit.ID, person.ID).Return(nil)
	dispatcher.EXPECT().
		Send(gomock.Any(), person.Email, gomock.Any(), gomock.Any()).
		Return(errors.New("provider rejected message"))
	ledger.EXPECT().RevertCreditToAvailable(gomock.Any(), credit.ID).Return(revertErr)

	_, err := a.SendCreditTo(context.Background(), person.ID)
	require.ErrorIs(t, err, serrors.ErrDeliveryFailed)
	require.ErrorIs(t, err, revertErr)
}

func TestSendCreditTo_NoSendWithoutReservation(t *testing.T) {
	ledger, _, a := newTestAllocator(t)

	person, credit := fixtures()
	assignErr := errors.New("already reserved")

	ledger.EXPECT().PersonByID(gomock.Any(), person.ID).Return(&person, nil)
	ledger.EXPECT().NextAvailableCredit(gomock.Any()).Return(&credit, nil)
	ledger.EXPECT().AssignCredit(gomock.Any(), credit.ID, person.ID).Return(assignErr)

	_, err := a.SendCreditTo(context.Background(), person.ID)
	require.ErrorIs(t, err, assignErr)
}

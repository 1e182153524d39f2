package service

import (
	"testing"
	"time"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExpirySweeper_SweepsBothSides(t *testing.T) {
	ctrl := gomock.NewController(t)
	requests := mocks.NewMockPaymentRequestStore(ctrl)
	requestSource := mocks.NewMockRequestSweepSource(ctrl)
	opportunities := mocks.NewMockOpportunityStore(ctrl)
	oppSource := mocks.NewMockOpportunitySweepSource(ctrl)

	oppID := uuid.New()

	requestSource.EXPECT().ListPendingExpired(gomock.Any(), testNow, 100).
		Return([]string{testNonce}, nil)
	requests.EXPECT().
		TransitionStatus(gomock.Any(), testNonce, domain.RequestStatusPending, domain.RequestStatusExpired).
		Return(true, nil)
	oppSource.EXPECT().ListActiveExpired(gomock.Any(), testNow, 100).
		Return([]uuid.UUID{oppID}, nil)
	opportunities.EXPECT().
		SetStatus(gomock.Any(), oppID, domain.OpportunityStatusActive, domain.OpportunityStatusExpired).
		Return(true, nil)

	sweeper, err := NewExpirySweeper(requests, requestSource, opportunities, oppSource,
		time.Minute, 4, 100, func() time.Time { return testNow }, zerolog.Nop())
	require.NoError(t, err)
	defer sweeper.pool.Release()

	sweeper.sweep()
}

func TestExpirySweeper_NilSourcesAreSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	requests := mocks.NewMockPaymentRequestStore(ctrl)
	opportunities := mocks.NewMockOpportunityStore(ctrl)

	sweeper, err := NewExpirySweeper(requests, nil, opportunities, nil,
		time.Minute, 4, 100, nil, zerolog.Nop())
	require.NoError(t, err)
	defer sweeper.pool.Release()

	// No expectations registered: sweep must not touch the stores.
	sweeper.sweep()
}

func TestExpirySweeper_LostRaceIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	requests := mocks.NewMockPaymentRequestStore(ctrl)
	requestSource := mocks.NewMockRequestSweepSource(ctrl)

	requestSource.EXPECT().ListPendingExpired(gomock.Any(), testNow, 100).
		Return([]string{testNonce}, nil)
	// Settled between listing and the transition attempt.
	requests.EXPECT().
		TransitionStatus(gomock.Any(), testNonce, domain.RequestStatusPending, domain.RequestStatusExpired).
		Return(false, nil)

	sweeper, err := NewExpirySweeper(requests, requestSource, nil, nil,
		time.Minute, 4, 100, func() time.Time { return testNow }, zerolog.Nop())
	require.NoError(t, err)
	defer sweeper.pool.Release()

	sweeper.sweep()
}

func TestExpirySweeper_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	requests := mocks.NewMockPaymentRequestStore(ctrl)

	sweeper, err := NewExpirySweeper(requests, nil, nil, nil,
		time.Hour, 4, 100, nil, zerolog.Nop())
	require.NoError(t, err)

	sweeper.Start()
	sweeper.Stop()
}

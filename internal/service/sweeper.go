package service

import (
	"context"
	"sync"
	"time"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/internal/core/ports"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
)

// ExpirySweeper periodically persists the derived expired status of overdue
// payment requests and opportunities. It is an optional background process:
// reads derive expiry on the fly, so statuses stay correct without it; the
// sweeper only makes them durable.
type ExpirySweeper struct {
	requests      ports.PaymentRequestStore
	requestSource ports.RequestSweepSource
	opportunities ports.OpportunityStore
	oppSource     ports.OpportunitySweepSource
	interval      time.Duration
	batchSize     int
	pool          *ants.Pool
	now           func() time.Time
	log           zerolog.Logger

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewExpirySweeper creates a sweeper backed by a worker pool of the given
// size. Either sweep source may be nil, in which case that side is skipped.
func NewExpirySweeper(
	requests ports.PaymentRequestStore,
	requestSource ports.RequestSweepSource,
	opportunities ports.OpportunityStore,
	oppSource ports.OpportunitySweepSource,
	interval time.Duration,
	poolSize, batchSize int,
	now func() time.Time,
	log zerolog.Logger,
) (*ExpirySweeper, error) {
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &ExpirySweeper{
		requests:      requests,
		requestSource: requestSource,
		opportunities: opportunities,
		oppSource:     oppSource,
		interval:      interval,
		batchSize:     batchSize,
		pool:          pool,
		now:           now,
		log:           log,
		stop:          make(chan struct{}),
	}, nil
}

// Start launches the sweep loop. It returns immediately.
func (s *ExpirySweeper) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stop:
				return
			}
		}
	}()
	s.log.Info().Dur("interval", s.interval).Msg("expiry sweeper started")
}

// Stop halts the sweep loop and releases the worker pool. It blocks until
// in-flight sweeps finish.
func (s *ExpirySweeper) Stop() {
	close(s.stop)
	s.wg.Wait()
	s.pool.Release()
	s.log.Info().Msg("expiry sweeper stopped")
}

func (s *ExpirySweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	now := s.now()
	var wg sync.WaitGroup

	if s.requestSource != nil {
		nonces, err := s.requestSource.ListPendingExpired(ctx, now, s.batchSize)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to list expired payment requests")
		}
		for _, nonce := range nonces {
			nonce := nonce
			wg.Add(1)
			if err := s.pool.Submit(func() {
				defer wg.Done()
				// Losing the CAS means the request was settled or cancelled
				// between listing and here; that is not an error.
				if _, err := s.requests.TransitionStatus(ctx, nonce, domain.RequestStatusPending, domain.RequestStatusExpired); err != nil {
					s.log.Error().Err(err).Str("nonce", nonce).Msg("failed to expire payment request")
				}
			}); err != nil {
				wg.Done()
				s.log.Error().Err(err).Msg("failed to submit expiry task")
			}
		}
	}

	if s.oppSource != nil {
		ids, err := s.oppSource.ListActiveExpired(ctx, now, s.batchSize)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to list expired opportunities")
		}
		for _, id := range ids {
			id := id
			wg.Add(1)
			if err := s.pool.Submit(func() {
				defer wg.Done()
				if _, err := s.opportunities.SetStatus(ctx, id, domain.OpportunityStatusActive, domain.OpportunityStatusExpired); err != nil {
					s.log.Error().Err(err).Str("opportunity_id", id.String()).Msg("failed to expire opportunity")
				}
			}); err != nil {
				wg.Done()
				s.log.Error().Err(err).Msg("failed to submit expiry task")
			}
		}
	}

	wg.Wait()
}

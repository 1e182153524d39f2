package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/pkg/apperror"

	goredis "github.com/redis/go-redis/v9"
)

const (
	requestKeyPrefix = "payreq:"
	pendingIndexKey  = "payreq:pending"

	// Terminal records stay readable for this long past the request deadline.
	terminalRetention = 72 * time.Hour
)

// Each request lives in a hash: the immutable body under one field, the
// mutable status and settlement under their own fields. Keeping the status
// out of the body JSON lets the CAS scripts compare and swap a plain string
// without decoding JSON inside Redis. A sorted set scored by the expiry
// deadline indexes pending nonces for the sweeper; every transition out of
// pending removes the member.

var createScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('HSET', KEYS[1], 'body', ARGV[1], 'status', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
redis.call('ZADD', KEYS[2], ARGV[4], ARGV[5])
return 1
`)

var transitionScript = goredis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if not status then
	return -1
end
if status ~= ARGV[1] then
	return 0
end
redis.call('HSET', KEYS[1], 'status', ARGV[2])
redis.call('ZREM', KEYS[2], ARGV[3])
return 1
`)

var settleScript = goredis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if not status then
	return -1
end
if status ~= ARGV[1] then
	return 0
end
redis.call('HSET', KEYS[1], 'status', ARGV[2], 'settlement', ARGV[3])
return 1
`)

// RequestStore implements ports.PaymentRequestStore and
// ports.RequestSweepSource on Redis.
type RequestStore struct {
	client *goredis.Client
}

// NewRequestStore creates a Redis-backed payment request store.
func NewRequestStore(client *goredis.Client) *RequestStore {
	return &RequestStore{client: client}
}

func requestKey(nonce string) string {
	return requestKeyPrefix + nonce
}

// Create stores a new request with SET-if-absent semantics on the hash key.
func (s *RequestStore) Create(ctx context.Context, request *domain.PaymentRequest) error {
	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("marshal payment request: %w", err)
	}

	ttl := time.Until(request.ExpiresAt) + terminalRetention
	res, err := createScript.Run(ctx, s.client,
		[]string{requestKey(request.Nonce), pendingIndexKey},
		body, string(request.Status), ttl.Milliseconds(),
		request.ExpiresAt.Unix(), request.Nonce,
	).Int()
	if err != nil {
		return fmt.Errorf("redis create request: %w", err)
	}
	if res == 0 {
		return apperror.ErrNonceCollision()
	}
	return nil
}

// Get returns (nil, nil) when the nonce is unknown.
func (s *RequestStore) Get(ctx context.Context, nonce string) (*domain.PaymentRequest, error) {
	fields, err := s.client.HGetAll(ctx, requestKey(nonce)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis get request: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	var request domain.PaymentRequest
	if err := json.Unmarshal([]byte(fields["body"]), &request); err != nil {
		return nil, fmt.Errorf("unmarshal payment request: %w", err)
	}
	request.Status = domain.RequestStatus(fields["status"])
	if raw, ok := fields["settlement"]; ok && raw != "" {
		var settlement domain.SettlementRecord
		if err := json.Unmarshal([]byte(raw), &settlement); err != nil {
			return nil, fmt.Errorf("unmarshal settlement record: %w", err)
		}
		request.Settlement = &settlement
	}
	return &request, nil
}

// TransitionStatus atomically swaps the status field when it matches `from`.
func (s *RequestStore) TransitionStatus(ctx context.Context, nonce string, from, to domain.RequestStatus) (bool, error) {
	res, err := transitionScript.Run(ctx, s.client,
		[]string{requestKey(nonce), pendingIndexKey},
		string(from), string(to), nonce,
	).Int()
	if err != nil {
		return false, fmt.Errorf("redis transition request: %w", err)
	}
	if res == -1 {
		return false, apperror.ErrRequestNotFound()
	}
	return res == 1, nil
}

// RecordSettlement writes the terminal outcome, accepted only from processing.
func (s *RequestStore) RecordSettlement(ctx context.Context, nonce string, settlement *domain.SettlementRecord, to domain.RequestStatus) (bool, error) {
	raw, err := json.Marshal(settlement)
	if err != nil {
		return false, fmt.Errorf("marshal settlement record: %w", err)
	}

	res, err := settleScript.Run(ctx, s.client,
		[]string{requestKey(nonce)},
		string(domain.RequestStatusProcessing), string(to), raw,
	).Int()
	if err != nil {
		return false, fmt.Errorf("redis record settlement: %w", err)
	}
	if res == -1 {
		return false, apperror.ErrRequestNotFound()
	}
	return res == 1, nil
}

// ListPendingExpired returns nonces still in the pending index whose deadline
// has passed.
func (s *RequestStore) ListPendingExpired(ctx context.Context, now time.Time, limit int) ([]string, error) {
	nonces, err := s.client.ZRangeByScore(ctx, pendingIndexKey, &goredis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list expired requests: %w", err)
	}
	return nonces, nil
}

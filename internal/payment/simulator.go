package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"
	"github.com/SergeyBogomolovv/perfume-shop/pkg/utils"

	"github.com/google/uuid"
)

// FailingMSISDN is the customer number for which the simulator reports a failed payment.
const FailingMSISDN = "258840000000"

var errSettleRejected = errors.New("settlement rejected")

// the order row becomes visible only after checkout commits
var settleRetry = utils.RetryConfig{
	MaxAttempts:  5,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     2 * time.Second,
}

// SettleFunc receives the callbacks produced by the simulator.
type SettleFunc func(ctx context.Context, cb entities.PaymentCallback) error

// Simulator acknowledges every initiation and settles it after delay by
// delivering a callback, the way the real provider does.
type Simulator struct {
	logger      *slog.Logger
	delay       time.Duration
	successCode string

	mu     sync.Mutex
	settle SettleFunc
	wg     sync.WaitGroup
	done   chan struct{}
	once   sync.Once
}

func NewSimulator(logger *slog.Logger, delay time.Duration, successCode string) *Simulator {
	return &Simulator{
		logger:      logger.With(slog.String("client", "payment-simulator")),
		delay:       delay,
		successCode: successCode,
		done:        make(chan struct{}),
	}
}

// OnSettle wires the receiver of simulated callbacks.
func (s *Simulator) OnSettle(fn SettleFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settle = fn
}

func (s *Simulator) Initiate(ctx context.Context, req entities.PaymentRequest) (entities.PaymentAck, error) {
	if err := ctx.Err(); err != nil {
		return entities.PaymentAck{}, err
	}

	ack := entities.PaymentAck{
		ConversationID:      uuid.NewString(),
		ResponseCode:        s.successCode,
		ResponseDescription: "Request processed successfully",
	}

	cb := entities.PaymentCallback{
		ThirdPartyReference: req.Reference,
		ResultCode:          s.successCode,
		ResultDescription:   "Transaction completed",
	}
	if req.Phone == FailingMSISDN {
		cb.ResultCode = "INS-2006"
		cb.ResultDescription = "Insufficient balance"
	}

	s.wg.Add(1)
	go s.deliver(cb)

	return ack, nil
}

func (s *Simulator) deliver(cb entities.PaymentCallback) {
	defer s.wg.Done()

	select {
	case <-time.After(s.delay):
	case <-s.done:
		return
	}

	s.mu.Lock()
	settle := s.settle
	s.mu.Unlock()
	if settle == nil {
		s.logger.Warn("no callback handler, payment left pending", slog.String("reference", cb.ThirdPartyReference))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-s.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	err := utils.RetryContext(ctx, settleRetry, func(ctx context.Context) error {
		err := settle(ctx, cb)
		if err != nil && !errors.Is(err, entities.ErrOrderNotFound) {
			return fmt.Errorf("%w: %w", errSettleRejected, err)
		}
		return err
	}, errSettleRejected)
	if err != nil {
		s.logger.Error("simulated callback failed",
			slog.String("reference", cb.ThirdPartyReference),
			slog.Any("error", err),
		)
	}
}

// Close drops pending settlements and waits for running ones.
func (s *Simulator) Close() error {
	s.once.Do(func() { close(s.done) })
	s.wg.Wait()
	return nil
}

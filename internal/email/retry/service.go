package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/jobboard/internal/email"
)

var ErrOverRetryTimes = errors.New("超过最大重试次数")

// Service 发送失败时按照 retry.Strategy 重试
type Service struct {
	svc email.Service
	// 每次发送都需要一个新的 Strategy
	strategy func() retry.Strategy
}

func NewService(svc email.Service, strategy func() retry.Strategy) *Service {
	return &Service{
		svc:      svc,
		strategy: strategy,
	}
}

func (s *Service) SendMail(ctx context.Context, mail email.Mail) error {
	strategy := s.strategy()
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		err := s.svc.SendMail(ctx, mail)
		if err == nil {
			return nil
		}
		// 调用者超时或者取消，没必要再重试
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return err
		}
		interval, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("%w: %w", ErrOverRetryTimes, err)
		}
		if timer == nil {
			timer = time.NewTimer(interval)
		} else {
			timer.Reset(interval)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

package checkout

import (
	"context"
	"time"

	"github.com/lapuropizza/storefront/internal/models"
)

// PaymentProcessor settles payment for an assembled order. The storefront
// ships only the simulated implementation; a real gateway would slot in
// behind the same interface.
type PaymentProcessor interface {
	Process(ctx context.Context, order *models.Order) error
}

// SimulatedProcessor approves every payment after a fixed delay,
// mirroring the client's fake processing spinner.
type SimulatedProcessor struct {
	delay time.Duration
}

func NewSimulatedProcessor(delay time.Duration) *SimulatedProcessor {
	return &SimulatedProcessor{delay: delay}
}

func (p *SimulatedProcessor) Process(ctx context.Context, _ *models.Order) error {
	if p.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package ports

import (
	"context"

	"github.com/losdealla/members-api/internal/core/domain"
)

// MaterialService computes the cumulative material a principal has unlocked
// in a discipline's catalog.
type MaterialService interface {
	Resolve(ctx context.Context, principal *domain.Principal, discipline string) (*domain.MaterialGrant, error)
}

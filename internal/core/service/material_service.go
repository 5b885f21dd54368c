package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/losdealla/members-api/internal/core/domain"
)

// MaterialService resolves the cumulative material a principal has unlocked
// in a discipline. The resolver is a pure function of the principal and the
// static catalog set: identical inputs always produce identical output.
type MaterialService struct {
	catalogs *domain.CatalogSet
	log      zerolog.Logger
}

func NewMaterialService(catalogs *domain.CatalogSet, log zerolog.Logger) *MaterialService {
	return &MaterialService{catalogs: catalogs, log: log}
}

// Resolve returns the material unlocked up to and including the principal's
// effective level. Admins are capped at the catalog's max level instead of
// their category, but a discipline mismatch blocks them like anyone else.
func (s *MaterialService) Resolve(ctx context.Context, principal *domain.Principal, discipline string) (*domain.MaterialGrant, error) {
	discipline = normalizeDiscipline(discipline)

	catalog, err := s.catalogs.Get(discipline)
	if err != nil {
		return nil, err
	}

	if normalizeDiscipline(principal.Discipline) != discipline {
		s.log.Warn().
			Str("email", principal.Email).
			Str("user_discipline", principal.Discipline).
			Str("requested", discipline).
			Msg("discipline mismatch")
		return nil, domain.ErrNoDisciplineAccess
	}

	level := principal.Category
	if level < 0 {
		level = 0
	}
	if principal.IsAdmin() {
		level = catalog.MaxLevel()
	}

	material := make([]string, 0)
	for i := 0; i <= level; i++ {
		material = append(material, catalog.Items(i)...)
	}

	s.log.Info().
		Str("email", principal.Email).
		Str("discipline", discipline).
		Int("level", level).
		Strs("material", material).
		Msg("material resolved")

	return &domain.MaterialGrant{
		Discipline: discipline,
		Level:      level,
		Material:   material,
	}, nil
}

// normalizeDiscipline applies the same normalization users' discipline tags
// get on write: trimmed and lower-cased.
func normalizeDiscipline(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

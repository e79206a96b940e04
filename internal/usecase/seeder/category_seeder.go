package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/courseflow/courseflow-backend/internal/domain"
)

// Fixed UUIDs for the default categories so reseeding stays idempotent
var (
	CatCourses    = uuid.MustParse("00000000-0000-0000-0000-000000000101")
	CatPourboires = uuid.MustParse("00000000-0000-0000-0000-000000000102")
	CatCarburant  = uuid.MustParse("00000000-0000-0000-0000-000000000201")
	CatEntretien  = uuid.MustParse("00000000-0000-0000-0000-000000000202")
	CatPeages     = uuid.MustParse("00000000-0000-0000-0000-000000000203")
	CatAssurance  = uuid.MustParse("00000000-0000-0000-0000-000000000204")
)

// CategorySeeder ensures the default ledger categories exist
type CategorySeeder struct {
	repo domain.CategoryRepository
}

// NewCategorySeeder creates a new CategorySeeder instance
func NewCategorySeeder(repo domain.CategoryRepository) *CategorySeeder {
	return &CategorySeeder{repo: repo}
}

// Seed creates the default categories a fresh install starts with.
// Categories that already exist are left untouched.
func (s *CategorySeeder) Seed(ctx context.Context) error {
	defaults := []domain.Category{
		{ID: CatCourses, Name: "Courses", Side: domain.SideRevenue},
		{ID: CatPourboires, Name: "Pourboires", Side: domain.SideRevenue},
		{ID: CatCarburant, Name: "Carburant", Side: domain.SideExpense},
		{ID: CatEntretien, Name: "Entretien", Side: domain.SideExpense},
		{ID: CatPeages, Name: "Péages", Side: domain.SideExpense},
		{ID: CatAssurance, Name: "Assurance", Side: domain.SideExpense},
	}

	for _, def := range defaults {
		if _, err := s.repo.GetByID(ctx, def.ID); err == nil {
			continue
		}

		category := def
		if err := category.Validate(); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, &category); err != nil {
			return err
		}
	}

	return nil
}

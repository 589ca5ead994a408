package repository

import "context"
import "github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/models"

type ComplaintRepository interface {
	// List returns complaints most-recent-first (storage order).
	List(ctx context.Context) ([]models.Complaint, error)
	Get(ctx context.Context, id string) (*models.Complaint, error)
	Create(ctx context.Context, c *models.Complaint) error
	Stats(ctx context.Context) (total, uniqueUsers, uniqueCompanies int, err error)
}

type HearingRepository interface {
	// List returns all persisted manual hearings.
	List(ctx context.Context) ([]models.HearingSlot, error)
	// Upsert creates (assigning an id) or replaces by id. It never dedupes
	// by date+time.
	Upsert(ctx context.Context, h *models.HearingSlot) error
	// Delete removes by id; a missing id is a no-op.
	Delete(ctx context.Context, id string) error
}

type CompanyRepository interface {
	List(ctx context.Context) ([]models.Company, error)
}

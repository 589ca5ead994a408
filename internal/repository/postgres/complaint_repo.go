package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ComplaintRepo struct{ db *pgxpool.Pool }

func NewComplaintRepo(db *pgxpool.Pool) *ComplaintRepo { return &ComplaintRepo{db: db} }

// List returns every complaint most-recent-first; the scheduler reverses this
// to serve oldest first.
func (r *ComplaintRepo) List(ctx context.Context) ([]models.Complaint, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, alias, full_name, phone, email, problem, denounced_company,
		       resolutions, specific_petitions, COALESCE(files_url, ''), status, created_at
		FROM complaints
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Complaint
	for rows.Next() {
		var c models.Complaint
		if err := rows.Scan(
			&c.ID, &c.Alias, &c.FullName, &c.Phone, &c.Email, &c.Problem,
			&c.DenouncedCompany, &c.Resolutions, &c.SpecificPetitions,
			&c.FilesURL, &c.Status, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ComplaintRepo) Get(ctx context.Context, id string) (*models.Complaint, error) {
	var c models.Complaint
	err := r.db.QueryRow(ctx, `
		SELECT id, alias, full_name, phone, email, problem, denounced_company,
		       resolutions, specific_petitions, COALESCE(files_url, ''), status, created_at
		FROM complaints WHERE id = $1
	`, id).Scan(
		&c.ID, &c.Alias, &c.FullName, &c.Phone, &c.Email, &c.Problem,
		&c.DenouncedCompany, &c.Resolutions, &c.SpecificPetitions,
		&c.FilesURL, &c.Status, &c.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *ComplaintRepo) Create(ctx context.Context, c *models.Complaint) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = "Ingresado"
	}
	c.CreatedAt = time.Now()

	// Alias follows the front desk numbering: CAT-DEF-<year>-<seq>.
	var seq int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) + 1 FROM complaints WHERE date_part('year', created_at) = $1`,
		c.CreatedAt.Year(),
	).Scan(&seq); err != nil {
		return err
	}
	c.Alias = fmt.Sprintf("CAT-DEF-%d-%04d", c.CreatedAt.Year(), seq)

	_, err := r.db.Exec(ctx, `
		INSERT INTO complaints
			(id, alias, full_name, phone, email, problem, denounced_company,
			 resolutions, specific_petitions, files_url, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`, c.ID, c.Alias, c.FullName, c.Phone, c.Email, c.Problem, c.DenouncedCompany,
		c.Resolutions, c.SpecificPetitions, c.FilesURL, c.Status, c.CreatedAt)
	return err
}

// Stats backs the dashboard header cards.
func (r *ComplaintRepo) Stats(ctx context.Context) (total, uniqueUsers, uniqueCompanies int, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT email), COUNT(DISTINCT denounced_company)
		FROM complaints
	`).Scan(&total, &uniqueUsers, &uniqueCompanies)
	return
}

package postgres

import (
	"context"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CompanyRepo struct{ db *pgxpool.Pool }

func NewCompanyRepo(db *pgxpool.Pool) *CompanyRepo { return &CompanyRepo{db: db} }

func (r *CompanyRepo) List(ctx context.Context) ([]models.Company, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, COALESCE(address, '') FROM companies ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Address); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

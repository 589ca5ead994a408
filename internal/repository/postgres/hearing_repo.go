package postgres

import (
	"context"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HearingRepo struct{ db *pgxpool.Pool }

func NewHearingRepo(db *pgxpool.Pool) *HearingRepo { return &HearingRepo{db: db} }

func (r *HearingRepo) List(ctx context.Context) ([]models.HearingSlot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, COALESCE(hearing_date, ''), hearing_time, claimant, defendant,
		       COALESCE(complaint_id, '')
		FROM manual_hearings
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.HearingSlot
	for rows.Next() {
		h := models.HearingSlot{IsManual: true}
		if err := rows.Scan(&h.ID, &h.Date, &h.Time, &h.Claimant, &h.Defendant, &h.ComplaintID); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Upsert appends when h.ID is empty (assigning a fresh id) and replaces in
// place otherwise. Two manual hearings at the same date+time are allowed; the
// store never dedupes.
func (r *HearingRepo) Upsert(ctx context.Context, h *models.HearingSlot) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO manual_hearings (id, hearing_date, hearing_time, claimant, defendant, complaint_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (id) DO UPDATE SET
			hearing_date = EXCLUDED.hearing_date,
			hearing_time = EXCLUDED.hearing_time,
			claimant     = EXCLUDED.claimant,
			defendant    = EXCLUDED.defendant,
			complaint_id = EXCLUDED.complaint_id
	`, h.ID, h.Date, h.Time, h.Claimant, h.Defendant, h.ComplaintID)
	return err
}

// Delete is a no-op for an unknown id.
func (r *HearingRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM manual_hearings WHERE id = $1`, id)
	return err
}

// internal/repository/preset_repository.go
package repository

import (
	"context"
	"database/sql"

	"adproof/internal/models"
)

// PresetRepository stores saved creative snapshots. Save enforces the cap:
// after an insert only the newest models.PresetCap rows survive. Lookups
// report a missing preset as sql.ErrNoRows regardless of backend.
type PresetRepository interface {
	List(ctx context.Context) ([]*models.Preset, error)
	Save(ctx context.Context, preset *models.Preset) error
	GetByID(ctx context.Context, id string) (*models.Preset, error)
	Delete(ctx context.Context, id string) error
}

type presetRepository struct {
	db *sql.DB
}

func NewPresetRepository(db *sql.DB) PresetRepository {
	return &presetRepository{db: db}
}

func (r *presetRepository) List(ctx context.Context) ([]*models.Preset, error) {
	query := `
		SELECT id, name, headline, subhead, cta_label, accent_color, dark_theme,
		       scale, offset_x, offset_y, saved_at
		FROM presets
		ORDER BY saved_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []*models.Preset
	for rows.Next() {
		var p models.Preset
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Content.Headline,
			&p.Content.Subhead,
			&p.Content.CTALabel,
			&p.Content.AccentColor,
			&p.Content.DarkTheme,
			&p.Transform.Scale,
			&p.Transform.Offset.X,
			&p.Transform.Offset.Y,
			&p.SavedAt,
		); err != nil {
			return nil, err
		}
		presets = append(presets, &p)
	}

	return presets, rows.Err()
}

func (r *presetRepository) Save(ctx context.Context, preset *models.Preset) error {
	query := `
		INSERT INTO presets (
			id, name, headline, subhead, cta_label, accent_color, dark_theme,
			scale, offset_x, offset_y, saved_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		preset.ID,
		preset.Name,
		preset.Content.Headline,
		preset.Content.Subhead,
		preset.Content.CTALabel,
		preset.Content.AccentColor,
		preset.Content.DarkTheme,
		preset.Transform.Scale,
		preset.Transform.Offset.X,
		preset.Transform.Offset.Y,
		preset.SavedAt,
	)
	if err != nil {
		return err
	}

	prune := `
		DELETE FROM presets
		WHERE id NOT IN (SELECT id FROM presets ORDER BY saved_at DESC LIMIT $1)
	`
	_, err = r.db.ExecContext(ctx, prune, models.PresetCap)
	return err
}

func (r *presetRepository) GetByID(ctx context.Context, id string) (*models.Preset, error) {
	query := `
		SELECT id, name, headline, subhead, cta_label, accent_color, dark_theme,
		       scale, offset_x, offset_y, saved_at
		FROM presets
		WHERE id = $1
	`

	var p models.Preset
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Content.Headline,
		&p.Content.Subhead,
		&p.Content.CTALabel,
		&p.Content.AccentColor,
		&p.Content.DarkTheme,
		&p.Transform.Scale,
		&p.Transform.Offset.X,
		&p.Transform.Offset.Y,
		&p.SavedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *presetRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM presets WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

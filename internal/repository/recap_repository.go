package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/jmo2498/MLB/internal/model"
)

type RecapRepository struct {
	db *sql.DB
}

func NewRecapRepository(db *sql.DB) *RecapRepository {
	return &RecapRepository{db: db}
}

// SaveRecap stores a recap, replacing any earlier recap of the same game for the same team.
func (r *RecapRepository) SaveRecap(recap *model.StoredRecap) error {
	summary, err := json.Marshal(recap.Summary)
	if err != nil {
		return err
	}

	return r.db.QueryRow(`
		INSERT INTO game_recap(game_pk, team_id, game_date, summary, model_used)
		VALUES($1, $2, $3, $4, $5)
		ON CONFLICT (game_pk, team_id) DO UPDATE
		SET summary = EXCLUDED.summary, model_used = EXCLUDED.model_used, game_date = EXCLUDED.game_date, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`, recap.GamePk, recap.TeamID, recap.GameDate, summary, recap.ModelUsed).Scan(&recap.ID, &recap.CreatedAt, &recap.UpdatedAt)
}

func (r *RecapRepository) GetRecap(gamePk, teamID int) (*model.StoredRecap, error) {
	row := r.db.QueryRow(`
		SELECT id, game_pk, team_id, to_char(game_date, 'YYYY-MM-DD'), summary, model_used, created_at, updated_at
		FROM game_recap
		WHERE game_pk = $1 AND team_id = $2
	`, gamePk, teamID)

	recap, err := scanRecap(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return recap, nil
}

func (r *RecapRepository) GetRecaps(limit, offset int) ([]model.StoredRecap, error) {
	rows, err := r.db.Query(`
		SELECT id, game_pk, team_id, to_char(game_date, 'YYYY-MM-DD'), summary, model_used, created_at, updated_at
		FROM game_recap
		ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recaps []model.StoredRecap
	for rows.Next() {
		recap, err := scanRecap(rows)
		if err != nil {
			return nil, err
		}
		recaps = append(recaps, *recap)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return recaps, nil
}

func (r *RecapRepository) GetRecapTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM game_recap`).Scan(&total)
	return total, err
}

func (r *RecapRepository) Ping() error {
	return r.db.Ping()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecap(row rowScanner) (*model.StoredRecap, error) {
	var recap model.StoredRecap
	var summaryJSON []byte

	err := row.Scan(&recap.ID, &recap.GamePk, &recap.TeamID, &recap.GameDate, &summaryJSON, &recap.ModelUsed, &recap.CreatedAt, &recap.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(summaryJSON, &recap.Summary); err != nil {
		return nil, err
	}

	return &recap, nil
}

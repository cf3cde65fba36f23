package filters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/psqlbuilder"
)

const table = "agenda_filter_selections"

// Repository хранит выбор фильтров агенды в PostgreSQL
type Repository struct {
	db  DBExecutor
	now func() time.Time
}

// NewRepository создает новый экземпляр репозитория фильтров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Get возвращает nil, nil если у пользователя нет сохраненного выбора
func (r *Repository) Get(ctx context.Context, userID string) (*domain.FilterSelection, error) {
	query, args, err := psqlbuilder.Select(
		"statuses",
		"professional_ids",
		"include_no_preference",
		"kind",
	).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		statuses []string
		ids      []string
		noPref   bool
		kind     sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		pq.Array(&statuses),
		pq.Array(&ids),
		&noPref,
		&kind,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan selection: %v", ErrScanRow, err)
	}

	sel := domain.FilterSelection{
		ProfessionalIDs:     ids,
		IncludeNoPreference: noPref,
		Kind:                domain.ProfessionalKind(kind.String),
	}
	for _, s := range statuses {
		sel.Statuses = append(sel.Statuses, domain.Status(s))
	}
	return &sel, nil
}

// Save создает или перезаписывает выбор пользователя
func (r *Repository) Save(ctx context.Context, userID string, sel domain.FilterSelection) error {
	statuses := make([]string, 0, len(sel.Statuses))
	for _, s := range sel.Statuses {
		statuses = append(statuses, string(s))
	}
	ids := append([]string{}, sel.ProfessionalIDs...)

	query, args, err := psqlbuilder.Insert(table).
		Columns("user_id", "statuses", "professional_ids", "include_no_preference", "kind", "updated_at").
		Values(userID, pq.Array(statuses), pq.Array(ids), sel.IncludeNoPreference, string(sel.Kind), r.now()).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			statuses = EXCLUDED.statuses,
			professional_ids = EXCLUDED.professional_ids,
			include_no_preference = EXCLUDED.include_no_preference,
			kind = EXCLUDED.kind,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Delete удаляет выбор пользователя
func (r *Repository) Delete(ctx context.Context, userID string) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

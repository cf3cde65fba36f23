package checkin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/psqlbuilder"
)

const table = "checkin_records"

var columns = []string{
	"id",
	"appointment_id",
	"customer_id",
	"pet_id",
	"customer_name",
	"pet_name",
	"mobile_ddd",
	"mobile",
	"landline_ddd",
	"landline",
	"cep",
	"street",
	"number",
	"complement",
	"pre_bath_notes",
	"restrictions",
	"medications",
	"submitted_by",
	"submitted_at",
}

// Repository репозиторий заполненных форм check-in
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория check-in
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет check-in. Пустой ID генерируется.
func (r *Repository) Create(ctx context.Context, rec *domain.CheckinRecord) (*domain.CheckinRecord, error) {
	out := *rec
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	if out.SubmittedAt.IsZero() {
		out.SubmittedAt = time.Now()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			out.ID,
			out.AppointmentID,
			out.CustomerID,
			out.PetID,
			out.CustomerName,
			out.PetName,
			out.Contact.MobileDDD,
			out.Contact.Mobile,
			out.Contact.LandlineDDD,
			out.Contact.Landline,
			out.Address.CEP,
			out.Address.Street,
			out.Address.Number,
			out.Address.Complement,
			out.PreBathNotes,
			out.Restrictions,
			out.Medications,
			out.SubmittedBy,
			out.SubmittedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return &out, nil
}

// GetByID получает check-in по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.CheckinRecord, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rec, err := scan(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCheckinNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan checkin: %v", ErrScanRow, err)
	}
	return rec, nil
}

// ListByAppointment возвращает check-ins записи, новые первыми
func (r *Repository) ListByAppointment(ctx context.Context, appointmentID string) ([]domain.CheckinRecord, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		OrderBy("submitted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]domain.CheckinRecord, 0)
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByAppointment - scan checkin: %v", ErrScanRow, err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - rows: %v", ErrScanRow, err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scan(row scanner) (*domain.CheckinRecord, error) {
	var rec domain.CheckinRecord
	err := row.Scan(
		&rec.ID,
		&rec.AppointmentID,
		&rec.CustomerID,
		&rec.PetID,
		&rec.CustomerName,
		&rec.PetName,
		&rec.Contact.MobileDDD,
		&rec.Contact.Mobile,
		&rec.Contact.LandlineDDD,
		&rec.Contact.Landline,
		&rec.Address.CEP,
		&rec.Address.Street,
		&rec.Address.Number,
		&rec.Address.Complement,
		&rec.PreBathNotes,
		&rec.Restrictions,
		&rec.Medications,
		&rec.SubmittedBy,
		&rec.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

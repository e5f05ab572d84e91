package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"wattplan-cloud/internal/calc"
	"wattplan-cloud/internal/extraction"
	proposal "wattplan-cloud/internal/proposal/domain"
	"wattplan-cloud/internal/slides"
)

// Repository persists proposals. Customer, bills, calculations and slides
// are stored as opaque jsonb payloads; the lifecycle columns stay
// relational so listing does not deserialize every snapshot.
type Repository struct {
	db *sql.DB
}

// NewRepository constructs a repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save upserts a proposal.
func (r *Repository) Save(ctx context.Context, p *proposal.Proposal) error {
	if r == nil || r.db == nil {
		return errors.New("proposal repo: nil db")
	}
	if p == nil {
		return proposal.ErrNilProposal
	}
	if p.ID == "" {
		return proposal.ErrEmptyID
	}

	customerJSON, err := json.Marshal(p.Customer)
	if err != nil {
		return err
	}
	electricityJSON, err := marshalPtr(p.ElectricityBill)
	if err != nil {
		return err
	}
	gasJSON, err := marshalPtr(p.GasBill)
	if err != nil {
		return err
	}
	warningsJSON, err := marshalSlice(p.Warnings)
	if err != nil {
		return err
	}
	calculationsJSON, err := marshalPtr(p.Calculations)
	if err != nil {
		return err
	}
	slidesJSON, err := marshalSlice(p.Slides)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO proposals (
	id, customer, electricity_bill, gas_bill, warnings, status,
	calculations, slides_data, created_at, updated_at, deleted_at
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11
)
ON CONFLICT (id) DO UPDATE SET
	customer = EXCLUDED.customer,
	electricity_bill = EXCLUDED.electricity_bill,
	gas_bill = EXCLUDED.gas_bill,
	warnings = EXCLUDED.warnings,
	status = EXCLUDED.status,
	calculations = EXCLUDED.calculations,
	slides_data = EXCLUDED.slides_data,
	updated_at = EXCLUDED.updated_at,
	deleted_at = EXCLUDED.deleted_at`,
		p.ID, customerJSON, electricityJSON, gasJSON, warningsJSON, p.Status,
		calculationsJSON, slidesJSON, p.CreatedAt, p.UpdatedAt, nullTime(p.DeletedAt),
	)
	return err
}

// Get loads a proposal, deleted or not.
func (r *Repository) Get(ctx context.Context, id string) (*proposal.Proposal, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("proposal repo: nil db")
	}
	if id == "" {
		return nil, proposal.ErrEmptyID
	}
	row := r.db.QueryRowContext(ctx, `
SELECT id, customer, electricity_bill, gas_bill, warnings, status,
	calculations, slides_data, created_at, updated_at, deleted_at
FROM proposals
WHERE id = $1`, id)
	return scanProposal(row)
}

// List returns proposals newest first, excluding deleted ones unless asked.
func (r *Repository) List(ctx context.Context, includeDeleted bool) ([]*proposal.Proposal, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("proposal repo: nil db")
	}
	query := `
SELECT id, customer, electricity_bill, gas_bill, warnings, status,
	calculations, slides_data, created_at, updated_at, deleted_at
FROM proposals`
	if !includeDeleted {
		query += `
WHERE deleted_at IS NULL`
	}
	query += `
ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*proposal.Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProposal(row rowScanner) (*proposal.Proposal, error) {
	var (
		p               proposal.Proposal
		customerJSON    []byte
		electricityJSON []byte
		gasJSON         []byte
		warningsJSON    []byte
		calcJSON        []byte
		slidesJSON      []byte
		deletedAt       sql.NullTime
	)
	err := row.Scan(&p.ID, &customerJSON, &electricityJSON, &gasJSON, &warningsJSON,
		&p.Status, &calcJSON, &slidesJSON, &p.CreatedAt, &p.UpdatedAt, &deletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, proposal.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(customerJSON, &p.Customer); err != nil {
		return nil, err
	}
	if err := unmarshalNullable(electricityJSON, &p.ElectricityBill); err != nil {
		return nil, err
	}
	if err := unmarshalNullable(gasJSON, &p.GasBill); err != nil {
		return nil, err
	}
	if len(warningsJSON) > 0 {
		var warnings []extraction.Warning
		if err := json.Unmarshal(warningsJSON, &warnings); err != nil {
			return nil, err
		}
		p.Warnings = warnings
	}
	if len(calcJSON) > 0 {
		var calculations calc.Calculations
		if err := json.Unmarshal(calcJSON, &calculations); err != nil {
			return nil, err
		}
		p.Calculations = &calculations
	}
	if len(slidesJSON) > 0 {
		var slideList []slides.Slide
		if err := json.Unmarshal(slidesJSON, &slideList); err != nil {
			return nil, err
		}
		p.Slides = slideList
	}
	if deletedAt.Valid {
		at := deletedAt.Time
		p.DeletedAt = &at
	}
	return &p, nil
}

func marshalPtr[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func marshalSlice[T any](v []T) ([]byte, error) {
	if len(v) == 0 {
		return nil, nil
	}
	return json.Marshal(v)
}

func unmarshalNullable[T any](data []byte, target **T) error {
	if len(data) == 0 {
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*target = &value
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

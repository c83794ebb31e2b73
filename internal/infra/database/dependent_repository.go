package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
)

type DependentRepository struct {
	DB *sql.DB
}

func NewDependentRepository(db *sql.DB) *DependentRepository {
	return &DependentRepository{DB: db}
}

func (r *DependentRepository) Create(ctx context.Context, dependent *entity.Dependent) error {
	query := `
		INSERT INTO dependents (id, customer_id, name, cpf, birth_date, kinship, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		dependent.ID,
		dependent.CustomerID,
		dependent.Name,
		dependent.CPF,
		dependent.BirthDate,
		dependent.Kinship,
		dependent.CreatedAt,
		dependent.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("falha ao salvar dependente: %w", err)
	}

	return nil
}

func (r *DependentRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*entity.Dependent, error) {
	query := `
		SELECT id, customer_id, name, cpf, birth_date, kinship, created_at, updated_at
		FROM dependents
		WHERE customer_id = $1
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dependents []*entity.Dependent
	for rows.Next() {
		var d entity.Dependent
		if err := rows.Scan(
			&d.ID,
			&d.CustomerID,
			&d.Name,
			&d.CPF,
			&d.BirthDate,
			&d.Kinship,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		dependents = append(dependents, &d)
	}

	return dependents, rows.Err()
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"

	"github.com/lib/pq"
	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
)

type CustomerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, cpf, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		c.CPF,
		c.Phone,
		c.CreatedAt,
		c.UpdatedAt,
	)

	if err != nil {
		// 23505 = unique_violation; o índice único é quem decide a
		// corrida entre dois checkouts simultâneos do mesmo CPF/e-mail.
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.Constraint, "cpf") {
				return entity.ErrCPFAlreadyExists
			}
			return entity.ErrEmailAlreadyExists
		}

		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	return nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return r.findOne(ctx, `SELECT id, name, email, cpf, phone, created_at, updated_at FROM customers WHERE email = $1`, email)
}

func (r *CustomerRepository) FindByCPF(ctx context.Context, cpf string) (*entity.Customer, error) {
	return r.findOne(ctx, `SELECT id, name, email, cpf, phone, created_at, updated_at FROM customers WHERE cpf = $1`, cpf)
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	return r.findOne(ctx, `SELECT id, name, email, cpf, phone, created_at, updated_at FROM customers WHERE id = $1`, id)
}

// findOne devolve (nil, nil) quando não há linha: ausência não é erro.
func (r *CustomerRepository) findOne(ctx context.Context, query string, arg any) (*entity.Customer, error) {
	var c entity.Customer

	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.CPF,
		&c.Phone,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}

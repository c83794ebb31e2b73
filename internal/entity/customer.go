package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

var (
	ErrEmailAlreadyExists = errors.New("e-mail já cadastrado")
	ErrCPFAlreadyExists   = errors.New("cpf já cadastrado")
)

// Entidade: Customer. CPF e telefone são guardados normalizados
// (somente dígitos); a unicidade de e-mail e CPF é garantida pelo
// banco no momento da escrita, não aqui.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factory
func NewCustomer(name, email, cpf, phone string) (*Customer, error) {
	customer := &Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		CPF:       cpf,
		Phone:     phone,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	return customer, nil
}

func (c *Customer) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	if c.CPF == "" {
		return errors.New("cpf is required")
	}
	if c.Phone == "" {
		return errors.New("phone is required")
	}
	return nil
}

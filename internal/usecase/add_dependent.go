package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
)

type AddDependentInput struct {
	SubscriptionID string `json:"subscription_id"`
	Name           string `json:"name"`
	CPF            string `json:"cpf"`
	BirthDate      string `json:"birth_date"`
	Kinship        string `json:"kinship"`
}

type AddDependentUseCase struct {
	Subs       SubscriptionRepositoryInterface
	Plans      PlanCatalogInterface
	Dependents entity.DependentRepositoryInterface
}

func NewAddDependentUseCase(
	subs SubscriptionRepositoryInterface,
	plans PlanCatalogInterface,
	dependents entity.DependentRepositoryInterface,
) *AddDependentUseCase {
	return &AddDependentUseCase{
		Subs:       subs,
		Plans:      plans,
		Dependents: dependents,
	}
}

// Execute vincula um dependente ao titular de uma assinatura paga,
// respeitando o teto de dependentes do plano.
func (uc *AddDependentUseCase) Execute(ctx context.Context, input AddDependentInput) (*entity.Dependent, error) {
	if !IsValidCPF(input.CPF) {
		return nil, &DomainError{Code: CodeValidation, Message: "cpf do dependente é inválido"}
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "nome do dependente é obrigatório"}
	}

	sub, err := uc.Subs.FindByID(ctx, input.SubscriptionID)
	if err != nil {
		return nil, &DomainError{Code: CodePlanNotFound, Message: "assinatura não encontrada"}
	}
	if sub.Status != entity.StatusPaid {
		return nil, &DomainError{Code: CodeValidation, Message: "assinatura precisa estar paga para incluir dependentes"}
	}

	plan, err := uc.Plans.FindByID(ctx, sub.PlanID)
	if err != nil {
		return nil, &DomainError{Code: CodePlanNotFound, Message: "plano inválido"}
	}
	if plan.MaxDependents == 0 {
		return nil, &DomainError{Code: CodeValidation, Message: "plano não permite dependentes"}
	}

	existing, err := uc.Dependents.FindByCustomerID(ctx, sub.CustomerID)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "falha ao consultar dependentes: " + err.Error()}
	}
	if len(existing) >= plan.MaxDependents {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: fmt.Sprintf("plano permite no máximo %d dependentes", plan.MaxDependents),
		}
	}

	dependent, err := entity.NewDependent(sub.CustomerID, strings.TrimSpace(input.Name), OnlyDigits(input.CPF), input.BirthDate, strings.ToUpper(input.Kinship))
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.Dependents.Create(ctx, dependent); err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "falha ao salvar dependente: " + err.Error()}
	}

	return dependent, nil
}

package usecase

import "errors"

// Códigos de DomainError: culpa do chamador, nunca retentados.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeDuplicateCPF = "DUPLICATE_CPF"
	CodePlanNotFound = "PLAN_NOT_FOUND"
)

// Códigos de TechnicalError: falha de infraestrutura.
const (
	CodeDatabase           = "DATABASE_ERROR"
	CodeGatewayUnavailable = "GATEWAY_UNAVAILABLE"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// ErrorCode extrai o código de qualquer erro das famílias acima.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	var te *TechnicalError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	nonDigits = regexp.MustCompile(`\D`)
	nameChars = regexp.MustCompile(`^[\p{L} ]+$`)
)

// OnlyDigits remove tudo que não for dígito (máscaras de CPF/telefone).
func OnlyDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

func ValidateCheckoutInput(input CheckoutInput) []ValidationError {
	var errors []ValidationError

	name := strings.TrimSpace(input.Name)
	if name == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if utf8.RuneCountInString(name) < 2 {
		errors = append(errors, ValidationError{"name", "must have at least 2 characters"})
	} else if utf8.RuneCountInString(name) > 100 {
		errors = append(errors, ValidationError{"name", "must not exceed 100 characters"})
	} else if !nameChars.MatchString(name) {
		errors = append(errors, ValidationError{"name", "must contain only letters and spaces"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.CPF == "" {
		errors = append(errors, ValidationError{"cpf", "is required"})
	} else if !IsValidCPF(input.CPF) {
		errors = append(errors, ValidationError{"cpf", "is invalid"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if !IsValidPhone(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	if input.PlanID <= 0 {
		errors = append(errors, ValidationError{"plan_id", "is required"})
	}

	switch entity.PaymentMethod(strings.ToLower(input.PaymentMethod)) {
	case entity.MethodPix, entity.MethodCredit, entity.MethodBoleto:
	case "":
		errors = append(errors, ValidationError{"payment_method", "is required"})
	default:
		errors = append(errors, ValidationError{"payment_method", "must be pix, credit or boleto"})
	}

	if input.Installments < 1 || input.Installments > 12 {
		errors = append(errors, ValidationError{"installments", "must be between 1 and 12"})
	}

	return errors
}

// IsValidCPF aplica o checksum oficial do CPF: somente estrutura, não
// consulta cadastro. Pesos 10..2 para o primeiro dígito verificador e
// 11..2 para o segundo; resto = 11 - soma%11, e resto >= 10 vale 0.
func IsValidCPF(cpf string) bool {
	cleaned := OnlyDigits(cpf)

	if len(cleaned) != 11 {
		return false
	}

	// Sequências repetidas ("000...", "111...") passam no checksum mas
	// constam na lista pública de CPFs inválidos.
	allEqual := true
	for i := 1; i < len(cleaned); i++ {
		if cleaned[i] != cleaned[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cleaned[i]-'0') * (10 - i)
	}
	digit := 11 - sum%11
	if digit >= 10 {
		digit = 0
	}
	if digit != int(cleaned[9]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cleaned[i]-'0') * (11 - i)
	}
	digit = 11 - sum%11
	if digit >= 10 {
		digit = 0
	}
	return digit == int(cleaned[10]-'0')
}

// IsValidPhone valida telefone brasileiro: DDD entre 11 e 99, celular
// (11 dígitos) obrigatoriamente com 9 na terceira posição, fixo (10
// dígitos) obrigatoriamente sem.
func IsValidPhone(phone string) bool {
	cleaned := OnlyDigits(phone)

	if len(cleaned) != 10 && len(cleaned) != 11 {
		return false
	}

	areaCode, err := strconv.Atoi(cleaned[:2])
	if err != nil || areaCode < 11 || areaCode > 99 {
		return false
	}

	if len(cleaned) == 11 {
		return cleaned[2] == '9'
	}
	return cleaned[2] != '9'
}

package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(fld.Name[:1]) + fld.Name[1:]
			}
			return name
		})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("positive", decimalRule(decimal.Decimal.IsPositive))
		_ = v.RegisterValidation("cents", decimalRule(domain.HasMoneyScale))
		instance = v
	})
	return instance
}

// decimalRule adapts a decimal predicate; non-decimal fields never pass.
func decimalRule(ok func(decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, isDecimal := fl.Field().Interface().(decimal.Decimal)
		return isDecimal && ok(d)
	}
}

// Struct validates s and returns field name → message, or nil when s is valid.
func Struct(s any) map[string]string {
	err := get().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"request": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "transactionType":
		if fe.Tag() == "required" {
			return "Transaction type cannot be null"
		}
		return "Transaction type must be CREDIT or DEBIT"
	case "amount":
		switch fe.Tag() {
		case "required":
			return "Transaction amount cannot be null"
		case "cents":
			return "Transaction amount must have at most 2 decimal places"
		}
		return "Transaction amount must be positive"
	case "description":
		return "Transaction description cannot be blank"
	case "year":
		if fe.Tag() == "min" {
			return "Year must be greater than or equal to 2000"
		}
		return "Year must be less than or equal to 2100"
	case "month":
		return "Month must be between 1 and 12"
	}
	return fe.Field() + " failed on " + fe.Tag()
}

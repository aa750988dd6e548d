package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// WithLunaDigit appends the Luhn check digit to a string of digits.
func WithLunaDigit(s string) (string, error) {
	_, number, err := goluhn.Calculate(s)
	if err != nil {
		return "", err
	}
	return number, nil
}

package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of fractional digits stored for amounts and balances.
const MoneyScale = 2

// HasMoneyScale reports whether d is representable in a NUMERIC(19,2) column without rounding.
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyScale))
}

// ApplyTransaction returns the balance after a transaction of the given type and amount.
// A debit may not take the balance below zero.
func ApplyTransaction(balance decimal.Decimal, txType TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return balance, ErrInvalidAmount
	}
	if !HasMoneyScale(amount) {
		return balance, ErrInvalidAmountScale
	}
	switch txType {
	case TransactionTypeCredit:
		return balance.Add(amount), nil
	case TransactionTypeDebit:
		if balance.LessThan(amount) {
			return balance, ErrInsufficientBalance
		}
		return balance.Sub(amount), nil
	default:
		return balance, ErrInvalidTransactionType
	}
}

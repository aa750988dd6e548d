package statementservice

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/google/uuid"
)

// PlaceholderGenerator produces a fixed illustrative statement. Its lines and ending
// balance are not read from the account history.
type PlaceholderGenerator struct{}

type placeholderLine struct {
	Date        string
	Description string
	Amount      string
}

var placeholderLines = []placeholderLine{
	{Date: "01", Description: "Opening balance", Amount: "1000.00"},
	{Date: "05", Description: "Salary payment", Amount: "+3000.00"},
	{Date: "12", Description: "Grocery store", Amount: "-150.25"},
	{Date: "20", Description: "Utility bill", Amount: "-89.75"},
}

const placeholderEndingBalance = "3760.00"

var statementTemplate = template.Must(template.New("statement").Parse(`ACCOUNT STATEMENT
Reference:      {{.Reference}}
Account:        {{.AccountNumber}} ({{.AccountType}})
Period:         {{.Period}}

Date        Description                     Amount
{{range .Lines}}{{$.Period}}-{{.Date}}  {{printf "%-30s" .Description}}  {{printf "%10s" .Amount}}
{{end}}
Ending balance: {{.EndingBalance}}

This document is a sample and does not reflect actual account activity.
`))

func (PlaceholderGenerator) Generate(_ context.Context, account *domain.Account, year, month int) (*domain.Statement, error) {
	period := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
	reference := uuid.NewString()

	var buf bytes.Buffer
	err := statementTemplate.Execute(&buf, map[string]any{
		"Reference":     reference,
		"AccountNumber": account.AccountNumber,
		"AccountType":   account.AccountType,
		"Period":        period,
		"Lines":         placeholderLines,
		"EndingBalance": placeholderEndingBalance,
	})
	if err != nil {
		return nil, fmt.Errorf("render statement: %w", err)
	}

	return &domain.Statement{
		Reference:   reference,
		AccountID:   account.ID,
		Year:        year,
		Month:       month,
		FileName:    fmt.Sprintf("statement-%d-%d-%d.txt", account.ID, year, month),
		ContentType: "text/plain; charset=utf-8",
		Content:     buf.Bytes(),
	}, nil
}

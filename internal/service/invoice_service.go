package service

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"time"

	"go-pharmacy-dashboard/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrSaleNotFound = errors.New("sale not found")
)

// CompanyInfo is printed in the invoice header.
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Siret   string `json:"siret"`
}

var DefaultCompany = CompanyInfo{
	Name:    "Pharmacy Yanje",
	Address: "123 Pharmacy Street, 75001 Paris, France",
	Phone:   "+33 1 23 45 67 89",
	Email:   "contact@pharmacy.com",
	Siret:   "123 456 789 00012",
}

type InvoiceLine struct {
	Medicine  string          `json:"medicine"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

type Invoice struct {
	SaleID        uuid.UUID       `json:"sale_id"`
	FileName      string          `json:"file_name"`
	Date          time.Time       `json:"date"`
	CustomerName  string          `json:"customer_name"`
	PaymentMethod string          `json:"payment_method"`
	Company       CompanyInfo     `json:"company"`
	Lines         []InvoiceLine   `json:"lines"`
	Subtotal      decimal.Decimal `json:"subtotal"`     // sum of line totals
	TotalAmount   decimal.Decimal `json:"total_amount"` // as recorded on the sale
	Discount      decimal.Decimal `json:"discount"`
	FinalAmount   decimal.Decimal `json:"final_amount"`
}

type InvoiceService interface {
	Invoice(saleID uuid.UUID) (*Invoice, error)
	RenderHTML(w io.Writer, inv *Invoice) error
}

type invoiceService struct {
	saleRepo repository.SaleRepository
	company  CompanyInfo
}

func NewInvoiceService(saleRepo repository.SaleRepository, company CompanyInfo) InvoiceService {
	return &invoiceService{saleRepo: saleRepo, company: company}
}

func (s *invoiceService) Invoice(saleID uuid.UUID) (*Invoice, error) {
	sale, err := s.saleRepo.FindByID(saleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("load sale %s: %w", saleID, err)
	}

	inv := &Invoice{
		SaleID:        sale.ID,
		FileName:      fmt.Sprintf("invoice_%s_%s.html", sale.ID, sale.Date.Format("20060102")),
		Date:          sale.Date,
		CustomerName:  sale.CustomerName,
		PaymentMethod: sale.PaymentMethod.DisplayName(),
		Company:       s.company,
		Lines:         make([]InvoiceLine, 0, len(sale.Items)),
		Subtotal:      sale.ItemsTotal(),
		TotalAmount:   sale.TotalAmount,
		Discount:      sale.Discount,
		FinalAmount:   sale.FinalAmount(),
	}
	for i := range sale.Items {
		item := &sale.Items[i]
		inv.Lines = append(inv.Lines, InvoiceLine{
			Medicine:  item.Medicine.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Total:     item.Total(),
		})
	}
	return inv, nil
}

var invoiceTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
}).Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Invoice {{.SaleID}}</title></head>
<body>
<header>
<h1>{{.Company.Name}}</h1>
<p>{{.Company.Address}}<br>{{.Company.Phone}} · {{.Company.Email}}<br>SIRET {{.Company.Siret}}</p>
</header>
<section>
<p>Invoice for <strong>{{.CustomerName}}</strong>, {{.Date.Format "2006-01-02 15:04"}}</p>
<p>Payment: {{.PaymentMethod}}</p>
</section>
<table>
<thead><tr><th>Medicine</th><th>Qty</th><th>Unit price</th><th>Total</th></tr></thead>
<tbody>
{{- range .Lines}}
<tr><td>{{.Medicine}}</td><td>{{.Quantity}}</td><td>{{money .UnitPrice}}</td><td>{{money .Total}}</td></tr>
{{- end}}
</tbody>
</table>
<p>Subtotal: {{money .Subtotal}}</p>
<p>Total: {{money .TotalAmount}}</p>
<p>Discount: {{money .Discount}}</p>
<p><strong>Amount due: {{money .FinalAmount}}</strong></p>
</body></html>
`))

func (s *invoiceService) RenderHTML(w io.Writer, inv *Invoice) error {
	return invoiceTemplate.Execute(w, inv)
}

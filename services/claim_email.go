package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/LuminLynx/ProductCareHub/models"
)

// ClaimEmail is a fully rendered warranty-claim message. Generation and
// delivery are separate: this struct carries no transport state and
// GenerateClaimEmail never sends anything.
type ClaimEmail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ClaimIssue is the user-described problem a claim is filed about.
type ClaimIssue struct {
	Category    string
	Severity    string
	Description string
}

var portugueseMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatDatePT renders a date the pt-PT long way, e.g. "15 de janeiro de
// 2024".
func FormatDatePT(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), portugueseMonths[t.Month()-1], t.Year())
}

// GenerateClaimEmail renders the Portuguese warranty-claim email for a
// product/brand/issue triple. Pure formatting, no side effects.
func GenerateClaimEmail(product models.Product, brand models.Brand, issue ClaimIssue) ClaimEmail {
	var b strings.Builder

	b.WriteString("Exmo(a) Senhor(a),\n\n")
	b.WriteString("Venho por este meio solicitar assistência técnica para o seguinte produto:\n\n")
	b.WriteString("INFORMAÇÃO DO PRODUTO:\n")
	fmt.Fprintf(&b, "- Produto: %s\n", product.Name)
	fmt.Fprintf(&b, "- Marca: %s\n", brand.Name)
	fmt.Fprintf(&b, "- Modelo: %s\n", product.Model)
	if product.SerialNumber != nil && *product.SerialNumber != "" {
		fmt.Fprintf(&b, "- Número de Série: %s\n", *product.SerialNumber)
	}
	fmt.Fprintf(&b, "- Data de Compra: %s\n\n", FormatDatePT(product.PurchaseDate))
	b.WriteString("DESCRIÇÃO DO PROBLEMA:\n")
	fmt.Fprintf(&b, "Categoria: %s\n", issue.Category)
	fmt.Fprintf(&b, "Severidade: %s\n\n", issue.Severity)
	b.WriteString(issue.Description)
	b.WriteString("\n")
	if product.ReceiptURL != nil && *product.ReceiptURL != "" {
		b.WriteString("\nAnexo: Talão de compra em anexo\n")
	}
	b.WriteString("\nAgradeço a vossa atenção e aguardo retorno.\n\n")
	b.WriteString("Com os melhores cumprimentos,\n[Cliente ProductCareHub]")

	return ClaimEmail{
		To:      brand.SupportEmail,
		Subject: fmt.Sprintf("Pedido de Assistência - %s (%s)", product.Name, product.Model),
		Body:    b.String(),
	}
}

package infra

// pdf.go — receipt and sales-report generation using go-pdf/fpdf.
// Receipts are A7-sized (thermal-printer style); the sales report is an A4
// table that flows onto successive pages when the running y-offset crosses
// the bottom margin.

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"estoquepos/internal/dto"
	"estoquepos/internal/moeda"

	"github.com/go-pdf/fpdf"
)

// ─── Receipt ─────────────────────────────────────────────────────────────────

func novoReciboPDF(recibo *dto.ReciboResponse) *fpdf.Fpdf {
	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Recibo de Venda", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, recibo.DataVenda, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Produto: "+recibo.Produto, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Quantidade: %d", recibo.Quantidade), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Valor unitário c/ desconto: "+moeda.FormatBRL(recibo.ValorUnitario), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 6, "Total: "+moeda.FormatBRL(recibo.Total), "", 1, "L", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Obrigado pela compra!", "", 1, "C", false, 0, "")

	return pdf
}

// GerarReciboPDF streams the receipt to w (HTTP download path).
func GerarReciboPDF(recibo *dto.ReciboResponse, w io.Writer) error {
	pdf := novoReciboPDF(recibo)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: write recibo: %w", err)
	}
	return nil
}

// GravarReciboPDF writes the receipt under storagePath (created if needed)
// and returns the absolute path — used by the email worker for attachments.
func GravarReciboPDF(recibo *dto.ReciboResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("recibo_%s.pdf", recibo.VendaID))
	pdf := novoReciboPDF(recibo)
	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

// ─── Sales report ────────────────────────────────────────────────────────────

const (
	relatorioBottomY = 270.0 // A4 height 297mm minus footer margin
	relatorioRowH    = 7.0
)

// GerarRelatorioVendasPDF renders the tabular sales report. Rows advance a
// running y-offset; when it would cross relatorioBottomY a new page opens
// and the column header is re-printed.
func GerarRelatorioVendasPDF(rel *dto.RelatorioVendasResponse, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(false, 0)

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	col1 := contentW * 0.34 // product name
	col2 := contentW * 0.12 // qty
	col3 := contentW * 0.18 // unit price
	col4 := contentW * 0.18 // line total
	col5 := contentW * 0.18 // timestamp

	header := func() {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(contentW, 8, "Relatório de Vendas", "", 1, "C", false, 0, "")
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(col1, relatorioRowH, "Produto", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col2, relatorioRowH, "Qtd", "B", 0, "C", false, 0, "")
		pdf.CellFormat(col3, relatorioRowH, "Valor Unit.", "B", 0, "R", false, 0, "")
		pdf.CellFormat(col4, relatorioRowH, "Total", "B", 0, "R", false, 0, "")
		pdf.CellFormat(col5, relatorioRowH, "Data", "B", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}

	header()
	for _, item := range rel.Itens {
		if pdf.GetY()+relatorioRowH > relatorioBottomY {
			header()
		}
		nome := item.Produto
		if r := []rune(nome); len(r) > 38 {
			nome = string(r[:35]) + "..."
		}
		pdf.CellFormat(col1, relatorioRowH, nome, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, relatorioRowH, fmt.Sprintf("%d", item.Quantidade), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, relatorioRowH, moeda.FormatBRL(item.ValorUnitario), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, relatorioRowH, moeda.FormatBRL(item.TotalLinha), "", 0, "R", false, 0, "")
		pdf.CellFormat(col5, relatorioRowH, item.DataVenda, "", 1, "R", false, 0, "")
	}

	if pdf.GetY()+relatorioRowH*2 > relatorioBottomY {
		header()
	}
	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3, relatorioRowH, "Total geral:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col4, relatorioRowH, rel.TotalFormatado, "", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: write relatorio: %w", err)
	}
	return nil
}

package infra

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"estoquepos/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecibo() *dto.ReciboResponse {
	return &dto.ReciboResponse{
		VendaID:        "5f9c5f9c-0000-0000-0000-000000000010",
		Produto:        "Café Torrado 500g",
		Quantidade:     3,
		ValorUnitario:  decimal.NewFromFloat(4.50),
		Total:          decimal.NewFromFloat(13.50),
		TotalFormatado: "R$ 13,50",
		DataVenda:      time.Now().Format(time.RFC3339),
	}
}

func TestGerarReciboPDF(t *testing.T) {
	var buf bytes.Buffer
	err := GerarReciboPDF(sampleRecibo(), &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestGerarRelatorioVendasPDF_Paginacao(t *testing.T) {
	// Enough rows to force more than one A4 page
	rel := &dto.RelatorioVendasResponse{TotalFormatado: "R$ 0,00"}
	for i := 0; i < 80; i++ {
		rel.Itens = append(rel.Itens, dto.ItemRelatorioVendas{
			Produto:       fmt.Sprintf("Produto %02d", i),
			Quantidade:    1,
			ValorUnitario: decimal.NewFromFloat(10),
			TotalLinha:    decimal.NewFromFloat(10),
			DataVenda:     time.Now().Format(time.RFC3339),
		})
	}

	var buf bytes.Buffer
	err := GerarRelatorioVendasPDF(rel, &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	// Multi-page documents carry more than one page object
	assert.Greater(t, bytes.Count(buf.Bytes(), []byte("/Type /Page\n")), 1)
}

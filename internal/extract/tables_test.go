package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const invoiceBody = `ACME Supplies
Invoice No. 1042

Description            Qty    Rate     Amount
Blue widget              2    10.50    21.00
Steel bracket set        1   450.00   450.00
Shipping                              15.00

Subtotal 486.00
Tax 48.60
Total 534.60
`

func TestExtractLineItemsParsesRows(t *testing.T) {
	items := LineTableExtractor{}.ExtractLineItems(invoiceBody)
	require.Len(t, items, 3)

	require.Equal(t, "Blue widget", items[0].Description)
	require.Equal(t, 2.0, items[0].Quantity)
	require.Equal(t, 10.5, items[0].UnitPrice)
	require.Equal(t, 21.0, items[0].Total)
	require.Equal(t, 1, items[0].LineNo)

	// Row without qty/rate columns still yields a total.
	require.Equal(t, "Shipping", items[2].Description)
	require.Equal(t, 15.0, items[2].Total)
	require.Zero(t, items[2].Quantity)
}

func TestExtractLineItemsStopsAtSummary(t *testing.T) {
	items := LineTableExtractor{}.ExtractLineItems(invoiceBody)
	for _, it := range items {
		require.NotContains(t, it.Description, "Subtotal")
		require.NotContains(t, it.Description, "Tax")
	}
}

func TestExtractLineItemsCurrencyAndSeparators(t *testing.T) {
	text := "Item Description Amount\nConsulting retainer $1,299.00\n"
	items := LineTableExtractor{}.ExtractLineItems(text)
	require.Len(t, items, 1)
	require.Equal(t, 1299.0, items[0].Total)
}

func TestExtractLineItemsNoTable(t *testing.T) {
	items := LineTableExtractor{}.ExtractLineItems("Just a letter.\nNo tabular data here.")
	require.Empty(t, items)
}

package billinglib_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smt-joen/plunet2peppol/pkg/billinglib"
)

func TestLoadAndConvert(t *testing.T) {
	record := map[string]any{
		"invoice": map[string]any{
			"invoiceNumber":     "2301",
			"invoiceDate":       "2023-05-02",
			"dueDate":           "2023-06-01",
			"currency":          "SEK",
			"invoicePO":         "PO-77",
			"invoiceCostCenter": "CC-9",
			"name":              "Kund AB",
			"country":           "Sverige",
			"VATId":             "SE556600112201",
			"netTotal_":         "100",
			"grossTotal_":       "125",
			"seller": map[string]any{
				"name":    "Byrå AB",
				"country": "Sweden",
				"VATId":   "SE556677889901",
			},
			"VATTotals": []any{
				map[string]any{"VATBase_": "100", "VATRate_": "25", "VATAmount_": "25"},
			},
		},
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "2301.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	rec, err := billinglib.Load(path)
	require.NoError(t, err)
	require.NotNil(t, rec.Invoice)

	results, err := billinglib.NewConverter().Convert(rec)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, billinglib.KindInvoice, results[0].Kind)
	assert.True(t, bytes.Contains(results[0].XML, []byte("<cbc:InvoiceTypeCode>380</cbc:InvoiceTypeCode>")))
}

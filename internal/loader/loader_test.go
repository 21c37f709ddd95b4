package loader_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smt-joen/plunet2peppol/internal/loader"
	"github.com/smt-joen/plunet2peppol/internal/model"
)

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func TestLoad_Record(t *testing.T) {
	rec, err := loader.Load(testdata("record.json"))
	require.NoError(t, err)

	require.NotNil(t, rec.Invoice)
	require.NotNil(t, rec.CreditNote)
	assert.Equal(t, "2301", rec.Invoice["invoiceNumber"])
	assert.Equal(t, "K-1001", rec.CreditNote["creditNoteNumber"])
	assert.Equal(t, testdata("record.json"), rec.Source)

	// Numeric text stays text until normalization.
	assert.Equal(t, "125", rec.Invoice["grossTotal_"])
}

func TestLoad_ShortKeyAliases(t *testing.T) {
	rec, err := loader.Load(testdata("aliases.json"))
	require.NoError(t, err)

	require.NotNil(t, rec.Invoice)
	require.NotNil(t, rec.CreditNote)
	assert.Equal(t, "2302", rec.Invoice["invoiceNumber"])
	assert.Equal(t, "K-1002", rec.CreditNote["creditNoteNumber"])
}

func TestLoad_InvoiceOnly(t *testing.T) {
	rec, err := loader.Load(testdata("invoice-only.json"))
	require.NoError(t, err)

	require.NotNil(t, rec.Invoice)
	assert.Nil(t, rec.CreditNote)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: testdata("does-not-exist.json")},
		{name: "malformed json", path: testdata("broken.json")},
		{name: "no sub-records", path: testdata("empty.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Load(tt.path)
			require.Error(t, err)

			var loadErr *model.LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.path, loadErr.Path)
		})
	}
}

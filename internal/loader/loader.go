// Package loader reads billing record files from disk. One JSON file
// holds one record with an "invoice" and/or "creditNote" sub-record; the
// short keys "inv" and "cdn" from older hand-typed records are accepted
// as aliases.
package loader

import (
	"encoding/json"
	"os"

	"github.com/smt-joen/plunet2peppol/internal/model"
)

// Load reads and decodes one record file into the loose tree form the
// pipeline works on.
func Load(path string) (*model.BillingRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.NewLoadError(path, "failed to read file", err)
	}

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, model.NewLoadError(path, "failed to decode record", err)
	}

	rec := &model.BillingRecord{Source: path}
	rec.Invoice = subRecord(tree, "invoice", "inv")
	rec.CreditNote = subRecord(tree, "creditNote", "cdn")
	if rec.Invoice == nil && rec.CreditNote == nil {
		return nil, model.NewLoadError(path, "record holds neither an invoice nor a credit note", nil)
	}
	return rec, nil
}

func subRecord(tree map[string]any, keys ...string) map[string]any {
	for _, key := range keys {
		if m, ok := tree[key].(map[string]any); ok {
			return m
		}
	}
	return nil
}

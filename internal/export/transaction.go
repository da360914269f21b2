package export

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gabapcia/txexport/internal/pkg/types"
)

// TransactionRecord is the minimal transaction stored in the record source.
type TransactionRecord struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Hash      string    `json:"hash"`
	Block     uint64    `json:"block"`
	CreatedAt time.Time `json:"created_at"`
}

// DecodedTransaction is a transaction enriched by the decoding provider.
//
// A transaction whose decoding failed keeps its Hash, has no Input or Logs and
// carries the failure reason in Error.
type DecodedTransaction struct {
	Hash  string          `json:"hash"`
	Input json.RawMessage `json:"input,omitempty"`
	Logs  json.RawMessage `json:"logs,omitempty"`
	Error string          `json:"error,omitempty"`
}

// Failed reports whether the transaction is an enrichment failure marker.
func (t DecodedTransaction) Failed() bool {
	return t.Error != ""
}

// failedTransaction builds the marker recorded for a transaction that could not be decoded.
func failedTransaction(hash string, err error) DecodedTransaction {
	return DecodedTransaction{
		Hash:  hash,
		Error: err.Error(),
	}
}

// AddressResult aggregates the decoded transactions sent by one address, in the
// order they were returned by the record source.
type AddressResult struct {
	Address      string               `json:"address"`
	Transactions []DecodedTransaction `json:"tx"`
}

// Counts returns how many transactions were decoded and how many are failure markers.
func (r AddressResult) Counts() (enriched, failed int) {
	for _, tx := range r.Transactions {
		if tx.Failed() {
			failed++
			continue
		}
		enriched++
	}
	return enriched, failed
}

// NormalizeAddress trims surrounding whitespace and lower-cases the address.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// NormalizeAddresses normalizes every address, drops blank entries and
// collapses duplicates while keeping the position of the first occurrence.
func NormalizeAddresses(addresses []string) []string {
	var (
		seen       = types.NewSet[string]()
		normalized = make([]string, 0, len(addresses))
	)

	for _, address := range addresses {
		address = NormalizeAddress(address)
		if address == "" {
			continue
		}

		if seen.Has(address) {
			continue
		}

		seen.Add(address)
		normalized = append(normalized, address)
	}

	return normalized
}

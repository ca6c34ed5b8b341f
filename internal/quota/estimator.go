// Package quota holds the pure size-estimation and admission logic for the
// catalog: how many bytes a record costs once encoded for storage, whether a
// candidate upload fits under the configured limits, and which usage band
// the aggregate consumption falls into.
//
// Nothing in this package performs I/O. The raw (decoded) byte length is the
// ground truth everywhere; the encoded length is always derived from it, in
// one direction only, so the upload check and the usage recomputation can
// never drift apart.
package quota

import "github.com/pdfplace/pdfplace/models"

// EncodedSize returns the exact base64-encoded length of a payload of
// rawBytes decoded bytes: 4 * ceil(rawBytes / 3).
func EncodedSize(rawBytes int64) int64 {
	if rawBytes <= 0 {
		return 0
	}
	return (rawBytes + 2) / 3 * 4
}

// CatalogUsage returns the aggregate encoded size of all records whose
// payload is still reachable (residency is not absent). Records whose
// payload is gone cost nothing: there is no content left to account for.
func CatalogUsage(records []models.Record) int64 {
	var total int64
	for i := range records {
		if records[i].HasPayload() {
			total += EncodedSize(records[i].SizeBytes)
		}
	}
	return total
}

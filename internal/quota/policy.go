package quota

import "errors"

// Sentinel errors returned by Limits.AdmitUpload. Callers match with
// [errors.Is] and surface the reason to the user; neither error implies any
// state change happened.
var (
	// ErrRecordTooLarge is returned when a single candidate payload exceeds
	// the per-record size ceiling, regardless of current usage.
	ErrRecordTooLarge = errors.New("record exceeds the per-file size limit")

	// ErrQuotaExceeded is returned when admitting the candidate would push
	// aggregate usage past the total storage quota.
	ErrQuotaExceeded = errors.New("not enough storage space left")
)

// Band classifies aggregate storage consumption.
type Band int

const (
	BandNormal Band = iota
	BandWarning
	BandCritical
)

func (b Band) String() string {
	switch b {
	case BandWarning:
		return "warning"
	case BandCritical:
		return "critical"
	default:
		return "normal"
	}
}

// Limits is the fixed constant set governing admission and band
// classification. The zero value is not usable; construct with
// DefaultLimits and override fields from config as needed.
type Limits struct {
	// MaxRecordBytes is the encoded size ceiling for a single record.
	MaxRecordBytes int64

	// MaxTotalBytes is the encoded size ceiling for the whole catalog.
	MaxTotalBytes int64

	// WarningRatio is the usage ratio at which the Warning band begins.
	WarningRatio float64

	// CriticalRatio is the usage ratio at which the Critical band begins.
	CriticalRatio float64
}

// DefaultLimits returns the documented limit set: 50 MiB per record,
// 800 MiB total, warning at 80%, critical at 90%.
func DefaultLimits() Limits {
	return Limits{
		MaxRecordBytes: 50 * 1024 * 1024,
		MaxTotalBytes:  800 * 1024 * 1024,
		WarningRatio:   0.8,
		CriticalRatio:  0.9,
	}
}

// AdmitUpload decides whether a candidate payload of candidateBytes encoded
// bytes may join a catalog currently using usageBytes. Returns nil to allow,
// ErrRecordTooLarge or ErrQuotaExceeded to reject. Pure and deterministic.
//
// The per-record check wins over the aggregate check: an oversized record is
// rejected as too large even when the quota is also short.
func (l Limits) AdmitUpload(candidateBytes, usageBytes int64) error {
	if candidateBytes > l.MaxRecordBytes {
		return ErrRecordTooLarge
	}
	if usageBytes+candidateBytes > l.MaxTotalBytes {
		return ErrQuotaExceeded
	}
	return nil
}

// UsageRatio returns usageBytes as a fraction of the total quota.
func (l Limits) UsageRatio(usageBytes int64) float64 {
	if l.MaxTotalBytes <= 0 {
		return 0
	}
	return float64(usageBytes) / float64(l.MaxTotalBytes)
}

// Classify maps a usage ratio onto its band. Boundary values belong to the
// higher band: Classify(WarningRatio) is already Warning, and
// Classify(CriticalRatio) is already Critical.
func (l Limits) Classify(ratio float64) Band {
	switch {
	case ratio >= l.CriticalRatio:
		return BandCritical
	case ratio >= l.WarningRatio:
		return BandWarning
	default:
		return BandNormal
	}
}

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/internal/quota"
	"github.com/pdfplace/pdfplace/internal/service"
)

// UsageMonitor periodically recomputes catalog storage usage and logs band
// transitions, so an operator notices quota pressure before uploads start
// failing. It is idle until Run is called.
type UsageMonitor struct {
	catalog  service.CatalogService
	interval time.Duration
	logger   *logger.Logger

	mu       sync.Mutex
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	lastBand quota.Band
}

// NewUsageMonitor creates the monitor. If interval is zero or negative it
// defaults to one minute.
func NewUsageMonitor(catalog service.CatalogService, interval time.Duration, log *logger.Logger) *UsageMonitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &UsageMonitor{
		catalog:  catalog,
		interval: interval,
		logger:   log,
		lastBand: quota.BandNormal,
	}
}

// Run implements Worker. It stops any previously running monitor, then
// launches a background goroutine that samples usage every interval. The
// goroutine exits when Stop is called.
func (m *UsageMonitor) Run() {
	m.Stop()

	m.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				m.sample(ctx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the monitor is not running.
func (m *UsageMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

func (m *UsageMonitor) sample(ctx context.Context) {
	report := m.catalog.Usage(ctx)

	m.mu.Lock()
	changed := report.Band != m.lastBand
	m.lastBand = report.Band
	m.mu.Unlock()

	event := m.logger.Debug()
	if changed {
		switch report.Band {
		case quota.BandNormal:
			event = m.logger.Info()
		default:
			event = m.logger.Warn()
		}
	}
	event.
		Int64("used_bytes", report.UsedBytes).
		Int64("limit_bytes", report.LimitBytes).
		Float64("ratio", report.Ratio).
		Str("band", report.Band.String()).
		Msg("storage usage sampled")
}

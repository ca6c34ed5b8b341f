package workers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/internal/mock"
	"github.com/pdfplace/pdfplace/internal/pdf"
	"github.com/pdfplace/pdfplace/internal/quota"
	"github.com/pdfplace/pdfplace/internal/service"
	"github.com/pdfplace/pdfplace/internal/store"
	"github.com/pdfplace/pdfplace/internal/validators"
	"github.com/pdfplace/pdfplace/models"
)

func TestUsageMonitor_SamplesUsage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mock.NewMockCatalogService(ctrl)

	sampled := make(chan struct{}, 16)
	catalog.EXPECT().Usage(gomock.Any()).DoAndReturn(
		func(any) service.UsageReport {
			sampled <- struct{}{}
			return service.UsageReport{
				UsedBytes:  100,
				LimitBytes: 1000,
				Ratio:      0.1,
				Band:       quota.BandNormal,
			}
		},
	).MinTimes(1)

	monitor := NewUsageMonitor(catalog, 5*time.Millisecond, logger.Nop())
	monitor.Run()
	defer monitor.Stop()

	select {
	case <-sampled:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor never sampled usage")
	}
}

func TestUsageMonitor_StopWithoutRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monitor := NewUsageMonitor(mock.NewMockCatalogService(ctrl), time.Minute, logger.Nop())

	// Must not panic or block.
	monitor.Stop()
}

func TestUsageMonitor_RunRestarts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mock.NewMockCatalogService(ctrl)
	catalog.EXPECT().Usage(gomock.Any()).Return(service.UsageReport{Band: quota.BandNormal}).AnyTimes()

	monitor := NewUsageMonitor(catalog, time.Millisecond, logger.Nop())
	monitor.Run()
	monitor.Run()
	monitor.Stop()

	// Stopped monitor holds no cancel func.
	monitor.mu.Lock()
	assert.Nil(t, monitor.cancel)
	monitor.mu.Unlock()
}

// Exercises the app wiring under the race detector: the monitor samples the
// real catalog service while upload/delete commands mutate it from another
// goroutine, the way bubbletea commands do.
func TestUsageMonitor_ConcurrentWithCatalogMutation(t *testing.T) {
	ctx := context.Background()
	log := logger.Nop()

	kv := store.NewMemoryKV(0)
	records := store.NewRecordStore()
	auth := service.NewAuthService(store.NewSessionStore(kv, "test-key", "pdfplace", log), log)
	catalog := service.NewCatalogService(
		records,
		store.NewCatalogPersistence(kv, 1<<20, 1<<10, log),
		store.NewDownloadHistoryLog(kv, log),
		validators.NewDocumentValidator(),
		quota.DefaultLimits(),
		auth,
		log,
	)

	_, err := auth.Login(ctx, "admin@pdfplace.com", "admin123")
	require.NoError(t, err)

	monitor := NewUsageMonitor(catalog, time.Millisecond, log)
	monitor.Run()
	defer monitor.Stop()

	content := pdf.Placeholder("racer.pdf")
	for i := 0; i < 50; i++ {
		record, err := catalog.Upload(ctx, models.Upload{
			Filename: fmt.Sprintf("racer-%d.pdf", i),
			Category: models.CategoryOthers,
			Content:  content,
		})
		require.NoError(t, err)
		require.NoError(t, catalog.Delete(ctx, record.ID))
	}

	assert.Zero(t, len(catalog.List(ctx)))
}

func TestNewUsageMonitor_DefaultInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monitor := NewUsageMonitor(mock.NewMockCatalogService(ctrl), 0, logger.Nop())
	assert.Equal(t, time.Minute, monitor.interval)
}

package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbani/dairy/internal/config"
	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/internal/repository/memory"
	"github.com/nirbani/dairy/internal/service/reporting"
)

type exporterSpy struct {
	summaries []*models.DailyReport
	profits   []*models.ProfitReport
}

func (e *exporterSpy) AppendDailySummary(_ context.Context, report *models.DailyReport) error {
	e.summaries = append(e.summaries, report)
	return nil
}

func (e *exporterSpy) AppendProfitSnapshot(_ context.Context, report *models.ProfitReport) error {
	e.profits = append(e.profits, report)
	return nil
}

type messengerSpy struct {
	to    []string
	texts []string
}

func (m *messengerSpy) SendText(_ context.Context, to, body string) error {
	m.to = append(m.to, to)
	m.texts = append(m.texts, body)
	return nil
}

func newTestScheduler(t *testing.T, cfg config.Config, messenger *messengerSpy) (*Scheduler, *memory.Store, *exporterSpy) {
	t.Helper()
	store := memory.NewStore()
	reportingSvc := reporting.NewService(store.Farmers(), store.Collections(), store.Payments(), store.Dispatches(), store.Sales(), store.Expenses(), nil)

	exporter := &exporterSpy{}
	if messenger != nil {
		return NewScheduler(cfg, reportingSvc, messenger, exporter, nil), store, exporter
	}
	return NewScheduler(cfg, reportingSvc, nil, exporter, nil), store, exporter
}

func TestDailyDigestExportsSummaryAndProfitSnapshot(t *testing.T) {
	cfg := config.Config{}
	cfg.Reporting.Timezone = "UTC"
	cfg.Reporting.CronSchedule = "0 20 * * *"

	sched, store, exporter := newTestScheduler(t, cfg, nil)
	ctx := context.Background()

	today := time.Now().UTC().Format(models.DateLayout)
	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c1", FarmerID: "f1", Date: today, Shift: models.ShiftMorning, Quantity: 10, Amount: 400,
	}))
	require.NoError(t, store.Dispatches().Insert(ctx, models.Dispatch{
		ID: "d1", DairyPlantID: "plant-1", Date: today, QuantityKg: 10.3, NetReceivable: 500,
	}))

	sched.sendDailyDigest()

	require.Len(t, exporter.summaries, 1)
	assert.Equal(t, today, exporter.summaries[0].Date)
	assert.Equal(t, 400.0, exporter.summaries[0].Summary.TotalAmount)

	require.Len(t, exporter.profits, 1)
	assert.Equal(t, today[:8]+"01", exporter.profits[0].StartDate)
	assert.Equal(t, today, exporter.profits[0].EndDate)
	assert.Equal(t, 500.0, exporter.profits[0].DispatchAmount)
}

func TestDailyDigestMessagesOwnerWhenConfigured(t *testing.T) {
	cfg := config.Config{}
	cfg.Reporting.Timezone = "UTC"
	cfg.Reporting.CronSchedule = "0 20 * * *"
	cfg.WhatsApp.AccessToken = "token"
	cfg.WhatsApp.PhoneNumberID = "123"
	cfg.WhatsApp.OwnerNumber = "919876543210"

	messenger := &messengerSpy{}
	sched, store, _ := newTestScheduler(t, cfg, messenger)
	ctx := context.Background()

	today := time.Now().UTC().Format(models.DateLayout)
	require.NoError(t, store.Collections().Insert(ctx, models.MilkCollection{
		ID: "c1", FarmerID: "f1", Date: today, Shift: models.ShiftMorning, Quantity: 10, Amount: 400,
	}))

	sched.sendDailyDigest()

	require.Len(t, messenger.texts, 1)
	assert.Equal(t, "919876543210", messenger.to[0])
	assert.Contains(t, messenger.texts[0], today)
}

func TestDigestSkipsMessengerWhenDisabled(t *testing.T) {
	cfg := config.Config{}
	cfg.Reporting.Timezone = "UTC"

	messenger := &messengerSpy{}
	// Messenger wired but WhatsApp config left empty.
	sched, _, exporter := newTestScheduler(t, cfg, messenger)

	sched.sendDailyDigest()

	assert.Empty(t, messenger.texts)
	assert.Len(t, exporter.summaries, 1)
}

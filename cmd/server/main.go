package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/config"
	"github.com/nirbani/dairy/internal/repository/mongodb"
	"github.com/nirbani/dairy/internal/repository/sheets"
	"github.com/nirbani/dairy/internal/scheduler"
	"github.com/nirbani/dairy/internal/server/handlers"
	"github.com/nirbani/dairy/internal/server/router"
	billingsvc "github.com/nirbani/dairy/internal/service/billing"
	collectionsvc "github.com/nirbani/dairy/internal/service/collections"
	dispatchsvc "github.com/nirbani/dairy/internal/service/dispatch"
	farmersvc "github.com/nirbani/dairy/internal/service/farmers"
	"github.com/nirbani/dairy/internal/service/notify"
	paymentsvc "github.com/nirbani/dairy/internal/service/payments"
	reportingsvc "github.com/nirbani/dairy/internal/service/reporting"
	salesvc "github.com/nirbani/dairy/internal/service/sales"
	"github.com/nirbani/dairy/pkg/clients/msg91"
	whatsappclient "github.com/nirbani/dairy/pkg/clients/whatsapp"
	"github.com/nirbani/dairy/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, err := mongodb.New(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	if err := store.EnsureIndexes(context.Background()); err != nil {
		baseLogger.Fatal("failed to ensure indexes", zap.Error(err))
	}

	var notifier notify.Notifier = notify.Nop{}
	if cfg.SMS.Enabled() {
		smsClient := msg91.NewClient(cfg.SMS)
		notifier = notify.NewService(smsClient, cfg.Dairy.Name, baseLogger.Named("svc.notify"))
		baseLogger.Info("sms notifications enabled", zap.String("sender_id", cfg.SMS.SenderID))
	} else {
		baseLogger.Warn("msg91 auth key missing, sms notifications disabled")
	}

	var exporter sheets.Exporter = sheets.NopExporter{}
	if cfg.Sheets.Enabled() {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("spreadsheet export enabled")
	}

	var messenger whatsappclient.Client
	if cfg.WhatsApp.Enabled() {
		messenger = whatsappclient.NewClient(cfg.WhatsApp)
		baseLogger.Info("whatsapp digest enabled")
	}

	farmerSvc := farmersvc.NewService(store.Farmers(), store.Collections(), store.Payments(), baseLogger.Named("svc.farmers"))
	collectionSvc := collectionsvc.NewService(store.Farmers(), store.Collections(), store.RateCharts(), notifier, baseLogger.Named("svc.collections"))
	paymentSvc := paymentsvc.NewService(store.Farmers(), store.Payments(), store.Plants(), store.DairyPayments(), notifier, baseLogger.Named("svc.payments"))
	dispatchSvc := dispatchsvc.NewService(store.Plants(), store.Dispatches(), baseLogger.Named("svc.dispatch"))
	saleSvc := salesvc.NewService(store.Customers(), store.WalkInCustomers(), store.Sales(), store.UdharPayments(), store.Products(), baseLogger.Named("svc.sales"))
	reportingSvc := reportingsvc.NewService(store.Farmers(), store.Collections(), store.Payments(), store.Dispatches(), store.Sales(), store.Expenses(), baseLogger.Named("svc.reporting"))
	billingSvc := billingsvc.NewService(store.Farmers(), store.Collections(), store.Payments(), store.Customers(), store.Sales(), billingsvc.DairyInfo{
		Name:    cfg.Dairy.Name,
		Phone:   cfg.Dairy.Phone,
		Address: cfg.Dairy.Address,
	}, baseLogger.Named("svc.billing"))

	engine := router.New(router.Handlers{
		Farmers:     handlers.NewFarmerHandler(farmerSvc, baseLogger.Named("handlers.farmers")),
		Collections: handlers.NewCollectionHandler(collectionSvc, baseLogger.Named("handlers.collections")),
		Payments:    handlers.NewPaymentHandler(paymentSvc, baseLogger.Named("handlers.payments")),
		Dispatch:    handlers.NewDispatchHandler(dispatchSvc, baseLogger.Named("handlers.dispatch")),
		Sales:       handlers.NewSaleHandler(saleSvc, baseLogger.Named("handlers.sales")),
		Reports:     handlers.NewReportHandler(reportingSvc, billingSvc, baseLogger.Named("handlers.reports")),
	}, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, reportingSvc, messenger, exporter, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

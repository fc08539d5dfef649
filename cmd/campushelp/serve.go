package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campushelp/internal/db"
	"campushelp/internal/server"
	"campushelp/internal/storage"
	"campushelp/internal/store"
	"campushelp/internal/upload"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	if config.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         config.SentryDSN,
			Environment: config.Environment,
			Release:     config.Version,
		})
		if err != nil {
			return err
		}
		defer sentry.Flush(2 * time.Second)
	}

	client, database, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.WithError(err).Error("failed to disconnect from mongodb")
		}
	}()

	var attachments storage.AttachmentStore
	switch config.StorageBackend {
	case "s3":
		awsConfig, err := loadAWSConfig(ctx)
		if err != nil {
			return err
		}
		attachments = storage.NewS3Store(s3.NewFromConfig(awsConfig), config.S3BucketName, config.S3PublicBaseURL)
	default:
		attachments, err = storage.NewDiskStore(config.UploadDir)
		if err != nil {
			return err
		}
	}

	helpRepo := store.NewHelpRequestRepository(database)
	lostFoundRepo := store.NewLostFoundRepository(database)
	marketingRepo := store.NewMarketingHelpRepository(database)

	srv, err := server.New(
		config,
		logger,
		helpRepo,
		lostFoundRepo,
		marketingRepo,
		upload.NewIngestor(attachments),
		func(ctx context.Context) error { return client.Ping(ctx, nil) },
	)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}

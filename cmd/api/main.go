package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/careercoach/internal/config"
	"github.com/saulo-duarte/careercoach/internal/container"
)

// @title           Career Coach API
// @version         1.0
// @description     Interview practice quizzes, progress dashboard and ATS resume scoring.

// @BasePath  /

func main() {
	c := container.New()
	log := config.Logger

	server := &http.Server{
		Addr:              ":" + c.Settings.Port,
		Handler:           c.Router(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		log.Info("Shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			log.WithError(err).Error("Server forced to shutdown")
		}
	}()

	log.WithField("address", server.Addr).Info("Starting server")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("Server failed to start")
	}
}

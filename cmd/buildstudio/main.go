package main

import (
	"os"

	"go.uber.org/zap"

	"buildstudio/internal/app"
	"buildstudio/internal/appconfig"
	"buildstudio/internal/graphics"
	"buildstudio/internal/logger"
)

func main() {
	log := logger.New()
	defer log.Sync()

	a, err := app.New(log, appconfig.Load())
	if err != nil {
		log.Error("startup failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
	graphics.Run(a.Title(), a.Width(), a.Height(), a.Update, a.Draw)
}

package main

import (
	"log/slog"

	"github.com/desertwitch/mkpath/internal/configuration"
	"github.com/desertwitch/mkpath/internal/createpath"
	"github.com/desertwitch/mkpath/internal/filesystem"
	"github.com/desertwitch/mkpath/internal/io"
	"github.com/desertwitch/mkpath/internal/pathing"
	"github.com/desertwitch/mkpath/internal/schema"
)

type App struct {
	createHandler *createpath.Handler
}

func NewApp(config *configuration.AppConfiguration) *App {
	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}

	fsHandler := filesystem.NewHandler(unixProvider)
	pathingHandler := pathing.NewHandler(osProvider)
	ioHandler := io.NewHandler(fsHandler, unixProvider, config.DirMode)

	return &App{
		createHandler: createpath.NewHandler(pathingHandler, ioHandler),
	}
}

// Launch creates all given paths in order and returns the exit status, which
// is a failure if any of the paths could not be established.
func (app *App) Launch(paths []string) int {
	status := createpath.StatusSuccess

	for _, path := range paths {
		report, err := app.createHandler.Create(path)
		if err != nil {
			slog.Error("Failed to create path.",
				"path", path,
				"err", err,
			)
			status = createpath.StatusFailure

			continue
		}

		slog.Info("Path established.",
			"path", path,
			"created", len(report.DirsCreated),
		)
	}

	return status
}

// Command curriculum runs the lessons of a self-study Go and data-analysis
// course.
package main

import (
	"context"
	"os"

	"github.com/agbru/curriculum/internal/app"
	apperrors "github.com/agbru/curriculum/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}

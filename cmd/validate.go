package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/allisonsierra/bomsmith/bomsmith"
	"github.com/allisonsierra/bomsmith/internal"
	"github.com/allisonsierra/bomsmith/internal/bus"
	"github.com/allisonsierra/bomsmith/internal/log"
	"github.com/allisonsierra/bomsmith/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:           "validate [FILE]",
	Short:         "Check a CycloneDX 1.2 or 1.3 document (JSON or XML) against the model rules",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, args []string) error {
		var path string
		if len(args) > 0 {
			path = args[0]
		}
		return eventLoop(
			validateExec(path),
			setupSignals(),
			eventSubscription,
			func() {},
			ui.NewLoggerUI(os.Stderr, appConfig.Quiet),
		)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateExec(path string) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)
		defer bus.Exit()

		if err := validateDocument(path); err != nil {
			errs <- err
		}
	}()
	return errs
}

func validateDocument(path string) error {
	in, err := internal.OpenInput(path)
	if err != nil {
		return err
	}
	defer log.CloseAndLogError(in, path)

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	bom, v, f, err := bomsmith.DecodeAny(data)
	if err != nil {
		return err
	}
	log.Infof("validating %s %s document", f, v)

	source := path
	if source == "" {
		source = "stdin"
	}
	return reportFindings(source, bom.Validate())
}

// findings flattens the aggregated validation error into its individual entries.
func findings(err error) []error {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return merr.WrappedErrors()
	}
	return []error{err}
}

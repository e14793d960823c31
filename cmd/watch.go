package cmd

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dataextract/pkg/extractor"
	"dataextract/pkg/report"
	"dataextract/pkg/utils"
	"dataextract/pkg/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <path>",
	Short: "Extract a local file again every time it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Remote() {
			return errors.New("watch only supports local files")
		}

		reporter, err := newReporter()
		if err != nil {
			return err
		}
		defer reporter.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w := &watch.Watcher{Factory: &extractor.Factory{Strict: cfg.Strict}}
		utils.LogInfo("Watching %s (Ctrl+C to stop)", args[0])
		return w.Watch(ctx, args[0], func(e extractor.Extractor, err error) {
			rec := report.Record{Path: args[0]}
			if err != nil {
				rec.Error = err.Error()
				reporter.Report(rec)
				return
			}
			rec.Format = string(e.Format())
			rec.Data, err = recordData(e)
			if err != nil {
				rec.Error = err.Error()
			}
			reporter.Report(rec)
		})
	},
}

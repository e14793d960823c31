package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dataextract/pkg/extractor"
	"dataextract/pkg/report"
	"dataextract/pkg/source"
	"dataextract/pkg/utils"
)

var extractCmd = &cobra.Command{
	Use:   "extract [paths...]",
	Short: "Extract files, or every supported file under directories",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys, release, err := openSource()
		if err != nil {
			return err
		}
		defer release()

		reporter, err := newReporter()
		if err != nil {
			return err
		}
		defer reporter.Close()

		r := &run{
			factory:  &extractor.Factory{FS: fsys, Strict: cfg.Strict},
			reporter: reporter,
		}
		for _, arg := range args {
			if isDir(fsys, arg) {
				r.walk(arg)
				continue
			}
			r.extract(arg)
		}

		utils.LogInfo("Processed %d files, %d failed", r.total, r.failed)
		if r.failed > 0 {
			return fmt.Errorf("%d of %d files failed", r.failed, r.total)
		}
		return nil
	},
}

type run struct {
	factory  *extractor.Factory
	reporter report.Reporter
	total    int
	failed   int
}

func (r *run) walk(root string) {
	utils.LogInfo("Scanning directory: %s", root)
	keep := func(path string) bool {
		_, ok := extractor.Supported(path, r.factory.Strict)
		return ok
	}
	err := source.Walk(r.factory.FS, root, keep, func(path string) error {
		r.extract(path)
		return nil
	}, func(path string, err error) {
		utils.LogWarning("Error accessing %s: %v", path, err)
	})
	if err != nil {
		utils.LogError("Error walking %s: %v", root, err)
	}
}

func (r *run) extract(path string) {
	r.total++
	utils.LogDebug("Extracting %s", path)

	rec := report.Record{Path: path, Host: cfg.SMB.Host, Share: cfg.SMB.Share}
	e, err := r.factory.Create(path)
	if err != nil {
		r.failed++
		rec.Error = err.Error()
		r.reporter.Report(rec)
		return
	}

	rec.Format = string(e.Format())
	rec.Data, err = recordData(e)
	if err != nil {
		r.failed++
		rec.Error = err.Error()
	}
	r.reporter.Report(rec)
}

// recordData is the JSON-encodable form of the parsed content.
func recordData(e extractor.Extractor) (any, error) {
	x, ok := e.(*extractor.XMLExtractor)
	if !ok {
		return e.ParsedData(), nil
	}
	s, err := x.Tree().WriteToString()
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", e.Path(), err)
	}
	return s, nil
}

func isDir(fsys source.FileSystem, path string) bool {
	f, err := fsys.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	fi, err := f.Stat()
	return err == nil && fi.IsDir()
}

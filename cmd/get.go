package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dataextract/pkg/extractor"
)

var getCmd = &cobra.Command{
	Use:   "get <path> [key...]",
	Short: "Print one field of a file",
	Long: `Print one field of a JSON or XML file.

Keys walk nested JSON objects (array elements by index) or XML child tags
from the root element. They can be given as separate arguments or joined
with "/", e.g. "author/last". XML keys are plain tag names: path syntax
such as ".", "..", "*" or "name[2]" is not accepted. The first matching
child is used at each step. Without keys the whole document is printed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys, release, err := openSource()
		if err != nil {
			return err
		}
		defer release()

		f := &extractor.Factory{FS: fsys, Strict: cfg.Strict}
		e, err := f.Create(args[0])
		if err != nil {
			return err
		}

		var keys []string
		for _, k := range args[1:] {
			keys = append(keys, strings.Split(k, "/")...)
		}

		value, ok := extractor.Lookup(e, keys...)
		if !ok {
			return fmt.Errorf("%s not found in %s", strings.Join(keys, "/"), args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

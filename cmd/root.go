package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dataextract/pkg/config"
	"dataextract/pkg/report"
	"dataextract/pkg/smbclient"
	"dataextract/pkg/source"
	"dataextract/pkg/utils"
)

var (
	cfgFile string

	v   = config.New()
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dataextract",
	Short: "Extract data from JSON and XML files",
	Long: `dataextract picks an extractor from each file's suffix ("json" or "xml"),
parses the whole file and prints or reports the parsed content.

Files can be read from the local file system or from an SMB share
(--host/--share). Settings can also come from dataextract.yaml or
DATAEXTRACT_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		cfg = c

		utils.SetVerbose(cfg.Verbose)
		if cfg.LogFile != "" {
			if err := utils.InitLogger(cfg.LogFile); err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
		}
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		utils.LogError("%v", err)
	}
	utils.CloseLogger()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default ./dataextract.yaml or ~/.dataextract/dataextract.yaml)")

	flags.Bool("strict", false, "Dispatch on the real file extension instead of the raw path suffix")
	flags.StringP("output", "o", "", "Output file for results (JSON lines)")
	flags.String("log-file", "", "Append log lines to this file")
	flags.BoolP("verbose", "v", false, "Show debugging messages")

	// SMB source
	flags.String("host", "", "Read files from this SMB host instead of the local file system")
	flags.String("share", "", "SMB share to read from")
	flags.StringP("username", "u", "", "Username for authentication")
	flags.StringP("password", "p", "", "Password for authentication")
	flags.StringP("domain", "d", "", "Domain for authentication")
	flags.StringP("hash", "H", "", "NTLM hash for authentication")

	for key, flag := range map[string]string{
		"strict":       "strict",
		"output":       "output",
		"log_file":     "log-file",
		"verbose":      "verbose",
		"smb.host":     "host",
		"smb.share":    "share",
		"smb.username": "username",
		"smb.password": "password",
		"smb.domain":   "domain",
		"smb.hash":     "hash",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(extractCmd, getCmd, watchCmd)
}

// openSource returns the file system inputs are read from and a func that
// releases it.
func openSource() (source.FileSystem, func(), error) {
	if !cfg.Remote() {
		return source.Local, func() {}, nil
	}

	utils.LogInfo("Connecting to \\\\%s\\%s", cfg.SMB.Host, cfg.SMB.Share)
	session, err := smbclient.NewSession(cfg.SMB.Host, smbclient.Credentials{
		Username: cfg.SMB.Username,
		Password: cfg.SMB.Password,
		Domain:   cfg.SMB.Domain,
		Hash:     cfg.SMB.Hash,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", cfg.SMB.Host, err)
	}

	if cfg.SMB.Share == "" {
		defer session.Close()
		shares, err := session.ListShares()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list shares on %s: %w", cfg.SMB.Host, err)
		}
		return nil, nil, fmt.Errorf("no --share given; shares on %s: %s", cfg.SMB.Host, strings.Join(shares, ", "))
	}

	fsys, err := session.FileSystem(cfg.SMB.Share)
	if err != nil {
		session.Close()
		return nil, nil, err
	}
	return fsys, session.Close, nil
}

// newReporter always prints to the console and, with --output, also writes
// JSON lines.
func newReporter() (report.Reporter, error) {
	reporters := report.Multi{&report.ConsoleReporter{}}
	if cfg.Output != "" {
		jr, err := report.NewJSONReporter(cfg.Output)
		if err != nil {
			return nil, err
		}
		utils.LogDebug("Writing results to %s (run %s)", cfg.Output, jr.RunID())
		reporters = append(reporters, jr)
	}
	return reporters, nil
}

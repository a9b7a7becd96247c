package main

import (
	"fmt"
	"log/slog"
	"sendyourfiles/internal/adapters/filesource"
	"sendyourfiles/internal/adapters/host"
	"sendyourfiles/internal/adapters/settings"
	"sendyourfiles/internal/adapters/transport/resty"
	"sendyourfiles/internal/config"
	"sendyourfiles/internal/core/port"
	"sendyourfiles/internal/core/service/upload"

	"github.com/spf13/cobra"
)

type uploadOptions struct {
	host     string
	expiry   string
	userHash string
}

func newUploadCmd(cfg *config.Config, newLogger func() *slog.Logger) *cobra.Command {
	var opts uploadOptions

	cmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a file and print its URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			store := settings.NewStore(cfg.Settings)

			service, err := upload.NewUploadService(host.NewAdapters(cfg.Hosts), resty.NewClient(cfg.Transport, logger), nil, nil, cfg.Upload, logger)
			if err != nil {
				return err
			}
			return runUpload(cmd, service, store, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.host, "host", "", "file host: buzzheavier, catbox or litterbox (default from SETTINGS_FILE_PROVIDER)")
	cmd.Flags().StringVar(&opts.expiry, "expiry", "", "litterbox retention: 1h, 12h, 24h or 72h (default from SETTINGS_LITTERBOX_TIMELIMIT)")
	cmd.Flags().StringVar(&opts.userHash, "userhash", "", "catbox userhash to attach the upload to an account")

	return cmd
}

func runUpload(cmd *cobra.Command, service port.UploadService, store port.SettingsStore, path string, opts uploadOptions) error {
	file, closer, err := filesource.FromPath(path)
	if err != nil {
		return err
	}
	defer closer.Close()

	out := cmd.OutOrStdout()
	if !store.Enabled() {
		fmt.Fprintf(out, "kept local: uploading is disabled\n")
		return nil
	}

	base, err := store.HostConfig(cmd.Context())
	if err != nil {
		return err
	}
	hostCfg, err := base.WithOverrides(opts.host, opts.expiry, opts.userHash)
	if err != nil {
		return err
	}

	outcome, err := service.Dispatch(cmd.Context(), file, hostCfg)
	if err != nil {
		return err
	}
	if !outcome.External {
		fmt.Fprintf(out, "kept local: %s is under the %d byte limit\n", file.Name, service.BaseThreshold())
		return nil
	}

	fmt.Fprintln(out, outcome.URL)
	return nil
}

package cli

import (
	"context"

	"github.com/secmon-lab/tdhazard/pkg/cli/config"
	"github.com/secmon-lab/tdhazard/pkg/utils/errutil"
	"github.com/secmon-lab/tdhazard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	var loggerCfg config.Logger
	var closer func()

	app := &cli.Command{
		Name:    "tdhazard",
		Usage:   "Thing Description hazard annotation toolkit",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Debug("Starting tdhazard", "logger", loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdCatalog(),
			cmdValidate(),
			cmdAnnotate(),
			cmdResolve(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return errutil.Handle(ctx, err, "failed to run app")
	}

	return nil
}

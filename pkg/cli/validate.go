package cli

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tdhazard/pkg/usecase"
	"github.com/secmon-lab/tdhazard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func cmdValidate() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "Validate the hazard extension of Thing Description files",
		ArgsUsage: "FILE...",
		Action: func(ctx context.Context, c *cli.Command) error {
			files := c.Args().Slice()
			if len(files) == 0 {
				return goerr.New("at least one thing description file is required")
			}

			logger := logging.Default()
			uc := usecase.New()

			// Documents share no mutable state; the catalog is immutable.
			var mu sync.Mutex
			var failed []string

			g, ctx := errgroup.WithContext(ctx)
			for _, path := range files {
				g.Go(func() error {
					data, err := os.ReadFile(path)
					if err != nil {
						return goerr.Wrap(err, "failed to read thing description",
							goerr.V("path", path))
					}

					ext, err := uc.ValidateDocument(ctx, data)
					if err != nil {
						logger.Error("validation failed", "path", path, "error", err)
						mu.Lock()
						failed = append(failed, path)
						mu.Unlock()
						return nil
					}

					if ext == nil {
						logger.Warn("no hazard extension", "path", path)
						return nil
					}

					logger.Info("validation passed",
						"path", path,
						"affordances", len(ext.Affordances()),
						"bindings", ext.Len(),
					)
					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			if len(failed) > 0 {
				return fmt.Errorf("%d of %d document(s) failed validation", len(failed), len(files))
			}
			return nil
		},
	}
}

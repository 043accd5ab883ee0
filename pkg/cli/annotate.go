package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tdhazard/pkg/cli/config"
	"github.com/secmon-lab/tdhazard/pkg/usecase"
	"github.com/secmon-lab/tdhazard/pkg/utils/logging"
	"github.com/secmon-lab/tdhazard/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdAnnotate() *cli.Command {
	var configPath string
	var inputPath string
	var outputPath string

	return &cli.Command{
		Name:    "annotate",
		Aliases: []string{"a"},
		Usage:   "Apply authored hazard bindings to a Thing Description",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "Annotation TOML file",
				Sources:     cli.EnvVars("TDHAZARD_ANNOTATION_CONFIG"),
				Required:    true,
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Thing Description JSON file",
				Required:    true,
				Destination: &inputPath,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file (default: stdout)",
				Destination: &outputPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			annotation, err := config.LoadAnnotation(configPath)
			if err != nil {
				return goerr.Wrap(err, "failed to load annotation config")
			}

			data, err := os.ReadFile(inputPath)
			if err != nil {
				return goerr.Wrap(err, "failed to read thing description",
					goerr.V("path", inputPath))
			}

			out, err := usecase.New().Annotate(ctx, data, annotation.Specs())
			if err != nil {
				return goerr.Wrap(err, "failed to annotate thing description",
					goerr.V("path", inputPath))
			}

			if outputPath == "" {
				safe.Write(ctx, c.Writer, out)
				safe.Write(ctx, c.Writer, []byte("\n"))
				return nil
			}

			if err := os.WriteFile(outputPath, out, 0644); err != nil {
				return goerr.Wrap(err, "failed to write output",
					goerr.V("path", outputPath))
			}

			logging.Default().Info("annotated thing description",
				"input", inputPath,
				"output", outputPath,
				"bindings", len(annotation.Bindings),
			)
			return nil
		},
	}
}

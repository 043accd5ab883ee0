package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
	"github.com/secmon-lab/tdhazard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdResolve() *cli.Command {
	var inputPath string
	var affordance string
	var hazardID string
	var rawValue string

	return &cli.Command{
		Name:    "resolve",
		Aliases: []string{"r"},
		Usage:   "Resolve the risk level of a bound hazard for a concrete value",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Thing Description JSON file",
				Required:    true,
				Destination: &inputPath,
			},
			&cli.StringFlag{
				Name:        "affordance",
				Usage:       "Affordance name",
				Required:    true,
				Destination: &affordance,
			},
			&cli.StringFlag{
				Name:        "hazard",
				Usage:       "Hazard ID (e.g. sho:FireHazard)",
				Required:    true,
				Destination: &hazardID,
			},
			&cli.StringFlag{
				Name:        "value",
				Usage:       "Affordance value (parsed as bool, number or string)",
				Required:    true,
				Destination: &rawValue,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			hazard, err := types.ParseHazardID(hazardID)
			if err != nil {
				return goerr.Wrap(err, "invalid hazard")
			}

			data, err := os.ReadFile(inputPath)
			if err != nil {
				return goerr.Wrap(err, "failed to read thing description",
					goerr.V("path", inputPath))
			}

			level, ok, err := usecase.New().ResolveRisk(ctx, data, affordance, hazard, parseValue(rawValue))
			if err != nil {
				return err
			}

			if !ok {
				fmt.Fprintf(c.Writer, "%s on %q: no mapped risk\n", hazard, affordance)
				return nil
			}

			fmt.Fprintf(c.Writer, "%s on %q: %s (weight %d)\n", hazard, affordance, level.Label, level.Weight)
			return nil
		},
	}
}

// parseValue interprets a CLI value argument: bool, then number, then string
func parseValue(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

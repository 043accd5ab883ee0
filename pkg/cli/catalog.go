package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tdhazard/pkg/domain/model"
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

var categoryColors = map[types.Category]*color.Color{
	types.CategorySafety:    color.New(color.FgRed, color.Bold),
	types.CategoryPrivacy:   color.New(color.FgMagenta, color.Bold),
	types.CategoryFinancial: color.New(color.FgYellow, color.Bold),
}

func cmdCatalog() *cli.Command {
	var categoryFilter string

	return &cli.Command{
		Name:    "catalog",
		Aliases: []string{"c"},
		Usage:   "List the pinned hazard catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "category",
				Usage:       "Filter by category [sho:Safety, sho:Privacy, sho:Financial]",
				Destination: &categoryFilter,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var filter types.Category
			if categoryFilter != "" {
				parsed, err := types.ParseCategory(categoryFilter)
				if err != nil {
					return goerr.Wrap(err, "invalid category filter")
				}
				filter = parsed
			}

			catalog := model.DefaultCatalog()
			fmt.Fprintf(c.Writer, "Hazard catalog v%s (%d hazards)\n\n", catalog.Version(), catalog.Len())

			for _, h := range catalog.Hazards() {
				if filter != "" && h.Category != filter {
					continue
				}
				categoryLabel := h.Category.String()
				if cc, ok := categoryColors[h.Category]; ok {
					categoryLabel = cc.Sprint(categoryLabel)
				}
				fmt.Fprintf(c.Writer, "%-36s %-16s %s\n", h.ID, categoryLabel, h.Name)
				fmt.Fprintf(c.Writer, "%-36s %-16s %s\n", "", "", h.Description)
			}

			return nil
		},
	}
}

/*
Copyright © 2026 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnparks/internal/iodataset"
	"github.com/gnames/gnparks/internal/ioweb"
	"github.com/gnames/gnparks/pkg/config"
	"github.com/gnames/gnparks/pkg/dashboard"
	"github.com/gnames/gnparks/pkg/dataset"
	"github.com/spf13/cobra"
)

// getServeCmd returns the serve command.
func getServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard web server",
		Long: `Load and merge observations and species, then serve the dashboard.

The data is loaded once at startup. The server stops on Ctrl-C or SIGTERM.

Examples:
  # Serve CSV files from the working directory on port 8050
  gnparks serve

  # Use other files and port
  gnparks serve -o data/observations.csv -s data/species_info.csv -p 8080

  # Preselect a park and categories
  gnparks serve --default-park "Yosemite National Park" \
    --default-categories "Mammal,Bird"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(dataFlags(cmd))
			cfg.Update(serveFlags(cmd))
			err := runServe(cmd.Context(), cfg)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addDataFlags(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "web server port (default 8050)")
	serveCmd.Flags().String("default-park", "", "park selected at start")
	serveCmd.Flags().String("default-categories", "",
		"comma-separated categories selected at start")
	return serveCmd
}

func serveFlags(cmd *cobra.Command) []config.Option {
	var res []config.Option
	if cmd.Flags().Changed("port") {
		port, _ := cmd.Flags().GetInt("port")
		res = append(res, config.OptServerPort(port))
	}
	if cmd.Flags().Changed("default-park") {
		park, _ := cmd.Flags().GetString("default-park")
		res = append(res, config.OptDashboardDefaultPark(park))
	}
	if cmd.Flags().Changed("default-categories") {
		cats, _ := cmd.Flags().GetString("default-categories")
		res = append(res, config.OptDashboardDefaultCategories(cats))
	}
	return res
}

func runServe(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	tbl, _, err := loadTable(ctx, cfg)
	if err != nil {
		return err
	}
	if tbl.Len() == 0 {
		err = iodataset.EmptyError(cfg.Data.Observations, cfg.Data.Species)
		slog.Error("Nothing to serve", "error", err)
		return err
	}

	dash := dashboard.New(tbl, cfg.Dashboard)
	def := dash.Defaults()
	slog.Info("Dashboard defaults",
		"parks", def.Parks,
		"categories", def.Categories,
	)

	gn.Info("Dashboard is available at <em>http://localhost:%d</em>",
		cfg.Server.Port)
	return ioweb.New(dash, cfg.Server.Port).Run(ctx)
}

// loadTable loads data and prints a short summary.
func loadTable(
	ctx context.Context,
	cfg *config.Config,
) (*dataset.Table, dataset.Stats, error) {
	gn.Info("Loading <em>%s</em> and <em>%s</em>",
		cfg.Data.Observations, cfg.Data.Species)

	tbl, stats, err := iodataset.New(cfg.Data).Load(ctx)
	if err != nil {
		return nil, stats, err
	}

	gn.Info("Merged <em>%s</em> records from %s observations and %s species",
		humanize.Comma(int64(stats.Merged)),
		humanize.Comma(int64(stats.ObservationRows)),
		humanize.Comma(int64(stats.SpeciesRows)),
	)
	return tbl, stats, nil
}

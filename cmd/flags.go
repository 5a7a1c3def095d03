package cmd

import (
	"github.com/gnames/gnparks/pkg/config"
	"github.com/spf13/cobra"
)

// addDataFlags adds flags that set data sources.
func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("observations", "o", "",
		"observations source (default observations.csv)")
	cmd.Flags().StringP("species", "s", "",
		"species source (default species_info.csv)")
	cmd.Flags().IntP("jobs", "j", 0,
		"number of concurrent workers (default number of CPUs)")
}

// dataFlags converts data flags set by a user to options.
func dataFlags(cmd *cobra.Command) []config.Option {
	var res []config.Option
	if cmd.Flags().Changed("observations") {
		s, _ := cmd.Flags().GetString("observations")
		res = append(res, config.OptDataObservations(s))
	}
	if cmd.Flags().Changed("species") {
		s, _ := cmd.Flags().GetString("species")
		res = append(res, config.OptDataSpecies(s))
	}
	if cmd.Flags().Changed("jobs") {
		i, _ := cmd.Flags().GetInt("jobs")
		res = append(res, config.OptJobsNumber(i))
	}
	return res
}

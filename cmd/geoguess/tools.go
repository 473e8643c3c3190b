package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/susu3304/geoguess/internal/catalog"
	"github.com/susu3304/geoguess/internal/config"
	"github.com/susu3304/geoguess/internal/geourl"
	"github.com/susu3304/geoguess/internal/guess"
	"github.com/susu3304/geoguess/internal/streetview"
)

var toolOptions struct {
	JSON bool
}

var scoreCmd = &cobra.Command{
	Use:   "score <actual> <guess>",
	Short: "Score a guess against an actual location",
	Long: `
Points are "lat,lng" pairs or map URLs carrying coordinates
(.../@lat,lng,..., ...!3dlat!4dlng..., ?q=lat,lng). Put -- before
arguments that start with a minus sign: geoguess score -- -33.85,151.21 0,0
`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		actual, err := geourl.ParsePoint(args[0])
		if err != nil {
			return fmt.Errorf("actual: %w", err)
		}
		guessed, err := geourl.ParsePoint(args[1])
		if err != nil {
			return fmt.Errorf("guess: %w", err)
		}

		svc := guess.NewService(catalog.Default(), streetview.NewSigner("", ""))
		res := svc.Score(actual, guessed)

		out := cmd.OutOrStdout()
		if toolOptions.JSON {
			return json.NewEncoder(out).Encode(res)
		}
		fmt.Fprintf(out, "distance: %s\nscore:    %d\n", guess.FormatDistance(res.DistanceKm), res.Score)
		return nil
	},
}

var signCmd = &cobra.Command{
	Use:   "sign <point>",
	Short: "Print a signed Street View URL using the configured secrets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := geourl.ParsePoint(args[0])
		if err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		signed, err := streetview.BuildSignedImageryURL(p, cfg.MapsAPIKey, cfg.MapsSigningSecret)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), signed)
		return nil
	},
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List the landmark catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		landmarks := catalog.Default().All()

		out := cmd.OutOrStdout()
		if toolOptions.JSON {
			return json.NewEncoder(out).Encode(landmarks)
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tCOUNTRY\tLAT\tLNG")
		for _, l := range landmarks {
			fmt.Fprintf(tw, "%s\t%s\t%g\t%g\n", l.DisplayName, l.Country, l.Location.Lat, l.Location.Lng)
		}
		return tw.Flush()
	},
}

func init() {
	scoreCmd.Flags().BoolVar(&toolOptions.JSON, "json", false, "print JSON")
	locationsCmd.Flags().BoolVar(&toolOptions.JSON, "json", false, "print JSON")
}

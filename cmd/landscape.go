package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/parlsim/internal/cabinet"
	"github.com/theirongolddev/parlsim/internal/engine"
	"github.com/theirongolddev/parlsim/internal/model"
	"gopkg.in/yaml.v3"
)

var (
	landscapeFlags  playerFlags
	flagFormat      string
	flagWithCabinet bool
)

var landscapeCmd = &cobra.Command{
	Use:   "landscape",
	Short: "Generate a parliament and report the coalition it forms",
	Example: "  parlsim landscape --seed 42 --name \"Green Dawn\" --scale big --social progressive\n" +
		"  parlsim landscape --format yaml > parliament.yaml",
	RunE: runLandscape,
}

func init() {
	landscapeFlags.register(landscapeCmd)
	landscapeCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or yaml")
	landscapeCmd.Flags().BoolVar(&flagWithCabinet, "cabinet", false, "Also appoint and show the government")
	rootCmd.AddCommand(landscapeCmd)
}

func runLandscape(cmd *cobra.Command, _ []string) error {
	if flagFormat != "text" && flagFormat != "yaml" {
		return fmt.Errorf("unknown format %q (want text or yaml)", flagFormat)
	}

	cfg := loadConfig()
	s, rng, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}
	spec, err := landscapeFlags.spec(cfg, rng)
	if err != nil {
		return err
	}
	if _, err := s.GenerateLandscape(spec); err != nil {
		return err
	}
	progressf("  Generated %d parties (seed %d)\n", len(s.Parties()), s.Seed())

	w := cmd.OutOrStdout()
	if flagFormat == "yaml" {
		return writeLandscapeYAML(w, s)
	}

	printParties(w, s)
	printCoalition(w, s)
	printCompass(w, s)
	if flagWithCabinet {
		c, err := s.Cabinet()
		if err != nil {
			return err
		}
		printCabinet(w, c)
	}
	return nil
}

// landscapeReport is the yaml export of a generated parliament.
type landscapeReport struct {
	Seed      int64           `yaml:"seed"`
	Parties   []model.Party   `yaml:"parties"`
	Coalition coalitionReport `yaml:"coalition"`
	Cabinet   []cabinetSeat   `yaml:"cabinet,omitempty"`
}

type coalitionReport struct {
	Members      []string `yaml:"members"`
	TotalShare   int      `yaml:"total_share"`
	EconomicLean float64  `yaml:"economic_lean"`
	SocialLean   float64  `yaml:"social_lean"`
	Rule         string   `yaml:"fiscal_rule"`
	Security     float64  `yaml:"security"`
	Tier         string   `yaml:"tier"`
}

type cabinetSeat struct {
	Office string `yaml:"office"`
	Holder string `yaml:"holder"`
	Party  string `yaml:"party"`
}

func writeLandscapeYAML(w io.Writer, s *engine.Session) error {
	snap := s.Coalition()
	sec := s.CoalitionSecurity()
	r := landscapeReport{
		Seed:    s.Seed(),
		Parties: s.Parties(),
		Coalition: coalitionReport{
			TotalShare:   snap.TotalShare,
			EconomicLean: snap.EconomicLean,
			SocialLean:   snap.SocialLean,
			Rule:         s.Rule().String(),
			Security:     sec.Score,
			Tier:         sec.Tier.String(),
		},
	}
	for _, p := range snap.Members {
		r.Coalition.Members = append(r.Coalition.Members, p.Name)
	}
	if flagWithCabinet {
		c, err := s.Cabinet()
		if err != nil {
			return err
		}
		for _, p := range append([]cabinet.Post{c.President}, c.Ministers...) {
			r.Cabinet = append(r.Cabinet, cabinetSeat{Office: p.Office, Holder: p.Leader.FullName(), Party: p.Party})
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding landscape: %w", err)
	}
	return enc.Close()
}

package cli

import (
	"github.com/spf13/cobra"

	"cupid_fragments/internal/profileheader"
	"cupid_fragments/internal/style"
)

func (a *App) headerCmd() *cobra.Command {
	var (
		input, output, alignment string
		limit                    int
	)
	cmd := &cobra.Command{
		Use:   "header",
		Short: "Render a profile header",
		Long: `Render a profile header from a YAML profile.

Example input:
  name: Hotel Lutetia
  location: Paris, France
  website: https://www.example.com
  interests: [art, food]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var p profileheader.Profile
			if err := decodeFile(input, &p); err != nil {
				return err
			}
			if cmd.Flags().Changed("alignment") {
				p.Alignment = style.Alignment(alignment)
			}
			if cmd.Flags().Changed("interests-limit") {
				p.InterestsLimit = &limit
			}

			svc, err := a.service()
			if err != nil {
				return err
			}
			f, err := svc.RenderHeader(p)
			if err != nil {
				return err
			}
			a.log.Debug().Str("name", p.Name).Msg("header rendered")
			return a.write(output, f)
		},
	}

	cmd.Flags().StringVarP(&input, "file", "f", "", "YAML input file ('-' for stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write HTML to this file instead of stdout")
	cmd.Flags().StringVar(&alignment, "alignment", string(style.AlignCenter), "center or left")
	cmd.Flags().IntVar(&limit, "interests-limit", 0, "Show at most this many interest tags")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cupid_fragments/internal/amenities"
	"cupid_fragments/internal/style"
	"cupid_fragments/internal/view"
)

// amenitiesInput is the YAML document the amenities command reads. Items
// are markup strings for single lists and groups for grouped ones; groups
// is accepted as an alias for the grouped form.
type amenitiesInput struct {
	Columns  int               `yaml:"columns"`
	ListType string            `yaml:"listType"`
	QAHook   bool              `yaml:"qaHook"`
	Items    yaml.Node         `yaml:"items"`
	Groups   []amenities.Group `yaml:"groups"`
}

func (in amenitiesInput) props() (amenities.Props, error) {
	p := amenities.Props{
		Columns:  style.Columns(in.Columns),
		ListType: style.ListType(in.ListType),
		QAHook:   in.QAHook,
		Groups:   in.Groups,
	}
	if in.Items.Kind == 0 {
		return p, nil
	}
	if p.ListType == style.ListGrouped {
		var groups []amenities.Group
		if err := in.Items.Decode(&groups); err != nil {
			return p, fmt.Errorf("grouped items must be groups: %w", err)
		}
		p.Groups = append(p.Groups, groups...)
		return p, nil
	}
	var items []view.Markup
	if err := in.Items.Decode(&items); err != nil {
		return p, fmt.Errorf("items must be markup strings: %w", err)
	}
	p.Items = items
	return p, nil
}

func (a *App) amenitiesCmd() *cobra.Command {
	var (
		input, output, listType string
		columns                 int
		qaHook                  bool
	)
	cmd := &cobra.Command{
		Use:   "amenities",
		Short: "Render an amenity list",
		Long: `Render a flat or grouped amenity list.

Example input:
  listType: grouped
  items:
    - title: Room amenities
      capitalize: true
      items: [wifi, "<b>minibar</b>"]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in amenitiesInput
			if err := decodeFile(input, &in); err != nil {
				return err
			}
			// flags win over the file when set
			if cmd.Flags().Changed("columns") {
				in.Columns = columns
			}
			if cmd.Flags().Changed("list-type") {
				in.ListType = listType
			}
			if cmd.Flags().Changed("qa-hook") {
				in.QAHook = qaHook
			}

			svc, err := a.service()
			if err != nil {
				return err
			}
			props, err := in.props()
			if err != nil {
				return err
			}
			f, err := svc.RenderAmenities(props)
			if err != nil {
				return err
			}
			a.log.Debug().Int("items", len(props.Items)).Int("groups", len(props.Groups)).Msg("amenities rendered")
			return a.write(output, f)
		},
	}

	cmd.Flags().StringVarP(&input, "file", "f", "", "YAML input file ('-' for stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write HTML to this file instead of stdout")
	cmd.Flags().IntVar(&columns, "columns", 1, "Number of columns (1-3)")
	cmd.Flags().StringVar(&listType, "list-type", string(style.ListSingle), "single or grouped")
	cmd.Flags().BoolVar(&qaHook, "qa-hook", false, "Emit data-testid hooks")
	return cmd
}

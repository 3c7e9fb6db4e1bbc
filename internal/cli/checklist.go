package cli

import (
	"fmt"

	"github.com/nkurtev/attestor/internal/checklist"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// checklistCmd prints the active checklist so operators can export the
// built-in standards and edit their own copy
var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Print the active checklist as YAML",
	Long: `Print the checklist that assessments run against. Without --checklist
this shows the built-in standards, which can be saved and customised:

  attestor checklist > my-standards.yaml
  attestor assess return.txt --checklist my-standards.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cl, err := loadChecklist()
		if err != nil {
			return err
		}
		if err := checklist.Validate(cl); err != nil {
			return fmt.Errorf("invalid checklist: %w", err)
		}

		data, err := yaml.Marshal(cl)
		if err != nil {
			return fmt.Errorf("marshal checklist: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checklistCmd)
	checklistCmd.Flags().StringVar(&checklistPath, "checklist", "", "checklist YAML to print (default: built-in standards)")
}

package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stacksforge/clarion/config"
	"github.com/stacksforge/clarion/internal/logger"
)

const defaultManifestPath = "Clarion.yaml"

func manifestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Project manifest operations",
	}
	cmd.AddCommand(manifestCheckCommand())
	return cmd
}

func manifestCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [path]",
		Short: "Validate a project manifest and print deploy order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(verbose)

			path := defaultManifestPath
			if len(args) == 1 {
				path = args[0]
			}

			m, err := config.LoadManifest(path)
			if err != nil {
				return err
			}

			ordered, err := m.OrderedContracts()
			if err != nil {
				return err
			}

			log.Info("manifest ok",
				zap.String("project", m.Project.Name),
				zap.Int("contracts", len(ordered)),
				zap.Int("accounts", len(m.Accounts)),
			)
			for i, c := range ordered {
				cmd.Printf("%d. %s (%s)\n", i+1, c.Name, c.Config.Path)
			}
			return nil
		},
	}
}

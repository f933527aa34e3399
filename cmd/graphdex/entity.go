package main

import (
	"github.com/spf13/cobra"
)

var entityExtra bool

var entityCmd = &cobra.Command{
	Use:   "entity <id>",
	Short: "Fetch one entity by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntity,
}

func init() {
	entityCmd.Flags().BoolVar(&entityExtra, "extra", false,
		"resolve hierarchy, inheritance, association counts, and external links")
	rootCmd.AddCommand(entityCmd)
}

func runEntity(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	node, err := client.Entities().Get(cmd.Context(), args[0], entityExtra)
	if err != nil {
		return err
	}
	return printJSON(node)
}

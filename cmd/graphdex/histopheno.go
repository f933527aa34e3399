package main

import "github.com/spf13/cobra"

var histophenoCmd = &cobra.Command{
	Use:   "histopheno <entity-id>",
	Short: "Phenotype frequency histogram for an entity's subtree",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoPheno,
}

func init() {
	rootCmd.AddCommand(histophenoCmd)
}

func runHistoPheno(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.Associations().HistoPheno(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printJSON(res)
}

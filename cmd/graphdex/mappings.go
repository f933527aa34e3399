package main

import "github.com/spf13/cobra"

var mappingFlags struct {
	offset int
	limit  int
}

var mappingsCmd = &cobra.Command{
	Use:   "mappings <entity-id>...",
	Short: "Cross-vocabulary mappings for one or more entities",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMappings,
}

func init() {
	f := mappingsCmd.Flags()
	f.IntVar(&mappingFlags.offset, "offset", 0, "result window start")
	f.IntVar(&mappingFlags.limit, "limit", 20, "result window size")
	rootCmd.AddCommand(mappingsCmd)
}

func runMappings(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.Mappings().List(cmd.Context(), args, mappingFlags.offset, mappingFlags.limit)
	if err != nil {
		return err
	}
	return printJSON(res)
}

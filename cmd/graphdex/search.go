package main

import (
	"github.com/spf13/cobra"

	"github.com/helix-bio/graphdex/pkg/model"
)

var searchFlags struct {
	category      []string
	inTaxon       []string
	facetFields   []string
	facetQueries  []string
	filterQueries []string
	sort          string
	offset        int
	limit         int
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over entities",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var autocompleteCmd = &cobra.Command{
	Use:   "autocomplete <text>",
	Short: "Prefix search for typeahead suggestions",
	Args:  cobra.ExactArgs(1),
	RunE:  runAutocomplete,
}

func init() {
	f := searchCmd.Flags()
	f.StringSliceVar(&searchFlags.category, "category", nil, "entity category filter")
	f.StringSliceVar(&searchFlags.inTaxon, "in-taxon", nil, "taxon constraint")
	f.StringSliceVar(&searchFlags.facetFields, "facet-field", nil, "field to facet on")
	f.StringSliceVar(&searchFlags.facetQueries, "facet-query", nil, "arbitrary facet query")
	f.StringSliceVar(&searchFlags.filterQueries, "filter-query", nil, "raw filter query")
	f.StringVar(&searchFlags.sort, "sort", "", "sort clause, e.g. \"name asc\"")
	f.IntVar(&searchFlags.offset, "offset", 0, "result window start")
	f.IntVar(&searchFlags.limit, "limit", 20, "result window size")
	rootCmd.AddCommand(searchCmd)

	rootCmd.AddCommand(autocompleteCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.Search().Query(cmd.Context(), model.SearchParams{
		Q:             args[0],
		Category:      searchFlags.category,
		InTaxon:       searchFlags.inTaxon,
		FacetFields:   searchFlags.facetFields,
		FacetQueries:  searchFlags.facetQueries,
		FilterQueries: searchFlags.filterQueries,
		Sort:          searchFlags.sort,
		Offset:        searchFlags.offset,
		Limit:         searchFlags.limit,
	})
	if err != nil {
		return err
	}
	return printJSON(res)
}

func runAutocomplete(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.Search().Autocomplete(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printJSON(res)
}

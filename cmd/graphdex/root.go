package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/helix-bio/graphdex"
)

var solrURL string

var rootCmd = &cobra.Command{
	Use:   "graphdex",
	Short: "graphdex: knowledge-graph search over a Solr index",
	Long: `graphdex queries a biomedical knowledge graph served from a Solr
document index: entities, typed associations, full-text search, and
cross-vocabulary mappings.

Data commands print the API's JSON responses; "graphdex serve" starts
the HTTP API server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&solrURL, "solr-url", defaultSolrURL(),
		"Solr base URL hosting the graph cores (env GRAPHDEX_SOLR_URL)")
}

func defaultSolrURL() string {
	if v := os.Getenv("GRAPHDEX_SOLR_URL"); v != "" {
		return v
	}
	return "http://localhost:8983/solr"
}

func newClient() (*graphdex.Client, error) {
	return graphdex.New(graphdex.WithBaseURL(solrURL))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

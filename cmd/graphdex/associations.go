package main

import (
	"github.com/spf13/cobra"

	"github.com/helix-bio/graphdex/pkg/model"
)

var assocFlags struct {
	category       []string
	predicate      []string
	subject        []string
	object         []string
	entity         []string
	subjectClosure string
	objectClosure  string
	direct         bool
	offset         int
	limit          int
}

var associationsCmd = &cobra.Command{
	Use:   "associations",
	Short: "List associations matching the given filters",
	RunE:  runAssociations,
}

var countsCmd = &cobra.Command{
	Use:   "counts <entity-id>",
	Short: "Total an entity's associations per reference category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCounts,
}

var tableFlags struct {
	query  string
	sort   string
	offset int
	limit  int
}

var tableCmd = &cobra.Command{
	Use:   "table <entity-id> <category>",
	Short: "Page one entity's associations in one category",
	Args:  cobra.ExactArgs(2),
	RunE:  runTable,
}

func init() {
	f := associationsCmd.Flags()
	f.StringSliceVar(&assocFlags.category, "category", nil, "association category filter")
	f.StringSliceVar(&assocFlags.predicate, "predicate", nil, "predicate filter")
	f.StringSliceVar(&assocFlags.subject, "subject", nil, "subject filter")
	f.StringSliceVar(&assocFlags.object, "object", nil, "object filter")
	f.StringSliceVar(&assocFlags.entity, "entity", nil, "match either side of the association")
	f.StringVar(&assocFlags.subjectClosure, "subject-closure", "", "subject closure filter")
	f.StringVar(&assocFlags.objectClosure, "object-closure", "", "object closure filter")
	f.BoolVar(&assocFlags.direct, "direct", false, "match subject and object exactly, not through closures")
	f.IntVar(&assocFlags.offset, "offset", 0, "result window start")
	f.IntVar(&assocFlags.limit, "limit", 20, "result window size")
	rootCmd.AddCommand(associationsCmd)

	rootCmd.AddCommand(countsCmd)

	tf := tableCmd.Flags()
	tf.StringVar(&tableFlags.query, "query", "", "free-text filter over the table")
	tf.StringVar(&tableFlags.sort, "sort", "", "sort clause, e.g. \"subject_label asc\"")
	tf.IntVar(&tableFlags.offset, "offset", 0, "result window start")
	tf.IntVar(&tableFlags.limit, "limit", 20, "result window size")
	rootCmd.AddCommand(tableCmd)
}

func runAssociations(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.Associations().List(cmd.Context(), model.AssociationQuery{
		Category:       assocFlags.category,
		Predicate:      assocFlags.predicate,
		Subject:        assocFlags.subject,
		Object:         assocFlags.object,
		Entity:         assocFlags.entity,
		SubjectClosure: assocFlags.subjectClosure,
		ObjectClosure:  assocFlags.objectClosure,
		Direct:         assocFlags.direct,
		Offset:         assocFlags.offset,
		Limit:          assocFlags.limit,
	})
	if err != nil {
		return err
	}
	return printJSON(res)
}

func runCounts(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.Associations().Counts(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printJSON(res)
}

func runTable(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.Associations().Table(cmd.Context(), model.AssociationTableQuery{
		Entity:   args[0],
		Category: model.AssociationCategory(args[1]),
		Q:        tableFlags.query,
		Sort:     tableFlags.sort,
		Offset:   tableFlags.offset,
		Limit:    tableFlags.limit,
	})
	if err != nil {
		return err
	}
	return printJSON(res)
}

// Package graphdex is a typed client for a biomedical knowledge graph
// served from a Solr document index. It translates entity, association,
// and search operations into Solr select queries and parses the responses
// into stable Go types; ranking and traversal stay on the backend.
package graphdex

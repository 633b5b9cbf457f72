// Package pagination provides the sorting and slicing flags shared by list
// commands.
//
// Params holds --limit, --offset and --sort; Sorter orders search results by
// a named field. Both operate on the page already fetched from OMDb.
package pagination

// Package repokit holds the query surface repos are written against
package repokit

import "newsletter/internal/platform/store"

// Queryer is what a repo needs from the database
type Queryer = store.RowQuerier

// Result types repos see through Queryer
type (
	Rows       = store.Rows
	Row        = store.Row
	CommandTag = store.CommandTag
)

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// DLQEntry is the predicate function for dlqentry builders.
type DLQEntry func(*sql.Selector)

// DailyCost is the predicate function for dailycost builders.
type DailyCost func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Summary is the predicate function for summary builders.
type Summary func(*sql.Selector)

// Transcript is the predicate function for transcript builders.
type Transcript func(*sql.Selector)

// Video is the predicate function for video builders.
type Video func(*sql.Selector)

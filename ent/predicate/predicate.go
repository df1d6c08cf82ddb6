// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// TestSession is the predicate function for testsession builders.
type TestSession func(*sql.Selector)

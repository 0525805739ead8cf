// Package core defines the Array interface shared by all raggo containers
// and the error taxonomy surfaced by container operations.
package core

// Package report contains the ValidationReport entity: the written outcome of
// one validation pass over an order's design file. Reports are append-only; a
// new review round produces a new report instead of editing an old one.
package report

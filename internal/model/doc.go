package model

// Package model defines the domain records shared across the app: meal
// summaries from the catalog, full meal details, the catalog load status and
// the error taxonomy every layer reports through.

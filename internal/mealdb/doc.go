package mealdb

// Package mealdb is the gateway to TheMealDB recipe service. It issues the
// area filter, id lookup and image requests, maps failures onto the model
// error taxonomy and keeps the response JSON shape private to this package.

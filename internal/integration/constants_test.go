package integration_test

import "github.com/shopspring/decimal"

const (
	baseURL = "/api/v1"

	// Movie related constants
	TestMovieName        = "Test Movie"
	TestMovieUrl         = "https://example.com/movies/test.mp4"
	TestMovieImageUrl    = "https://example.com/posters/test.jpg"
	TestMovieDescription = "A test movie description."
	TestMovieGenres      = "Action, Drama"
	TestMovieDirector    = "Jane Doe"
	TestMovieActors      = "Actor One, Actor Two"

	// Collection related constants
	DefaultCollectionName = "All Movies"
	DefaultCollectionUrl  = "/api/v1/movies"
)

var TestMovieRating = decimal.RequireFromString("7.5")

package main

import "errors"

var (
	errUnknownCard = errors.New("card not in the last search results")
	errCancelled   = errors.New("confirmation declined")
	errBadIndex    = errors.New("invalid deck position")
)

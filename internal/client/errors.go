package client

import "errors"

var (
	errUnknownOutputFormat = errors.New("unknown output format (allowed: table, json, yaml)")
	errNoFragments         = errors.New("no configuration fragments given")
)

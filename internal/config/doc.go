// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetAdapterConfig] for command-line clients.
//
// This package configures the programs themselves. The admin backend
// configuration they serve lives in separate fragment files listed in
// [Backend.ConfigPaths].
package config

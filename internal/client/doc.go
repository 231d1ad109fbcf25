// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements adminctl, the command-line client of the admin
// configuration server.
//
// The resolve command runs the whole resolution pipeline offline against
// local fragment files. The remaining commands query a running server
// through the HTTP adapter and print what it serves.
package client

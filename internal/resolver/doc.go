// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver turns raw backend configuration fragments into one
// canonical, uniquely keyed entity configuration.
//
// Resolution happens in two steps:
//  1. [Resolve] (or [ResolveEach]) normalizes every entity declaration to a
//     {class, ...options} record and assigns it a unique, identifier-safe name.
//  2. [Merge] deep-merges the resolved fragments in order into a single
//     [models.ResolvedConfig].
//
// [Normalizer] bundles both steps behind the merge mode chosen in the
// application configuration. Every failure kind, [MissingClassError],
// [InvalidClassError] and [InvalidNameError], aborts the whole pass: no
// partial result is returned.
package resolver

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stats reduces an account's records into the numbers shown on the
// home and reports screens: per-day totals, goal progress, the macro
// breakdown and the rolling 7-day series.
//
// Every function is pure. Time and location are always passed in, so
// results depend only on the arguments.
package stats

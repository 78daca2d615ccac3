// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads calcufit settings.
//
// Sources are merged in order, later non-zero fields winning:
//  1. Environment variables (APP_, STORAGE_, AUTH_, ESTIMATOR_, LOG_
//     prefixes) with `envDefault` fallbacks
//  2. Command-line flags
//  3. The JSON file named by -c, -config or CONFIG
//
// The merged result is validated before [GetStructuredConfig] returns it.
package config

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils contains small generic helpers shared across packages,
// mainly case-insensitive lookup over ordered string-keyed collections.
package utils

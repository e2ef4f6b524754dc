// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It sequences boot-time maintenance, the server identity check and the
// background sync scheduler into a single process lifecycle.
package client

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client application runtime.
//
// It binds the post browser UI to a process lifecycle that stops on
// SIGINT or SIGTERM.
package client

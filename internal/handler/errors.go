// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	errNoServices    = errors.New("handlers need services")
	errNoHTTPAddress = errors.New("handlers need an http address")
)

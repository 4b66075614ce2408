// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/shop-console/internal/menu"
	"github.com/MKhiriev/shop-console/models"
)

type authDoneMsg struct {
	session models.Session
	message string
}

type actionDoneMsg struct {
	lines []string
	next  menu.State
}

type copiedMsg struct {
	err error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/shop-console/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	content := "Application: shop-client\n" + info.String()
	return renderPage("ABOUT", infoBoxStyle.Render(content), "esc / v: back")
}

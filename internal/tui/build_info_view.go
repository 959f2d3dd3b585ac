// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-blog/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	r := info.Resolved()
	body := fmt.Sprintf("Приложение: Go Blog\nВерсия:     %s\nДата сборки: %s\nКоммит:     %s",
		r.Version, r.Date, r.Commit)

	return renderPage(titleStyle.Render("О ПРОГРАММЕ"), body, "esc: назад")
}

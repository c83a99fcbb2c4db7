// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"io/fs"
	"strings"
)

// humanizeStoreError turns a field document failure into a message for the
// error overlay. Unknown errors are shown as is.
func humanizeStoreError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, fs.ErrPermission) {
		return "Нет доступа к файлу полей"
	}

	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "no space left on device"):
		return "Недостаточно места на диске"
	case strings.Contains(s, "read-only file system"):
		return "Файловая система доступна только для чтения"
	case strings.Contains(s, "no such file or directory"):
		return "Каталог файла полей не найден"
	}

	return err.Error()
}

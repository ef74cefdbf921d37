package tui

import (
	"path/filepath"
	"strings"
)

// genericIcon is used for extensions missing from the table.
const genericIcon = ""

// iconTable maps a file extension to its Nerd Font glyph. The table is the
// single source of truth for file-type icons; rendering never branches on
// extensions anywhere else.
var iconTable = map[string]string{
	".go":   "",
	".ts":   "",
	".tsx":  "",
	".js":   "",
	".jsx":  "",
	".py":   "",
	".rs":   "",
	".rb":   "",
	".c":    "",
	".h":    "",
	".cpp":  "",
	".sh":   "",
	".md":   "",
	".json": "",
	".yml":  "",
	".yaml": "",
	".toml": "",
	".html": "",
	".css":  "",
	".sql":  "",
	".lock": "",
	".mod":  "",
	".sum":  "",
}

// fileIcon returns the glyph for a filename, keyed purely on its
// lowercased extension.
func fileIcon(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if icon, ok := iconTable[ext]; ok {
		return icon
	}
	return genericIcon
}

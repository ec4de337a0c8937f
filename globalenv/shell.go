// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package globalenv

import "strings"

const (
	// ProfileFile is the startup file the file-based store appends to, and
	// the config file of any shell not listed in [ShellConfigFile].
	ProfileFile = ".profile"

	// DefaultShell is assumed when $SHELL is unset.
	DefaultShell = "bash"
)

var shellConfigFiles = map[string]string{
	"bash": ".bashrc",
	"zsh":  ".zshrc",
	"fish": ".config/fish/config.fish",
	"ksh":  ".kshrc",
	"tcsh": ".tcshrc",
	"csh":  ".cshrc",
}

// ShellConfigFile returns the startup file for shell, relative to the home
// directory. Matching is exact and case-sensitive; unknown shells map to
// [ProfileFile].
func ShellConfigFile(shell string) string {
	if file, ok := shellConfigFiles[shell]; ok {
		return file
	}
	return ProfileFile
}

// ShellFromPath returns the shell name from a $SHELL value such as
// "/usr/bin/zsh". An empty value yields [DefaultShell].
func ShellFromPath(shellPath string) string {
	if shellPath == "" {
		return DefaultShell
	}
	if i := strings.LastIndexAny(shellPath, `/\`); i >= 0 {
		return shellPath[i+1:]
	}
	return shellPath
}

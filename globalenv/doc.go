// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package globalenv persists environment variables beyond the current process.

A "global" environment variable is one that future shells and processes
inherit. [Set] writes the variable to the platform's persistent store and then
to the current process environment, so it is visible immediately. [Get] reads
the current process environment first and falls back to the persistent store.

# Persistent Stores

  - Windows: the per-user HKCU\Environment registry key. Lookups also consult
    the machine-wide Session Manager\Environment key, which is never written.
    After a write, WM_SETTINGCHANGE is broadcast so Explorer and other
    top-level windows reload their environment.
  - Everything else: ~/.profile, appended to with one export line per call.
    Lookups read the startup file of the shell named by $SHELL (see
    [ShellConfigFile]) and then ~/.profile.

# Basic Usage

	if err := globalenv.Set("MY_TOOL_HOME", "/opt/mytool"); err != nil {
		return err
	}
	home, ok := globalenv.Get("MY_TOOL_HOME")

# Testing

Build a [Manager] with an isolated process table and an in-memory or
temp-directory store:

	m := globalenv.New(
		globalenv.WithProcessEnv(env.NewMapEnv(nil)),
		globalenv.WithStore(globalenv.NewMemoryStore()),
	)

A gomock mock of [Store] is available in the mocks sub-package.

# Caveats

The store write and the process environment write are not transactional.
Repeated calls on the file-based store accumulate duplicate lines and lookups
return the first matching line, not the most recent one. Values containing
double quotes are written verbatim and do not round-trip through the file.
*/
package globalenv

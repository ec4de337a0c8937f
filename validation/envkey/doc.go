// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package envkey provides validation for environment variable keys.

Keys are passed through literally to the process environment, the registry
and shell startup files. The only rules enforced are the ones the process
environment itself imposes; case is never normalized.

# Key Validation

	if err := envkey.ValidateKey("MY_TOOL_HOME"); err != nil {
		// Handle invalid key
	}

Valid keys must:
  - Be non-empty
  - Not contain '='
  - Not contain null bytes

# Examples

Valid keys:

	"PATH"
	"my_tool_home"
	"Program Files Dir"

Invalid keys:

	""          // empty
	"A=B"       // contains '='
	"A\x00B"    // null byte
*/
package envkey

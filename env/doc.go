// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env is the single narrow accessor for the process environment table.

Every read and write of the running process's environment made by globalenv
goes through the [Reader] and [Writer] interfaces defined here, so tests can
substitute an isolated table instead of mutating the real one.

# Basic Usage

Use OSEnv to access the real process environment via the os package:

	var procEnv env.ReadWriter = &env.OSEnv{}
	_ = procEnv.Setenv("MY_VAR", "value")
	value, ok := procEnv.LookupEnv("MY_VAR")

# Testing

MapEnv is an in-memory table that never touches the real environment:

	procEnv := env.NewMapEnv(map[string]string{"SHELL": "/bin/bash"})
	procEnv.Unsetenv("MY_VAR") // simulate a fresh process

Generated gomock mocks are available in the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("HOME").Return("/home/test")

# Concurrency

The real process environment is shared, unsynchronized state. Concurrent
Setenv and LookupEnv calls through OSEnv must be serialized by the caller.
MapEnv is safe for concurrent use.
*/
package env

/*
Package logger provides leveled logging for command-line tools and scripts
as a drop-in replacement for ad-hoc print statements.

# Overview

Five levels are available, from least to most severe:
Debug, Info, Warning, Error and Critical.
Each is exposed both as a package-level function using the default [Logger]
and as a method on [*Logger]:

	logger.Info("starting", os.Args[0])
	logger.Warning("retrying in", delay)

Every call writes one line to the console and,
when a file is configured, the same line without color to that file.
Values are stringified with [fmt.Sprint] and joined with single spaces.

Here's an example of a line:

	[WARN] retrying in 2s

# Setup

The default Logger needs no setup: the first call initializes it with [DefaultConfig],
which logs to the console and to kellog.log in the temp directory, emptied on first use.
[Setup] replaces that configuration entirely:

	err := logger.Setup(logger.NewConfig(
		logger.WithName("app"),
		logger.WithFile("app.log"),
		logger.WithReset(true),
	))

A file that cannot be opened is an error; the Logger never silently falls back to the console alone.

# Name inference

When a single value is logged, the Logger looks up the call in the caller's source
and labels the value with the expression passed in:

	retries := 3
	logger.Debug(retries) // [DEBG] retries = 3

Literals and fmt calls are not labeled, nor are calls with several values.
Inference is best effort: without the source files at hand, values are not labeled.
Wrappers around level methods declare their extra frames with [*Logger.AddSkip].
*/
package logger

/*
Package revision reports the source-control revision a program runs from.

	revision.Report(ctx, logger.Info)

writes

	[INFO] Git revision: 1a2b3c4

When git fails, its output is logged at the error level instead.
Report never returns an error: it is a best-effort note at the top of a log.
*/
package revision

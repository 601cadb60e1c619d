/*
Package arguments records the command line a program was started with.

Dump echoes every flag of a parsed pflag.FlagSet through a log function
and saves them as a JSON object, in the order the flags were defined:

	[INFO] Main program: ./report
	[INFO] Arguments:
	[INFO]   input: data.csv
	[INFO]   verbose: true

Failures to save the file are logged at the error level and never returned.
*/
package arguments

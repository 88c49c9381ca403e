/*
Package report provides the ports.Reporter implementations used by the CLI.

The text reporter reproduces the classic checker output:

	abc: Accepted
	abd: Rejected
	Passed tests for file: 1 out of 2

The JSON reporter emits the same events as newline-delimited JSON objects.
*/
package report

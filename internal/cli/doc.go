// Package cli implements the sysgauge command-line interface.
//
// There is a single cobra root command with no subcommands. Running it
// checks that stdin and stdout are terminals, loads config, points log
// output away from the screen, and hands the terminal to the Bubble Tea
// dashboard in the monitor package until the user presses q.
//
// Fatal errors are returned as *errors.Error values with a code:
//
//	TERMINAL  stdin or stdout is not a TTY
//	CONFIG    the diagnostics environment is unusable
//	INPUT     reading keys from the terminal failed
//	RENDER    drawing failed or the program crashed
//
// Bubble Tea restores the terminal before Run returns, so Execute can print
// the error to stderr and exit 1.
package cli

// Package cli turns command-line arguments into an app.Config.
//
//	mazesolver [options] <input_file> <dfs|bfs> [output_file]
//
// Flags override the defaults resolved by the config package. Errors are
// returned as *ExitError carrying the process exit code.
package cli

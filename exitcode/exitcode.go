package exitcode

// An Exitcode is the process exit status of the bm command.
type Exitcode int

// Success and InvalidCommandLineArguments keep the par2cmdline
// values.
const (
	Success                     Exitcode = 0
	InvalidCommandLineArguments Exitcode = 3
	InvalidSequence             Exitcode = 9
)

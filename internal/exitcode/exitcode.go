package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	CleanError      = 3
	WriteError      = 4
)

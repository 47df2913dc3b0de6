package scanner

// SkipReason says why a candidate file was left out of the manifest.
type SkipReason int

const (
	// SkipNone marks a file that was included.
	SkipNone SkipReason = iota
	// SkipUnrecognized marks a file whose extension no language claims.
	SkipUnrecognized
	// SkipSelf marks a file belonging to the tool itself.
	SkipSelf
	// SkipReadError marks a file that could not be read.
	SkipReadError
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "included"
	case SkipUnrecognized:
		return "unrecognized extension"
	case SkipSelf:
		return "self"
	case SkipReadError:
		return "read error"
	}
	return "unknown"
}

// Outcome records the fate of one regular file seen during the walk.
// Skipped files never abort the run and never reach the manifest; keeping
// the reason around lets callers and tests observe the silent-skip policy.
type Outcome struct {
	Path   string
	Reason SkipReason
	Err    error // underlying error when Reason is SkipReadError
}

// Included reports whether the file made it into a bucket.
func (o Outcome) Included() bool { return o.Reason == SkipNone }

package gate

// Decision is the outcome of one gate evaluation. It starts Unknown and
// moves exactly once to Granted or Denied.
type Decision int32

const (
	Unknown Decision = iota
	Granted
	Denied
)

func (d Decision) String() string {
	switch d {
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	default:
		return "unknown"
	}
}

// Final reports whether d is a terminal decision.
func (d Decision) Final() bool {
	return d == Granted || d == Denied
}

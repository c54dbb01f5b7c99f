package ledger

// Stats counts the outcome of every event handed to Apply.
type Stats struct {
	Applied  int
	Rejected int
	// ByReason breaks Rejected down by Reason label.
	ByReason map[string]int
}

func newStats() Stats {
	return Stats{ByReason: make(map[string]int)}
}

func (s *Stats) reject(err error) {
	s.Rejected++
	s.ByReason[Reason(err)]++
}

func (s Stats) clone() Stats {
	out := Stats{
		Applied:  s.Applied,
		Rejected: s.Rejected,
		ByReason: make(map[string]int, len(s.ByReason)),
	}
	for reason, n := range s.ByReason {
		out.ByReason[reason] = n
	}
	return out
}

package randseq

// SelectRandom lets the tests poke at the cumulative table.
func (m *Model) SelectRandom(r float64) byte { return m.selectRandom(r) }

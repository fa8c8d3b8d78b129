package crypto

// Zero overwrites a byte slice with zeros to clear sensitive material from
// memory. Safe to call on nil slices.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

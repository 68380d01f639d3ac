package filter

// flagSet is a growable bitset indexed by term position
type flagSet []uint64

func (f flagSet) has(i int) bool {
	w := i / 64
	if w >= len(f) {
		return false
	}
	return f[w]&(1<<(uint(i)%64)) != 0
}

func (f *flagSet) set(i int) {
	w := i / 64
	for len(*f) <= w {
		*f = append(*f, 0)
	}
	(*f)[w] |= 1 << (uint(i) % 64)
}

// copyFrom overwrites f with src, reusing f's storage
func (f *flagSet) copyFrom(src flagSet) {
	*f = append((*f)[:0], src...)
}

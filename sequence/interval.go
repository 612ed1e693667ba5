package sequence

// interval represents a closed interval of ranks. The ranks of an enumeration
// of semilength n always form the interval [0, Catalan(n)-1], which is never
// empty since Catalan(n) is at least 1.
type interval struct {
	start uint64
	end   uint64
}

// intersect returns the intersection with the closed interval y. If no
// intersection is found, the second value returned by the method
// is false.
func (x interval) intersect(y interval) (interval, bool) {
	if x.start <= y.start {
		if x.end >= y.end {
			return y, true
		}
		if x.end >= y.start {
			return interval{start: y.start, end: x.end}, true
		}
	} else if x.start <= y.end {
		if x.end >= y.end {
			return interval{start: x.start, end: y.end}, true
		}
		return x, true
	}
	return interval{}, false
}

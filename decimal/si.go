package decimal

// prefixes maps engineering exponents to SI prefixes.
var prefixes = map[int]string{
	24:  "Y",
	21:  "Z",
	18:  "E",
	15:  "P",
	12:  "T",
	9:   "G",
	6:   "M",
	3:   "k",
	0:   "",
	-3:  "m",
	-6:  "µ",
	-9:  "n",
	-12: "p",
	-15: "f",
	-18: "a",
	-21: "z",
	-24: "y",
}

// Prefix returns the SI prefix for a power of ten. Only multiples of 3
// between -24 and 24 have one.
func Prefix(exponent int) (string, bool) {
	p, ok := prefixes[exponent]

	return p, ok
}

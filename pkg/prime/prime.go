package prime

// IsPrime reports whether n is prime. Two and three are prime, anything
// below two and every other even number is not, the rest are checked
// by trial division using odd factors.
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n < 2 || n%2 == 0 {
		return false
	}
	for f := 3; f*f <= n; f += 2 {
		if n%f == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest odd prime >= n. Even values are bumped
// up by one before searching, so 2 is never returned (2 yields 3).
func NextPrime(n int) int {
	if n%2 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}
	return n
}

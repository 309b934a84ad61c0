package prime

// Primality - Tri-state result from IsPrime
type Primality int

const (
	// Undefined - Primality is meaningless for numbers below 2
	Undefined Primality = iota - 1
	// NotPrime - The number has a divisor other than 1 and itself
	NotPrime
	// Prime - The number is a prime
	Prime
)

// IsPrime - Checks primality of n using trial division up to the square root of n.
// Numbers below 2 returns Undefined.
func IsPrime(n int64) Primality {
	if n < 2 {
		return Undefined
	}
	if n < 4 {
		return Prime
	}
	if n%2 == 0 || n%3 == 0 {
		return NotPrime
	}

	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return NotPrime
		}
	}

	return Prime
}

// NextPrime - Returns the smallest prime that is greater than or equal to n, anything below 2 gives 2
func NextPrime(n int64) int64 {
	if n < 2 {
		return 2
	}

	for IsPrime(n) != Prime {
		n++
	}

	return n
}

package hash

// polynomialHash - Polynomial hash over the bytes in key, sum(coefficient^(len-1-i) * key[i]) mod modulus.
// Horner's rule keeps every intermediate value below coefficient * modulus + 255.
func polynomialHash(key []byte, coefficient, modulus int64) int64 {
	var h int64
	for _, b := range key {
		h = (h*coefficient + int64(b)) % modulus
	}

	return h
}

// probe - Double hashing probe, (hf1 + iteration * (hf2 + 1)) mod tableSize.
// The iteration is reduced first since the sequence repeats every tableSize iterations anyway.
func probe(hf1Value, hf2Value, iteration, tableSize int64) int64 {
	return (hf1Value + (iteration%tableSize)*(hf2Value+1)) % tableSize
}

package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// TableFull - Custom error to inform that a probe walk could not find any slot to place a record in
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "hash table full"
	}
	return E.msg
}

// OutOfMemory - Custom error to inform that backing storage of the requested size can not be allocated
type OutOfMemory struct {
	msg string
}

// Error - Used to notify that the backing storage could not be allocated
func (O OutOfMemory) Error() string {
	if O.msg == "" {
		return "out of memory"
	}
	return O.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probing algorithm was exhausted
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

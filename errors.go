package hashtable

import "github.com/gostonefire/hashtable/crt"

// NoRecordFound - Returned by Search and Pop when the key is not in the hash table
type NoRecordFound = crt.NoRecordFound

// OutOfMemory - Returned when backing storage of the requested size can not be allocated
type OutOfMemory = crt.OutOfMemory

package conf

// InitialBaseSize - Base size of a newly created hash table, also the floor below which it never shrinks
const InitialBaseSize int64 = 53

// HashPrime1 - Coefficient of the polynomial hash giving the home slot
const HashPrime1 int64 = 151

// HashPrime2 - Coefficient of the polynomial hash giving the probe step
const HashPrime2 int64 = 163

// ShrinkLoadFactor - Load factor in percent below which a delete halves the base size
const ShrinkLoadFactor int64 = 25

// MaxBaseSize - Largest base size a hash table may grow to, keeps probe arithmetic within int64
const MaxBaseSize int64 = 1 << 30

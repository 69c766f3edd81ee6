package conf

// DefaultCapacity - Number of buckets used when no initial capacity is given
const DefaultCapacity int64 = 16

// LoadFactorThreshold - Ratio of records to buckets at which the bucket table is doubled
const LoadFactorThreshold float64 = 0.75

// MaximumCapacity - Upper bound of the bucket table length, the table never grows beyond it
const MaximumCapacity int64 = 1 << 30

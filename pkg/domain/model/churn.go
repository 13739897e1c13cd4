package model

import "strconv"

// DefaultChurnRate is the churn rate shown until a real source is wired in.
const DefaultChurnRate ChurnRate = 15.5

// ChurnRate is a churn percentage, e.g. 15.5 means 15.5%.
// No range is enforced; negative or >100 values pass through untouched.
type ChurnRate float64

// String returns the shortest decimal form of the rate without exponent.
// 15.5 -> "15.5", 15.0 -> "15".
func (r ChurnRate) String() string {
	return strconv.FormatFloat(float64(r), 'f', -1, 64)
}

// Float64 returns the raw value
func (r ChurnRate) Float64() float64 {
	return float64(r)
}

package conv

import (
	"fmt"
	"math"
)

// Int64ToUint32 converts int64 to uint32 safely.
func Int64ToUint32(v int64) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

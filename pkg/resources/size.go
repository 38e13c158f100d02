package resources

import "fmt"

// HumanBytes renders a byte count with 1024-based units: whole bytes below
// 1KB, one decimal place above. An exact power of 1024 promotes to the
// larger unit (1024 is "1.0KB", not "1024B").
func HumanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}

	val := float64(n)
	for _, suffix := range []string{"KB", "MB", "GB", "TB"} {
		val /= unit
		if val < unit {
			return fmt.Sprintf("%.1f%s", val, suffix)
		}
	}
	return fmt.Sprintf("%.1fPB", val/unit)
}

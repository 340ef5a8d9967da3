package domain

import "time"

// EffectiveTypeForRTT maps a measured round trip to the effective connection
// type, using the NetworkInformation RTT boundaries.
func EffectiveTypeForRTT(rtt time.Duration) EffectiveType {
	switch {
	case rtt <= 0:
		return NetworkUnknown
	case rtt >= 2000*time.Millisecond:
		return NetworkSlow2G
	case rtt >= 1400*time.Millisecond:
		return Network2G
	case rtt >= 270*time.Millisecond:
		return Network3G
	default:
		return Network4G
	}
}

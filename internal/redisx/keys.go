package redisx

import "time"

const (
	// One-time login codes: otp:{email} -> 6-digit code
	KeyOTP = "otp:%s"

	// Cached admin stats snapshots: stats:{name} -> response JSON
	KeyStats = "stats:%s"
)

var (
	TTLOTP   = 5 * time.Minute
	TTLStats = 30 * time.Second
)

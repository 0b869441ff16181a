package webhook

// SecurityConfig holds webhook security settings.
type SecurityConfig struct {
	Secret          string // shared secret; empty disables signature verification
	RateLimitPerMin int    // max requests per minute per source
}

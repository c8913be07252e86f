// Package ratelimiter provides an in-memory token-bucket limiter and an HTTP
// middleware around it.
//
// Each key (usually the client IP) owns a bucket holding up to Capacity
// tokens; RefillRate tokens are added every RefillInterval. A request spends
// one token and is rejected once the bucket is empty.
//
//	l, err := ratelimiter.New(ratelimiter.Config{Capacity: 5, RefillRate: 1, RefillInterval: time.Minute})
//	if err != nil {
//		return err
//	}
//	defer l.Close()
//	r.With(ratelimiter.Middleware(l, ratelimiter.ClientIP, onLimited)).Post("/test-email", h)
//
// Idle buckets are dropped by a background sweep; call Close to stop it.
package ratelimiter

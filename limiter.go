package main

import "time"

// FrameLimiter paces a capture loop to a desired frame rate.
type FrameLimiter struct {
	ticker *time.Ticker
}

func NewFrameLimiter(desiredFps int) *FrameLimiter {
	return &FrameLimiter{
		ticker: time.NewTicker(time.Second / time.Duration(desiredFps)),
	}
}

// Wait blocks until the next frame slot.
func (l *FrameLimiter) Wait() {
	<-l.ticker.C
}

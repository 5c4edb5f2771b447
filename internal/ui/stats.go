package ui

import "sync/atomic"

type Stats struct {
	TotalChapters atomic.Int64
	TotalImages   atomic.Int64
}

// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import "github.com/pterm/pterm"

// Option configures a Terminal.
type Option func(*options)

type options struct {
	logger         *pterm.Logger
	fallbackWidth  int
	fallbackHeight int
}

func defaultOptions() options {
	return options{
		logger:         discardLogger(),
		fallbackWidth:  80,
		fallbackHeight: 24,
	}
}

// WithLogger sets the logger used to report failed operations.
// A nil logger disables logging.
func WithLogger(l *pterm.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// WithFallbackSize sets the size SizeOrDefault reports when the real size
// cannot be queried. Non-positive values are ignored.
func WithFallbackSize(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.fallbackWidth = width
		}
		if height > 0 {
			o.fallbackHeight = height
		}
	}
}

package render

import "github.com/gogpu/plot/text"

// RecorderOption configures a Recorder.
type RecorderOption func(*recorderConfig)

// recorderConfig holds configuration for Recorder.
type recorderConfig struct {
	arranger *text.Arranger
	culling  bool
}

// defaultRecorderConfig returns the default recorder configuration.
func defaultRecorderConfig() recorderConfig {
	return recorderConfig{
		culling: true,
	}
}

// WithArranger sets the arranger used for DrawText and MeasureText, for
// example one configured with a custom trimmer. By default the recorder
// creates an arranger over its measurer.
func WithArranger(a *text.Arranger) RecorderOption {
	return func(c *recorderConfig) {
		c.arranger = a
	}
}

// WithCulling controls whether draw calls outside the clip are dropped.
// Culling is enabled by default.
func WithCulling(enabled bool) RecorderOption {
	return func(c *recorderConfig) {
		c.culling = enabled
	}
}

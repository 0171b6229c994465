package cmd

import (
	"github.com/grovetools/sticky/config"
	"github.com/grovetools/sticky/errors"
	"github.com/spf13/cobra"
)

// addStickyFlags registers the flags that override the sticky section of
// the configuration.
func addStickyFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool("relative", false, "Measure headers against the window instead of the viewport")
	f.Float64("top-offset", 0, "Rows past the top edge before a header sticks")
	f.Float64("bottom-offset", 0, "Rows before a section's end at which its header releases")
	f.Bool("no-compensation", false, "Let content jump up instead of reserving the header's rows")
	f.Bool("no-hw-accel", false, "Omit the compositing hint from stuck styles")
	f.String("frame-interval", "", "Minimum time between geometry passes (Go duration)")
}

// applyStickyFlags copies explicitly set flags over cfg.
func applyStickyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("relative") {
		cfg.Sticky.Relative, _ = f.GetBool("relative")
	}
	if f.Changed("top-offset") {
		cfg.Sticky.TopOffset, _ = f.GetFloat64("top-offset")
	}
	if f.Changed("bottom-offset") {
		cfg.Sticky.BottomOffset, _ = f.GetFloat64("bottom-offset")
	}
	if f.Changed("no-compensation") {
		cfg.Sticky.DisableCompensation, _ = f.GetBool("no-compensation")
	}
	if f.Changed("no-hw-accel") {
		cfg.Sticky.DisableHardwareAcceleration, _ = f.GetBool("no-hw-accel")
	}
	if f.Changed("frame-interval") {
		cfg.Frame.Interval, _ = f.GetString("frame-interval")
	}
	return cfg.Validate()
}

// applyViewFlags copies the document flags of the view command over cfg.
func applyViewFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("heading-level") {
		level, _ := f.GetInt("heading-level")
		if level < 1 || level > 6 {
			return errors.InvalidInput("heading_level", level, "must be between 1 and 6")
		}
		cfg.View.HeadingLevel = level
	}
	if f.Changed("include") {
		cfg.View.Include, _ = f.GetStringSlice("include")
	}
	if f.Changed("exclude") {
		cfg.View.Exclude, _ = f.GetStringSlice("exclude")
	}
	if f.Changed("follow") {
		cfg.View.Follow, _ = f.GetBool("follow")
	}
	return nil
}

package timeline

import (
	"fmt"
	"time"
)

// ConnectorMode selects how connector segments pick their second endpoint.
type ConnectorMode string

const (
	// ConnectorChain joins every point to the point computed before it.
	ConnectorChain ConnectorMode = "chain"
	// ConnectorConverge joins every point to the last point of the render list.
	ConnectorConverge ConnectorMode = "converge"
)

// Drawing defaults.
const (
	DefaultViewport       = 1280
	ViewportInset         = 50
	DefaultHeight         = 100
	DefaultRadius         = 4
	DefaultLineWidth      = 2
	DefaultFontSize       = 12
	DefaultTooltipOffset  = 20
	DefaultTransition     = 100 * time.Millisecond
	DefaultLabelFormat    = "%b %d, %Y %H:%M:%S"
	DefaultAxisFormat     = "%b %d %Y"
	DefaultPanelFormat    = "%A %b %d, %Y at %H:%M:%S %p"
	HoverScale            = 1.5
	TooltipOpacity        = 0.9
	DefaultColor          = "black"
	DefaultBackground     = "white"
	DefaultConnectorMode  = ConnectorChain
	defaultTimezoneMarker = "Local"
)

// Config represents the drawing configuration for a timeline.
// Only Width, Radius and LineWidth feed the layout math; every other field
// affects how surfaces style and format the result.
type Config struct {
	Height          float64       `mapstructure:"height" yaml:"height" json:"height"`                                // Drawing height
	Width           float64       `mapstructure:"width" yaml:"width" json:"width"`                                   // Drawing width, usually viewport minus ViewportInset
	Radius          float64       `mapstructure:"radius" yaml:"radius" json:"radius"`                                // Base marker radius
	LineWidth       float64       `mapstructure:"line-width" yaml:"line-width" json:"lineWidth"`                     // Connector and marker stroke width
	Color           string        `mapstructure:"color" yaml:"color" json:"color"`                                   // Foreground: strokes and hovered fill
	Background      string        `mapstructure:"background" yaml:"background" json:"background"`                   // Idle marker fill
	LabelDateFormat string        `mapstructure:"label-date-format" yaml:"label-date-format" json:"labelDateFormat"` // Tooltip date pattern (strftime)
	AxisDateFormat  string        `mapstructure:"axis-date-format" yaml:"axis-date-format" json:"axisDateFormat"`    // Start/end label pattern (strftime)
	PanelDateFormat string        `mapstructure:"panel-date-format" yaml:"panel-date-format" json:"panelDateFormat"` // Side panel pattern (strftime)
	FontSize        float64       `mapstructure:"font-size" yaml:"font-size" json:"fontSize"`                        // Label font size used for text estimates
	Connector       ConnectorMode `mapstructure:"connector" yaml:"connector" json:"connector"`                       // chain or converge
	TooltipOffset   float64       `mapstructure:"tooltip-offset" yaml:"tooltip-offset" json:"tooltipOffset"`         // Horizontal cursor offset of the tooltip
	Transition      time.Duration `mapstructure:"transition" yaml:"transition" json:"transition"`                    // Hover fade/grow duration
	Timezone        string        `mapstructure:"timezone" yaml:"timezone" json:"timezone"`                          // IANA zone for formatting, "Local" or empty for local time
}

// DefaultConfig returns the configuration used when nothing else is specified.
// The drawing width is derived from the viewport the same way a browser page
// would size it: viewport minus a fixed inset.
func DefaultConfig(viewport float64) Config {
	return Config{
		Height:          DefaultHeight,
		Width:           WidthForViewport(viewport),
		Radius:          DefaultRadius,
		LineWidth:       DefaultLineWidth,
		Color:           DefaultColor,
		Background:      DefaultBackground,
		LabelDateFormat: DefaultLabelFormat,
		AxisDateFormat:  DefaultAxisFormat,
		PanelDateFormat: DefaultPanelFormat,
		FontSize:        DefaultFontSize,
		Connector:       DefaultConnectorMode,
		TooltipOffset:   DefaultTooltipOffset,
		Transition:      DefaultTransition,
		Timezone:        defaultTimezoneMarker,
	}
}

// WidthForViewport returns the drawing width for a viewport width.
func WidthForViewport(viewport float64) float64 {
	return viewport - ViewportInset
}

// Margin returns the pixel inset reserved at both ends of the axis.
func (c Config) Margin() float64 {
	return c.Radius*HoverScale + c.LineWidth
}

// Validate checks that the configuration can produce a layout.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %v", ErrInvalidConfig, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %v", ErrInvalidConfig, c.Height)
	case c.Radius < 0:
		return fmt.Errorf("%w: radius must not be negative, got %v", ErrInvalidConfig, c.Radius)
	case c.LineWidth < 0:
		return fmt.Errorf("%w: line width must not be negative, got %v", ErrInvalidConfig, c.LineWidth)
	case c.Width < 2*c.Margin():
		return fmt.Errorf("%w: width %v leaves no room inside margins of %v", ErrInvalidConfig, c.Width, c.Margin())
	}

	switch c.Connector {
	case "", ConnectorChain, ConnectorConverge:
	default:
		return fmt.Errorf("%w: unknown connector mode %q", ErrInvalidConfig, c.Connector)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Location resolves Timezone. Empty and "Local" mean the process local zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == defaultTimezoneMarker {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c Config) connector() ConnectorMode {
	if c.Connector == "" {
		return DefaultConnectorMode
	}
	return c.Connector
}

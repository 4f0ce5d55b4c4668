// Package widget resolves palettes and role parameters into concrete style descriptors
// for interactive controls: buttons, chips and badges.
//
// Every resolver is a pure function of its explicit inputs. Descriptors are
// plain values holding no references back to the palette, so they are safe to
// compare, serialize, or hand to any rendering layer. Unknown enumeration
// values are never rejected; they fall through to documented defaults so a
// malformed theme value can not fail the render path.
package widget

// ContainerStyle describes the sizing and surface of a control's container.
type ContainerStyle struct {
	Height            int    `json:"height"`
	PaddingHorizontal int    `json:"paddingHorizontal"`
	Radius            int    `json:"radius"`
	Background        string `json:"backgroundColor"`
	BorderWidth       int    `json:"borderWidth"`
	BorderColor       string `json:"borderColor,omitempty"`
}

// TextStyle describes the typography of a control's label.
type TextStyle struct {
	Size   int    `json:"fontSize"`
	Weight string `json:"fontWeight"`
	Color  string `json:"color"`
}

// StyleDescriptor is the immutable container/text pair consumed by the
// rendering layer.
type StyleDescriptor struct {
	Container ContainerStyle `json:"container"`
	Text      TextStyle      `json:"text"`
}

// BadgeVisuals is the narrower output for non-sized badge and indicator
// elements: surface colors plus a touch-feedback ripple tint.
type BadgeVisuals struct {
	Background string `json:"backgroundColor"`
	Border     string `json:"borderColor"`
	Text       string `json:"textColor"`
	Ripple     string `json:"rippleColor"`
}

// Metrics is a fixed sizing record shared by the per-size tables.
type Metrics struct {
	Height            int `json:"height"`
	PaddingHorizontal int `json:"paddingHorizontal"`
	Radius            int `json:"radius"`
	TextSize          int `json:"textSize"`
}

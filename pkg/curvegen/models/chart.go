package models

// ChartSeries represents one curve column plotted on the export chart.
type ChartSeries struct {
	// Name is the series display name (the curve name).
	Name string `json:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for the date categories.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for the values.
	YRange string `json:"y_range,omitempty"`
}

package templates

// SiteOption is one entry of the launch site dropdown.
type SiteOption struct {
	Label    string
	Value    string
	Selected bool
}

// SliderState describes the payload range slider.
type SliderState struct {
	Min   float64
	Max   float64
	Step  float64
	Lo    float64
	Hi    float64
	Marks []float64
}

// ChartPanel is a rendered chart and the element id it is mounted under.
type ChartPanel struct {
	ID    string
	Title string
	SVG   []byte
	Error string // set instead of SVG when the chart could not be built
}

// DashboardPage is the view model of the full page.
type DashboardPage struct {
	Heading     string
	Placeholder string
	SliderLabel string
	Sites       []SiteOption
	Slider      SliderState
	Pie         ChartPanel
	Scatter     ChartPanel
}

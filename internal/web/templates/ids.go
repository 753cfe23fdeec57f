package templates

import "github.com/a-h/templ"

// Element ids the page and its fragments agree on.
const (
	SiteDropdownID  = "site-dropdown"
	PieChartID      = "success-pie-chart"
	PayloadSliderID = "payload-slider"
	ScatterChartID  = "success-payload-scatter-chart"
)

// htmx wiring: the pie follows the dropdown, the scatter the whole form.
var (
	pieAttrs = templ.Attributes{
		"hx-get":     "/charts/pie",
		"hx-trigger": "change from:#" + SiteDropdownID,
		"hx-include": "#" + SiteDropdownID,
		"hx-swap":    "innerHTML",
	}
	scatterAttrs = templ.Attributes{
		"hx-get":     "/charts/scatter",
		"hx-trigger": "change from:#filters",
		"hx-include": "#filters",
		"hx-swap":    "innerHTML",
	}
)

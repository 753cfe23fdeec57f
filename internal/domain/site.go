package domain

// AllSites is the site selection that disables the site filter.
const AllSites = "ALL"

// Launch sites offered by the site dropdown.
const (
	SiteCCAFSLC40  = "CCAFS LC-40"
	SiteVAFBSLC4E  = "VAFB SLC-4E"
	SiteKSCLC39A   = "KSC LC-39A"
	SiteCCAFSSLC40 = "CCAFS SLC-40"
)

// SiteOption is one dropdown entry.
type SiteOption struct {
	Label string
	Value string
}

// SiteOptions is the fixed dropdown option set, "All Sites" first.
var SiteOptions = []SiteOption{
	{Label: "All Sites", Value: AllSites},
	{Label: SiteCCAFSLC40, Value: SiteCCAFSLC40},
	{Label: SiteVAFBSLC4E, Value: SiteVAFBSLC4E},
	{Label: SiteKSCLC39A, Value: SiteKSCLC39A},
	{Label: SiteCCAFSSLC40, Value: SiteCCAFSSLC40},
}

// ValidateSite accepts AllSites, any dropdown site, and any site present in
// the dataset. Everything else is an InvalidSelectionError.
func (d *Dataset) ValidateSite(site string) error {
	if site == AllSites || d.HasSite(site) {
		return nil
	}
	for _, opt := range SiteOptions {
		if opt.Value == site {
			return nil
		}
	}
	return &InvalidSelectionError{Site: site}
}

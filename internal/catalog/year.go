package catalog

import "fmt"

// YearLocator returns the locator of the page covering a year of the war.
// It does not check that such a page exists; see ByYear.
func YearLocator(year int) string {
	return fmt.Sprintf("pages/%d.html", year)
}

// ByYear returns the page for year, if the catalog has one.
func (c *Catalog) ByYear(year int) (PageEntry, bool) {
	return c.ByLocator(YearLocator(year))
}

package dou

// SourceName tags every item with its origin feed.
const SourceName = "DOU"

// Item is one administrative act extracted from the gazette. All fields
// are normalized text; any of agency, title, summary and link may be
// empty, but never all of title, summary and link at once.
type Item struct {
	Source  string
	Date    string // DD/MM/YYYY
	Section string // upper-cased section code, e.g. "DO1"
	Agency  string
	Title   string
	Summary string
	Link    string
}

// SearchText is the blob keyword filtering and scoring run against.
func (it Item) SearchText() string {
	return it.Title + " " + it.Summary + " " + it.Agency
}

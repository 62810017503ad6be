package browser

// Browser owns an ordered list of Pages plus the index of the one
// currently active. The only way to obtain a Browser is through New,
// which seeds it with a single Page ready to receive a response.
type Browser struct {
	activePageIndex int
	pages           []*Page
}

// New creates a Browser with one Page.
func New() *Browser {
	b := &Browser{}
	b.pages = append(b.pages, newPage(b))
	return b
}

// CurrentPage returns the browser's active Page.
func (b *Browser) CurrentPage() *Page {
	return b.pages[b.activePageIndex]
}

package resources

import (
	"net/url"
	"strconv"

	"eventsapi/internal/domain"
)

// EventResource is an event's attributes plus its links.
// swagger:model EventResource
type EventResource struct {
	*domain.Event
	Links Links `json:"links"`
}

// PageMetadata describes the position of a page in the collection.
// swagger:model PageMetadata
type PageMetadata struct {
	Number        int `json:"number"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// PagedResource is a page of event resources with navigation links.
// swagger:model PagedResource
type PagedResource struct {
	Items []*EventResource `json:"items"`
	Page  PageMetadata     `json:"page"`
	Links Links            `json:"links"`
}

// Builder builds links rooted at BaseURL (scheme and host, no trailing slash).
// An empty BaseURL produces root-relative links.
type Builder struct {
	BaseURL string
}

// NewBuilder returns a Builder for baseURL.
func NewBuilder(baseURL string) Builder {
	return Builder{BaseURL: baseURL}
}

func (b Builder) link(rel, path string) Link {
	return Link{Rel: rel, Href: b.BaseURL + path}
}

// SelfURI is the absolute URI of the event's single-resource route.
func (b Builder) SelfURI(e *domain.Event) string {
	return b.BaseURL + EventPath(e.ID)
}

// Represent wraps e with its self link only.
func (b Builder) Represent(e *domain.Event) *EventResource {
	return &EventResource{
		Event: e,
		Links: Links{b.link(RelSelf, EventPath(e.ID))},
	}
}

// ForGet is the representation returned by a single-resource fetch.
func (b Builder) ForGet(e *domain.Event) *EventResource {
	res := b.Represent(e)
	res.Links = append(res.Links, b.link(RelProfile, ProfileGet))
	return res
}

// ForCreate is the representation returned after creation. It points at the collection
// and at the route to use for future updates.
func (b Builder) ForCreate(e *domain.Event) *EventResource {
	res := b.Represent(e)
	res.Links = append(res.Links,
		b.link(RelQueryEvents, EventsPath),
		b.link(RelUpdateEvent, EventPath(e.ID)),
		b.link(RelProfile, ProfileCreate),
	)
	return res
}

// ForUpdate is the representation returned after an update.
func (b Builder) ForUpdate(e *domain.Event) *EventResource {
	res := b.Represent(e)
	res.Links = append(res.Links, b.link(RelProfile, ProfileUpdate))
	return res
}

// AssemblePage wraps every item of page with represent, in repository order, and adds
// collection navigation derived from the page metadata. sort is echoed into the
// navigation links verbatim; pass "" to omit it.
func (b Builder) AssemblePage(page *domain.EventPage, sort string, represent func(*domain.Event) *EventResource) *PagedResource {
	items := make([]*EventResource, 0, len(page.Items))
	for _, e := range page.Items {
		items = append(items, represent(e))
	}

	pageLink := func(rel string, number int) Link {
		q := url.Values{}
		q.Set("page", strconv.Itoa(number))
		q.Set("size", strconv.Itoa(page.Size))
		if sort != "" {
			q.Set("sort", sort)
		}
		return b.link(rel, EventsPath+"?"+q.Encode())
	}

	var links Links
	if page.TotalPages > 0 {
		links = append(links, pageLink(RelFirst, 0))
	}
	if !page.IsFirst() {
		// A page past the end points back at the last existing page.
		links = append(links, pageLink(RelPrev, min(page.Number-1, max(page.TotalPages-1, 0))))
	}
	links = append(links, pageLink(RelSelf, page.Number))
	if !page.IsLast() {
		links = append(links, pageLink(RelNext, page.Number+1))
	}
	if page.TotalPages > 0 {
		links = append(links, pageLink(RelLast, page.TotalPages-1))
	}
	links = append(links, b.link(RelProfile, ProfileList))

	return &PagedResource{
		Items: items,
		Page: PageMetadata{
			Number:        page.Number,
			Size:          page.Size,
			TotalElements: page.TotalElements,
			TotalPages:    page.TotalPages,
		},
		Links: links,
	}
}

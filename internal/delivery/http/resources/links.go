// Package resources builds the hypermedia representations returned by the events API.
package resources

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Link relation names.
const (
	RelSelf        = "self"
	RelProfile     = "profile"
	RelQueryEvents = "query-events"
	RelUpdateEvent = "update-event"
	RelFirst       = "first"
	RelPrev        = "prev"
	RelNext        = "next"
	RelLast        = "last"
)

// Route templates and documentation anchors.
const (
	EventsPath = "/api/events"

	ProfileList   = "/docs/index.html#resources-events-list"
	ProfileGet    = "/docs/index.html#resources-events-get"
	ProfileCreate = "/docs/index.html#resources-events-create"
	ProfileUpdate = "/docs/index.html#resources-events-update"
)

// EventPath returns the single-resource route for id.
func EventPath(id int64) string {
	return EventsPath + "/" + strconv.FormatInt(id, 10)
}

// Link is a named reference to a related operation or entity.
type Link struct {
	Rel  string
	Href string
}

// Links is an ordered set of links. It marshals to a JSON object keyed by relation,
// preserving insertion order: {"self":{"href":"..."}}.
type Links []Link

type href struct {
	Href string `json:"href"`
}

// Get returns the href for rel and whether it is present.
func (l Links) Get(rel string) (string, bool) {
	for _, link := range l {
		if link.Rel == rel {
			return link.Href, true
		}
	}
	return "", false
}

// Rels returns the relation names in order.
func (l Links) Rels() []string {
	rels := make([]string, 0, len(l))
	for _, link := range l {
		rels = append(rels, link.Rel)
	}
	return rels
}

func (l Links) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, link := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(link.Rel)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(href{Href: link.Href})
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (l *Links) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*l = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("links: expected object, got %v", tok)
	}
	out := Links{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		rel, _ := tok.(string)
		var h href
		if err := dec.Decode(&h); err != nil {
			return fmt.Errorf("links: %s: %w", rel, err)
		}
		out = append(out, Link{Rel: rel, Href: h.Href})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*l = out
	return nil
}

package sink

import (
	"fmt"
	"strings"

	"github.com/mediahook/catalog-notifier/internal/payload"
)

// headline renders a one-line human title for a payload, e.g.
//
//	"X S01E05 - The One With The Test"
//	"The Show Season 03"
//	"Some Movie"
func headline(p *payload.Payload) string {
	name := p.GetString("Name")
	series := p.GetString("SeriesName")
	if series == "" {
		return name
	}

	season := p.GetString("SeasonNumber00")
	episode := p.GetString("EpisodeNumber00")
	switch {
	case episode != "":
		return fmt.Sprintf("%s S%sE%s - %s", series, season, episode, name)
	case season != "":
		return fmt.Sprintf("%s Season %s", series, season)
	default:
		return fmt.Sprintf("%s - %s", series, name)
	}
}

// body renders a short multi-line description: item type, overview, and any
// provider references.
func body(p *payload.Payload) string {
	var b strings.Builder

	if t := p.GetString("ItemType"); t != "" {
		b.WriteString("Added to the library: ")
		b.WriteString(t)
	}
	if overview := p.GetString("Overview"); overview != "" {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(overview)
	}
	return b.String()
}

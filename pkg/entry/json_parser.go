package entry

import (
	"fmt"

	"github.com/mentordash/mentordash/pkg/roster"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// ParseJSON reads a JSON time-tracking export. Accepted shapes are either a
// top-level array of entry objects or an object with an "entries" array.
// Field names follow the JSON export of the tracking tool:
// project, user, email, group, start_date, end_date, duration_hours, tags.
func ParseJSON(data []byte, resolver roster.Resolver) ([]Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid json export")
	}

	root := gjson.ParseBytes(data)
	items := root
	if root.IsObject() {
		items = root.Get("entries")
	}
	if !items.IsArray() {
		return nil, fmt.Errorf("json export has no entries array")
	}

	var entries []Entry
	row := 0
	items.ForEach(func(_, item gjson.Result) bool {
		row++

		start, err := ParseDate(item.Get("start_date").String())
		if err != nil {
			log.Warnf("skipping json entry %d: %v", row, err)
			return true
		}
		end, err := ParseDate(item.Get("end_date").String())
		if err != nil {
			end = start
		}

		duration := item.Get("duration_hours").Float()
		if duration <= 0 {
			log.Debugf("skipping json entry %d: non-positive duration", row)
			return true
		}

		activity, category := ExtractTags(item.Get("tags").String())
		student := resolver.Resolve(item.Get("user").String(), item.Get("email").String())

		e := Entry{
			Project:       item.Get("project").String(),
			Student:       student,
			Team:          item.Get("group").String(),
			Start:         start,
			End:           end,
			DurationHours: duration,
			Activity:      activity,
			Category:      category,
			Description:   item.Get("description").String(),
		}
		entries = append(entries, e.NormalizeLabels())
		return true
	})

	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid time entries found")
	}
	log.Debugf("parsed %d entries from %d json items", len(entries), row)
	return entries, nil
}

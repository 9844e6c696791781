package models

import (
	"sort"
	"strings"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func normalizeTag(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// SortByName orders media alphabetically by name, case-insensitively.
func SortByName(media []Media) {
	sort.Slice(media, func(i, j int) bool {
		return strings.ToLower(media[i].Name()) < strings.ToLower(media[j].Name())
	})
}

// SortByDuration orders media shortest first.
func SortByDuration(media []Media) {
	sort.Slice(media, func(i, j int) bool {
		return media[i].Duration() < media[j].Duration()
	})
}

// SortByCreator orders media alphabetically by creator, case-insensitively.
func SortByCreator(media []Media) {
	sort.Slice(media, func(i, j int) bool {
		return strings.ToLower(media[i].Creator()) < strings.ToLower(media[j].Creator())
	})
}

// SortByTypeAndName orders media by variant, then by name.
func SortByTypeAndName(media []Media) {
	sort.Slice(media, func(i, j int) bool {
		if media[i].Type() != media[j].Type() {
			return media[i].Type() < media[j].Type()
		}
		return strings.ToLower(media[i].Name()) < strings.ToLower(media[j].Name())
	})
}

// SortPlaylistsBySize orders playlists largest first.
func SortPlaylistsBySize(playlists []*Playlist) {
	sort.Slice(playlists, func(i, j int) bool {
		return len(playlists[i].Items()) > len(playlists[j].Items())
	})
}

// Filter returns the media for which the predicate holds.
func Filter(media []Media, keep func(Media) bool) []Media {
	var out []Media
	for _, m := range media {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// FilterByType returns media of the given variant.
func FilterByType(media []Media, t MediaType) []Media {
	return Filter(media, func(m Media) bool { return m.Type() == t })
}

// FilterByCreator returns media by the given creator, case-insensitively.
func FilterByCreator(media []Media, creator string) []Media {
	return Filter(media, func(m Media) bool { return strings.EqualFold(m.Creator(), creator) })
}

// FilterByMinDuration returns media at least minDuration seconds long.
func FilterByMinDuration(media []Media, minDuration int) []Media {
	return Filter(media, func(m Media) bool { return m.Duration() >= minDuration })
}

// SearchByName returns media whose name contains the keyword,
// case-insensitively.
func SearchByName(media []Media, keyword string) []Media {
	needle := strings.ToLower(keyword)
	return Filter(media, func(m Media) bool {
		return strings.Contains(strings.ToLower(m.Name()), needle)
	})
}

// TotalDuration sums the durations of the given media in seconds.
func TotalDuration(media []Media) int {
	total := 0
	for _, m := range media {
		total += m.Duration()
	}
	return total
}

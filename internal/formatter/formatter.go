// package formatter provides functions to export catalog and playlist data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/quietgrove/jukebox/internal/models"
	"github.com/quietgrove/jukebox/internal/shared"
)

// mediaRecord renders one media entry as a CSV record with columns:
// ID, Name, Type, Creator, Duration, Detail.
func mediaRecord(m models.Media) []string {
	return []string{
		strconv.FormatInt(m.ID(), 10),
		m.Name(),
		string(m.Type()),
		m.Creator(),
		strconv.Itoa(m.Duration()),
		variantDetail(m),
	}
}

// variantDetail summarizes the variant-specific attributes of m.
func variantDetail(m models.Media) string {
	switch v := m.(type) {
	case *models.Song:
		return fmt.Sprintf("album=%s genre=%s price=%.2f", v.Album(), v.Genre(), v.Price())
	case *models.Podcast:
		return fmt.Sprintf("host=%s episode=%d category=%s", v.Host(), v.EpisodeNumber(), v.Category())
	default:
		return ""
	}
}

// ExportToCSV converts a media listing to CSV.
func ExportToCSV(media []models.Media) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Type", "Creator", "Duration", "Detail"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, m := range media {
		if err := writer.Write(mediaRecord(m)); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportPlaylistToCSV converts a playlist's member listing to CSV.
func ExportPlaylistToCSV(p *models.Playlist) ([]byte, error) {
	return ExportToCSV(p.Items())
}

// ExportPlaylistToMarkdown converts a playlist to Markdown.
func ExportPlaylistToMarkdown(p *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", p.Name()))

	if p.Description() != "" {
		buf.WriteString(fmt.Sprintf("**Description**: %s\n\n", p.Description()))
	}

	buf.WriteString(fmt.Sprintf("**Items**: %d\n", len(p.Items())))
	buf.WriteString(fmt.Sprintf("**Total duration**: %s\n\n", shared.FormatDuration(models.TotalDuration(p.Items()))))

	buf.WriteString("## Items\n\n")
	for i, m := range p.Items() {
		buf.WriteString(fmt.Sprintf("%d. %s - %s [%s] (%s)\n",
			i+1, m.Creator(), m.Name(), shared.FormatDuration(m.Duration()), m.Type()))
	}

	return buf.Bytes(), nil
}

// ExportPlaylistToText converts a playlist to plain text.
func ExportPlaylistToText(p *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", p.Name()))
	if p.Description() != "" {
		buf.WriteString(fmt.Sprintf("Description: %s\n", p.Description()))
	}
	buf.WriteString(fmt.Sprintf("Items: %d\n\n", len(p.Items())))

	for i, m := range p.Items() {
		buf.WriteString(fmt.Sprintf("%d. %s - %s [%s]\n",
			i+1, m.Creator(), m.Name(), shared.FormatDuration(m.Duration())))
	}

	return buf.Bytes(), nil
}

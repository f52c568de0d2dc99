package scout

import (
	"fmt"
	"strings"

	"cfb-scout-service/internal/domain/players"
)

const systemPrompt = "You are a college football scout. Write a concise, " +
	"engaging overview of the player and finish with hypothetical ratings " +
	"(speed, strength, awareness, overall) on a 0-99 scale."

// buildPrompt lays out the canonical player fields the narrative should draw
// on, followed by the caller-supplied stat summary.
func buildPrompt(p players.Player, statsSummary string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Player: %s\n", p.FullName)
	fmt.Fprintf(&b, "Team: %s\n", p.Team)
	fmt.Fprintf(&b, "Position: %s\n", p.Position)
	if p.JerseyNumber != nil {
		fmt.Fprintf(&b, "Jersey: #%d\n", *p.JerseyNumber)
	}
	fmt.Fprintf(&b, "Height: %s\n", p.DisplayHeight())
	if p.WeightPounds != nil {
		fmt.Fprintf(&b, "Weight: %d lbs\n", *p.WeightPounds)
	}
	if p.Hometown != nil {
		fmt.Fprintf(&b, "Hometown: %s\n", *p.Hometown)
	}

	if summary := strings.TrimSpace(statsSummary); summary != "" {
		fmt.Fprintf(&b, "\nSeason statistics:\n%s\n", summary)
	}

	b.WriteString("\nWrite the scouting overview and ratings now.")
	return b.String()
}

package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fubolabs/retention-api/internal/types"
)

// maxPromptShows bounds how many shows are offered to the model per email.
const maxPromptShows = 5

// previewLength is how many characters of the generated body are echoed back
// in batch results.
const previewLength = 200

const retentionPromptTemplate = `Write a personalized retention email for Fubo customer %s.

Customer Details:
- Favorite Teams: %s
- Favorite Sports: %s
- Watch Time: %s hours/day
- Plan: %s

Recommended Shows:
%s

Write an HTML email that:
1. Greets %s personally
2. Mentions their favorite teams: %s
3. Recommends 2-3 shows from the list
4. Uses HTML tags: <html>, <body>, <p>, <h3>, <ul>, <li>
5. Ends with "Best regards, The Fubo Team"

HTML Email:`

// BuildRetentionPrompt renders the generation prompt for one subscriber.
// Deterministic, no side effects: the same subscriber and show list always
// produce the same prompt.
func BuildRetentionPrompt(sub types.Subscriber, shows []types.Show) string {
	if len(shows) > maxPromptShows {
		shows = shows[:maxPromptShows]
	}

	lines := make([]string, 0, len(shows))
	for _, show := range shows {
		name := show.ShowName
		if name == "" {
			name = types.DefaultShowName
		}
		channel := show.ChannelName
		if channel == "" {
			channel = types.DefaultChannelName
		}
		lines = append(lines, fmt.Sprintf("- %s on %s", name, channel))
	}
	showsList := strings.Join(lines, "\n")

	name := sub.Name
	if name == "" {
		name = types.DefaultSubscriberName
	}
	plan := sub.Plan
	if plan == "" {
		plan = types.DefaultPlan
	}
	watchTime := strconv.FormatFloat(sub.AverageDailyWatchTime, 'f', -1, 64)

	return fmt.Sprintf(retentionPromptTemplate,
		name,
		sub.FavoriteTeams,
		sub.FavoriteSports,
		watchTime,
		plan,
		showsList,
		name,
		sub.FavoriteTeams,
	)
}

// RetentionSubject derives the subject line for a subscriber.
func RetentionSubject(name string) string {
	if name == "" {
		name = types.DefaultSubscriberName
	}
	return fmt.Sprintf("New Content Just for You, %s!", name)
}

// EnsureHTMLDocument guarantees the generated text is rooted in an <html>
// element. Anything not already starting with the tag (ignoring surrounding
// whitespace) is wrapped verbatim; inner markup is never validated or
// altered.
func EnsureHTMLDocument(raw string) string {
	if strings.HasPrefix(strings.TrimSpace(raw), "<html>") {
		return raw
	}
	return "<html><body>" + raw + "</body></html>"
}

// TruncatePreview returns the first previewLength characters of the body
// with an ellipsis suffix.
func TruncatePreview(body string) string {
	runes := []rune(body)
	if len(runes) > previewLength {
		runes = runes[:previewLength]
	}
	return string(runes) + "..."
}
